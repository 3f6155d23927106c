package driver

import (
	"os"
	"path/filepath"
	"testing"

	"drift/internal/project"
)

func TestExpandArgs_FilesKeptInOperandOrder(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.dr", "")
	a := writeFile(t, dir, "a.dr", "")

	got, err := ExpandArgs([]string{b, a}, nil)
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("got %v, want [%s %s]", got, b, a)
	}
}

func TestExpandArgs_DirectoryWalk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.dr", "")
	writeFile(t, dir, "a.dr", "")
	writeFile(t, dir, "notes.txt", "")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "m.dr", "")

	got, err := ExpandArgs([]string{dir}, nil)
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.dr"),
		filepath.Join(sub, "m.dr"),
		filepath.Join(dir, "z.dr"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpandArgs_Dedup(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.dr", "")

	got, err := ExpandArgs([]string{a, dir}, nil)
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %v, want single entry", got)
	}
}

func TestExpandArgs_ManifestExcludesWalkedFiles(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "keep.dr", "")
	writeFile(t, dir, "gen.dr", "")

	manifest := &project.Manifest{Exclude: []string{"gen.dr"}}
	got, err := ExpandArgs([]string{dir}, manifest)
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	if len(got) != 1 || got[0] != keep {
		t.Errorf("got %v, want [%s]", got, keep)
	}

	// Явный файловый операнд исключения не фильтруют.
	explicit := filepath.Join(dir, "gen.dr")
	got, err = ExpandArgs([]string{explicit}, manifest)
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	if len(got) != 1 || got[0] != explicit {
		t.Errorf("got %v, want [%s]", got, explicit)
	}
}

func TestExpandArgs_MissingOperand(t *testing.T) {
	if _, err := ExpandArgs([]string{"/nonexistent"}, nil); err == nil {
		t.Fatal("expected an error")
	}
}
