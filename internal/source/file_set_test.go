package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_AddAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.dr", []byte("line one\nline two\n"))

	f := fs.Get(id)
	if f.Path != "a.dr" {
		t.Errorf("Path = %q, want a.dr", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual flag not set")
	}
	if got, ok := fs.GetByPath("a.dr"); !ok || got.ID != id {
		t.Error("GetByPath failed")
	}
	if _, ok := fs.GetByPath("missing.dr"); ok {
		t.Error("GetByPath must miss for unknown paths")
	}
}

func TestFileSet_Load_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.dr")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("Content = %q, want normalized", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("Flags = %b, want BOM and CRLF bits", f.Flags)
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.dr", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // сам '\n' принадлежит строке 1
		{3, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %d:%d, want %d:%d",
				tt.off, start.Line, start.Col, tt.want.Line, tt.want.Col)
		}
	}
}

func TestFile_Line(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.dr", []byte("first\nsecond\nlast"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "last"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.Line(tt.line); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = [%d,%d), want [2,10)", got.Start, got.End)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Error("Cover must ignore spans from other files")
	}
}

func TestFileSet_HashChangesWithContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.dr", []byte("one"))
	b := fs.AddVirtual("b.dr", []byte("two"))
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Error("different content must hash differently")
	}
}
