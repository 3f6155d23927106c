package imports

import (
	"testing"

	"drift/internal/ast"
	"drift/internal/parser"
	"drift/internal/source"
)

func buildRegistry(t *testing.T, src string) (*source.FileSet, *ast.File, *Registry) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dr", []byte(src))
	f, ok := parser.ParseFile(fs.Get(id), nil)
	if !ok {
		t.Fatalf("parse failed for:\n%s", src)
	}
	return fs, f, NewRegistry(f, fs)
}

func unusedPaths(reg *Registry) []string {
	var out []string
	for _, rec := range reg.Unused() {
		out = append(out, rec.DottedPath())
	}
	return out
}

func TestRegistry_InitialState(t *testing.T) {
	_, _, reg := buildRegistry(t, `
import std::io;
import std::fmt as f;
import std::prelude::*;
import std::os::{getenv};
`)
	if reg.Len() != 4 {
		t.Fatalf("Len = %d, want 4", reg.Len())
	}
	recs := reg.Records()
	if recs[0].Used || recs[1].Used {
		t.Error("module imports must start unused")
	}
	if !recs[2].Used {
		t.Error("wildcard import must start used")
	}
	if !recs[3].Used {
		t.Error("group import must start used")
	}
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		ref     []string
		matched bool
		used    []bool // ожидаемые флаги по std::io, net::http::client
	}{
		{
			name:    "local name",
			ref:     []string{"x"},
			matched: true,
			used:    []bool{false, false},
		},
		{
			name:    "short form",
			ref:     []string{"io", "println"},
			matched: true,
			used:    []bool{true, false},
		},
		{
			name:    "full qualification",
			ref:     []string{"std", "io", "println"},
			matched: true,
			used:    []bool{true, false},
		},
		{
			name:    "full path without selector",
			ref:     []string{"std", "io"},
			matched: false,
			used:    []bool{false, false},
		},
		{
			name:    "deep full qualification",
			ref:     []string{"net", "http", "client", "get"},
			matched: true,
			used:    []bool{false, true},
		},
		{
			name:    "unknown module",
			ref:     []string{"zlib", "inflate"},
			matched: false,
			used:    []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, reg := buildRegistry(t, "import std::io;\nimport net::http::client;\n")
			got := reg.Register(tt.ref)
			if got != tt.matched {
				t.Errorf("Register(%v) = %v, want %v", tt.ref, got, tt.matched)
			}
			for i, rec := range reg.Records() {
				if rec.Used != tt.used[i] {
					t.Errorf("record[%d].Used = %v, want %v", i, rec.Used, tt.used[i])
				}
			}
		})
	}
}

func TestRegistry_RegisterMarksAllMatches(t *testing.T) {
	// Одна ссылка может удовлетворить несколько импортов сразу.
	_, _, reg := buildRegistry(t, "import a::io;\nimport b::io;\n")
	if !reg.Register([]string{"io", "read"}) {
		t.Fatal("expected a match")
	}
	for i, rec := range reg.Records() {
		if !rec.Used {
			t.Errorf("record[%d] not marked", i)
		}
	}
}

func TestRegistry_AliasNotConsulted(t *testing.T) {
	// Сопоставление идёт по пути, а не по алиасу.
	_, _, reg := buildRegistry(t, "import std::fmt as f;\n")
	if reg.Register([]string{"f", "print"}) {
		t.Error("alias reference must not match")
	}
	if !reg.Register([]string{"fmt", "print"}) {
		t.Error("path reference must match despite alias")
	}
}

func TestRegistry_UsedIsMonotonic(t *testing.T) {
	_, _, reg := buildRegistry(t, "import std::io;\n")
	reg.Register([]string{"io", "a"})
	reg.Register([]string{"zzz", "b"}) // no match, must not reset
	if !reg.Records()[0].Used {
		t.Error("Used flag was reset")
	}
}

func TestRegistry_Sorted(t *testing.T) {
	_, _, reg := buildRegistry(t, `
import z::zeta;
import a::alpha;
import m::mid;
import a::alpha;
`)
	got := make([]string, 0, 4)
	for _, rec := range reg.Sorted() {
		got = append(got, rec.DottedPath())
	}
	want := []string{"a::alpha", "a::alpha", "m::mid", "z::zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted = %v, want %v", got, want)
		}
	}
}

func TestRegistry_BlockRange(t *testing.T) {
	_, _, reg := buildRegistry(t, "import a::b;\nimport c::d;\n\nfn main() { }\n")
	block, ok := reg.BlockRange()
	if !ok {
		t.Fatal("expected a block")
	}
	if block.First != 1 || block.End != 3 {
		t.Errorf("block = [%d, %d), want [1, 3)", block.First, block.End)
	}
	if !block.Contains(1) || !block.Contains(2) || block.Contains(3) {
		t.Error("Contains boundaries wrong")
	}
}

func TestRegistry_BlockRangeEmpty(t *testing.T) {
	_, _, reg := buildRegistry(t, "fn main() { }\n")
	if _, ok := reg.BlockRange(); ok {
		t.Error("expected no block for import-free file")
	}
}

func TestRegistry_UnusedSourceOrder(t *testing.T) {
	_, _, reg := buildRegistry(t, "import z::z;\nimport a::a;\n")
	got := unusedPaths(reg)
	if len(got) != 2 || got[0] != "z::z" || got[1] != "a::a" {
		t.Errorf("Unused = %v, want source order [z::z a::a]", got)
	}
}
