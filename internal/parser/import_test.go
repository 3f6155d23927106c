package parser

import (
	"strings"
	"testing"

	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.File, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dr", []byte(src))
	bag := diag.NewBag(32)
	f, ok := ParseFile(fs.Get(id), diag.BagReporter{Bag: bag})
	return f, bag, ok
}

func TestParseImport_Forms(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		path    string
		alias   string
		mode    ast.ImportMode
		members int
	}{
		{
			name: "single segment",
			src:  "import io;",
			path: "io",
			mode: ast.ImportModule,
		},
		{
			name: "nested path",
			src:  "import std::net::http;",
			path: "std::net::http",
			mode: ast.ImportModule,
		},
		{
			name:  "alias",
			src:   "import std::fmt as f;",
			path:  "std::fmt",
			alias: "f",
			mode:  ast.ImportModule,
		},
		{
			name: "wildcard",
			src:  "import std::prelude::*;",
			path: "std::prelude",
			mode: ast.ImportWildcard,
		},
		{
			name:    "group",
			src:     "import std::io::{read, write};",
			path:    "std::io",
			mode:    ast.ImportGroup,
			members: 2,
		},
		{
			name:    "group with alias",
			src:     "import std::io::{read as r};",
			path:    "std::io",
			mode:    ast.ImportGroup,
			members: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, bag, ok := parseSource(t, tt.src)
			if !ok {
				t.Fatalf("parse failed: %v", bag.Items())
			}
			if len(f.Imports) != 1 {
				t.Fatalf("import count = %d, want 1", len(f.Imports))
			}
			imp := f.Imports[0]
			if got := strings.Join(imp.Path, "::"); got != tt.path {
				t.Errorf("path = %q, want %q", got, tt.path)
			}
			if imp.Alias != tt.alias {
				t.Errorf("alias = %q, want %q", imp.Alias, tt.alias)
			}
			if imp.Mode != tt.mode {
				t.Errorf("mode = %d, want %d", imp.Mode, tt.mode)
			}
			if len(imp.Members) != tt.members {
				t.Errorf("member count = %d, want %d", len(imp.Members), tt.members)
			}
		})
	}
}

func TestParseImport_GroupMemberAlias(t *testing.T) {
	f, bag, ok := parseSource(t, "import std::io::{read as r, write};")
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	members := f.Imports[0].Members
	if members[0].Name != "read" || members[0].Alias != "r" {
		t.Errorf("member[0] = %+v, want read as r", members[0])
	}
	if members[1].Name != "write" || members[1].Alias != "" {
		t.Errorf("member[1] = %+v, want write", members[1])
	}
}

func TestParseImport_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing semicolon", "import std::io", diag.SynExpectSemicolon},
		{"missing module segment", "import ;", diag.SynExpectModuleSeg},
		{"bad item after separator", "import std::;", diag.SynExpectItemAfterDbl},
		{"missing alias name", "import std::io as ;", diag.SynExpectIdentAfterAs},
		{"empty group", "import std::{};", diag.SynEmptyImportGroup},
		{"unclosed group", "import std::{read;", diag.SynUnclosedBrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag, ok := parseSource(t, tt.src)
			if ok {
				t.Fatalf("expected parse failure for %q", tt.src)
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("expected code %s in %v", tt.code, bag.Items())
			}
		})
	}
}

func TestParseImport_RecoverySkipsToNext(t *testing.T) {
	src := "import std::;\nimport util::strings;\n"
	f, _, ok := parseSource(t, src)
	if ok {
		t.Fatal("expected parse errors")
	}
	// Битый импорт пропущен, следующий разобран.
	if len(f.Imports) != 1 {
		t.Fatalf("import count = %d, want 1", len(f.Imports))
	}
	if got := strings.Join(f.Imports[0].Path, "::"); got != "util::strings" {
		t.Errorf("recovered import = %q, want util::strings", got)
	}
}

func TestParseImport_SpanCoversStatement(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dr", []byte("import std::io;\n"))
	f, ok := ParseFile(fs.Get(id), nil)
	if !ok {
		t.Fatal("parse failed")
	}
	start, end := fs.Resolve(f.Imports[0].Span)
	if start.Line != 1 || start.Col != 1 {
		t.Errorf("span start = %d:%d, want 1:1", start.Line, start.Col)
	}
	if end.Line != 1 || end.Col != 16 {
		t.Errorf("span end = %d:%d, want 1:16", end.Line, end.Col)
	}
}
