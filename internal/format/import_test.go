package format

import (
	"testing"

	"drift/internal/ast"
)

func TestPath(t *testing.T) {
	if got := Path([]string{"std", "io"}); got != "std::io" {
		t.Errorf("Path = %q, want %q", got, "std::io")
	}
	if got := Path([]string{"io"}); got != "io" {
		t.Errorf("Path = %q, want %q", got, "io")
	}
}

func TestImport(t *testing.T) {
	tests := []struct {
		name string
		imp  *ast.Import
		want string
	}{
		{
			name: "plain",
			imp:  &ast.Import{Path: []string{"std", "io"}, Mode: ast.ImportModule},
			want: "import std::io;",
		},
		{
			name: "alias",
			imp:  &ast.Import{Path: []string{"std", "fmt"}, Alias: "f", Mode: ast.ImportModule},
			want: "import std::fmt as f;",
		},
		{
			name: "wildcard",
			imp:  &ast.Import{Path: []string{"std", "prelude"}, Mode: ast.ImportWildcard},
			want: "import std::prelude::*;",
		},
		{
			name: "group",
			imp: &ast.Import{
				Path: []string{"std", "io"},
				Mode: ast.ImportGroup,
				Members: []ast.ImportMember{
					{Name: "read"},
					{Name: "write", Alias: "w"},
				},
			},
			want: "import std::io::{read, write as w};",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Import(tt.imp); got != tt.want {
				t.Errorf("Import = %q, want %q", got, tt.want)
			}
		})
	}
}
