package parser

import (
	"testing"

	"drift/internal/ast"
	"drift/internal/diag"
)

func TestParseFile_GrammarSmoke(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"type alias", "type Handle = u64;"},
		{"pointer type", "type P = *net::Conn;"},
		{"slice type", "type Names = []str;"},
		{"array type", "type Buf = [16]u8;"},
		{"fn type", "type Cb = fn(x: i32) -> bool;"},
		{"enum", "type Mode = enum u8 { Read = 1, Write };"},
		{"struct", "type Point = struct { x: i32; y: i32; };"},
		{"struct with offset", "type Raw = struct { @offset(4) data: u32; };"},
		{"struct embedded", "type Conn = struct { net::Base; fd: i32; };"},
		{"struct alias member", "type V = struct { total = count; count: u32; };"},
		{"union", "type Any = union { i: i64; f: f64; };"},
		{"tagged union", "type Result = (io::Error | str);"},
		{"tuple type", "type Pair = (i32, str);"},
		{"let decl", "let x: i32 = 1, y = 2;"},
		{"const decl", "const LIMIT = 100;"},
		{"fn minimal", "fn main() { }"},
		{"fn with params", "fn add(a: i32, b: i32) -> i32 { return a + b; }"},
		{"fn variadic", "fn log(parts: str...) { }"},
		{"call and field", "fn f() { io::stdout().flush(); }"},
		{"index and slice", "fn f() { let a = xs[0]; let b = xs[1..3]; let c = xs[..]; }"},
		{"cast", "fn f() { let n = raw as u32; }"},
		{"binary precedence", "fn f() { let v = 1 + 2 * 3 == 7 && !done; }"},
		{"assign ops", "fn f() { x = 1; x += 2; xs[0] *= 3; p.field = 4; }"},
		{"array literal", "fn f() { let xs = [1, 2, 3]; }"},
		{"tuple literal", "fn f() { let p = (1, \"two\"); }"},
		{"struct literal", "fn f() { let p = geom::Point { x = 1, y = 2 }; }"},
		{"if else value", "fn f() { let m = if (a < b) a else b; }"},
		{"if block", "fn f() { if (ok) { go(); } else { stop(); } }"},
		{"for loop", "fn f() { for (let i = 0; i < 10; i += 1) { step(i); } }"},
		{"for bare", "fn f() { for (;;) { break; } }"},
		{"match", "fn f() { match (v) { case io::Error => handle(); case => fallback(); } }"},
		{"switch", "fn f() { switch (n) { case 1, 2 => small(); case => big(); } }"},
		{"defer free", "fn f() { let p = alloc(0, 16); defer free(p); }"},
		{"append insert", "fn f() { append(xs, 1, 2); append(xs, more...); insert(xs[0], 9); }"},
		{"assert", "fn f() { assert(x > 0, \"positive\"); }"},
		{"size len offset", "fn f() { let a = size(u64); let b = len(xs); let c = offset(xs[1]); }"},
		{"yield continue", "fn f() { for (;;) { if (skip) continue; yield 1; } }"},
		{"string escapes", "fn f() { let s = \"a\\\"b\\\\c\"; }"},
		{"comments everywhere", "// top\nfn f() { /* inner */ go(); }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag, ok := parseSource(t, tt.src)
			if !ok {
				t.Fatalf("parse failed: %v", bag.Items())
			}
		})
	}
}

func TestParseFile_DeclShapes(t *testing.T) {
	src := `
import std::io;

type Handle = u64;
let counter: i32 = 0;
const MAX = 10;

fn main() -> i32 {
    return counter;
}
`
	f, bag, ok := parseSource(t, src)
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	if len(f.Imports) != 1 {
		t.Fatalf("import count = %d, want 1", len(f.Imports))
	}
	if len(f.Decls) != 4 {
		t.Fatalf("decl count = %d, want 4", len(f.Decls))
	}

	if d, ok := f.Decls[0].(*ast.TypeDecl); !ok || d.Name != "Handle" {
		t.Errorf("decl[0] = %T, want TypeDecl Handle", f.Decls[0])
	}
	if d, ok := f.Decls[1].(*ast.VarDecl); !ok || d.Bindings[0].Name != "counter" {
		t.Errorf("decl[1] = %T, want VarDecl counter", f.Decls[1])
	}
	if d, ok := f.Decls[2].(*ast.ConstDecl); !ok || d.Bindings[0].Name != "MAX" {
		t.Errorf("decl[2] = %T, want ConstDecl MAX", f.Decls[2])
	}
	fn, ok := f.Decls[3].(*ast.FnDecl)
	if !ok || fn.Name != "main" {
		t.Fatalf("decl[3] = %T, want FnDecl main", f.Decls[3])
	}
	if _, ok := fn.Result.(*ast.NamedType); !ok {
		t.Errorf("fn result = %T, want NamedType", fn.Result)
	}
	if len(fn.Body.Exprs) != 1 {
		t.Errorf("body expr count = %d, want 1", len(fn.Body.Exprs))
	}
}

func TestParseFile_StructLitVsBlock(t *testing.T) {
	// В позиции выражения `path {` — всегда литерал структуры; заголовки
	// if/for в скобках, поэтому двусмысленности нет.
	src := "fn f() { let p = geom::Point { x = 1 }; if (p == q) { go(); } }"
	f, bag, ok := parseSource(t, src)
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	fn := f.Decls[0].(*ast.FnDecl)
	let, ok := fn.Body.Exprs[0].(*ast.LetExpr)
	if !ok {
		t.Fatalf("body[0] = %T, want LetExpr", fn.Body.Exprs[0])
	}
	lit, ok := let.Bindings[0].Init.(*ast.StructLit)
	if !ok {
		t.Fatalf("init = %T, want StructLit", let.Bindings[0].Init)
	}
	if len(lit.Name) != 2 || lit.Name[0] != "geom" || lit.Name[1] != "Point" {
		t.Errorf("struct lit name = %v, want [geom Point]", lit.Name)
	}
}

func TestParseFile_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"stray token at top level", "42;", diag.SynUnexpectedTopLevel},
		{"missing type", "type T = ;", diag.SynExpectType},
		{"missing fn body", "fn f();", diag.SynUnexpectedToken},
		{"empty match", "fn f() { match (x) { } }", diag.SynExpectCase},
		{"case without arrow", "fn f() { switch (x) { case 1 go(); } }", diag.SynExpectFatArrow},
		{"bad assign target", "fn f() { 1 = 2; }", diag.SynBadAssignTarget},
		{"param without type", "fn f(a) { }", diag.SynExpectColon},
		{"import after declaration", "import a::a;\nfn f() { }\nimport z::z;", diag.SynImportAfterDecl},
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

func TestParseFile_ImportBlockIsContiguous(t *testing.T) {
	// Декларация между импортами делает файл невалидным: переписывать
	// разорванный блок импортов нельзя.
	src := "import a::a;\nfn keep() { a::go(); }\nimport z::z;\nfn main() { z::go(); }\n"
	f, bag, ok := parseSource(t, src)
	if ok {
		t.Fatal("expected parse failure for a declaration between imports")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynImportAfterDecl {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s in %v", diag.SynImportAfterDecl, bag.Items())
	}

	// Импорт до декларации и обе декларации разобраны; поздний импорт
	// отброшен целиком.
	if len(f.Imports) != 1 || f.Imports[0].Path[0] != "a" {
		t.Errorf("Imports = %v, want only a::a", f.Imports)
	}
	if len(f.Decls) != 2 {
		t.Errorf("Decls = %d, want 2", len(f.Decls))
	}
}
