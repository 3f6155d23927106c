package imports

import (
	"testing"
)

func analyze(t *testing.T, src string) *Registry {
	t.Helper()
	_, f, reg := buildRegistry(t, src)
	Walk(f, reg)
	return reg
}

func TestWalk_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		unused []string
	}{
		{
			name: "short form call keeps import",
			src: `
import std::io;

fn main() {
    io::println("hi");
}
`,
			unused: nil,
		},
		{
			name: "unreferenced module reported",
			src: `
import std::io;
import util::strings;

fn main() {
    io::println("hi");
}
`,
			unused: []string{"util::strings"},
		},
		{
			name: "aliased import matched by path only",
			src: `
import std::fmt as f;

fn main() {
    f::print("x");
}
`,
			unused: []string{"std::fmt"},
		},
		{
			name: "wildcard always kept",
			src: `
import std::prelude::*;

fn main() { }
`,
			unused: nil,
		},
		{
			name: "full qualification keeps import",
			src: `
import net::http;

fn main() {
    net::http::get("url");
}
`,
			unused: nil,
		},
		{
			name: "local shadow counts as use",
			src: `
import io;

fn main() {
    io::println("hi");
}
`,
			unused: nil,
		},
		{
			name: "type position reference",
			src: `
import net::conn;

fn serve(c: conn::Handle) { }
`,
			unused: nil,
		},
		{
			name: "struct literal name reference",
			src: `
import geom::shapes;

fn make() {
    let p = shapes::Point { x = 1, y = 2 };
}
`,
			unused: nil,
		},
		{
			name: "reference inside nested control flow",
			src: `
import std::log;
import std::mem;

fn run(n: i32) {
    for (let i = 0; i < n; i += 1) {
        if (i % 2 == 0) {
            log::debug(i);
        }
    }
}
`,
			unused: []string{"std::mem"},
		},
		{
			name: "match guard type reference",
			src: `
import std::err;

fn handle(v: i32) {
    match (v) {
    case err::Fatal => panic();
    case => ignore();
    }
}
`,
			unused: nil,
		},
		{
			name: "struct member alias reference",
			src: `
import layout::abi;

type Header = struct {
    tag = abi::kind;
    kind: u32;
};
`,
			unused: nil,
		},
		{
			name: "builtin argument reference",
			src: `
import std::mem;

fn grow(xs: []i32) {
    assert(len(xs) < mem::limit());
}
`,
			unused: nil,
		},
		{
			name: "enum and const initializers",
			src: `
import sys::flags;

type Mode = enum u8 { On = flags::on, Off };
const DEF = flags::off;
`,
			unused: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := analyze(t, tt.src)
			got := unusedPaths(reg)
			if len(got) != len(tt.unused) {
				t.Fatalf("unused = %v, want %v", got, tt.unused)
			}
			for i := range got {
				if got[i] != tt.unused[i] {
					t.Errorf("unused[%d] = %q, want %q", i, got[i], tt.unused[i])
				}
			}
		})
	}
}

func TestWalk_ValueNamespaceFalsePositive(t *testing.T) {
	// Локальная переменная с именем модуля удовлетворяет импорт: анализ
	// чисто синтаксический, без разрешения имён. Лишний импорт остаётся —
	// это безопасная сторона ошибки.
	reg := analyze(t, `
import db;

fn main() {
    let db = open();
    db::query("x");
}
`)
	if len(unusedPaths(reg)) != 0 {
		t.Error("syntactic match must keep the import")
	}
}

func TestWalk_OrderIndependence(t *testing.T) {
	// Использование до и после объявления помечает одинаково.
	srcBefore := "import a::m;\nfn f() { m::go(); }\nfn g() { }\n"
	srcAfter := "import a::m;\nfn f() { }\nfn g() { m::go(); }\n"
	if len(unusedPaths(analyze(t, srcBefore))) != 0 {
		t.Error("use in first decl not registered")
	}
	if len(unusedPaths(analyze(t, srcAfter))) != 0 {
		t.Error("use in later decl not registered")
	}
}
