package imports

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// rewriteSource analyzes src and splices it through a strings.Reader, the
// same way the pipeline re-scans a file with a fresh handle.
func rewriteSource(t *testing.T, src string) string {
	t.Helper()
	reg := analyze(t, src)
	var out bytes.Buffer
	if err := Rewrite(&out, strings.NewReader(src), reg); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	return out.String()
}

func TestRewrite_RemovesUnusedAndSorts(t *testing.T) {
	src := `import z::zeta;
import a::alpha;
import m::mid;

fn main() {
    zeta::go();
    alpha::run();
}
`
	want := `import a::alpha;
import z::zeta;

fn main() {
    zeta::go();
    alpha::run();
}
`
	if got := rewriteSource(t, src); got != want {
		t.Errorf("Rewrite =\n%s\nwant\n%s", got, want)
	}
}

func TestRewrite_NoImportsIsVerbatim(t *testing.T) {
	src := "fn main() {\n    go();\n}\n"
	if got := rewriteSource(t, src); got != src {
		t.Errorf("Rewrite = %q, want unchanged input", got)
	}
}

func TestRewrite_AllUnusedCollapsesBlock(t *testing.T) {
	src := "import a::a;\nimport b::b;\nfn main() { }\n"
	want := "fn main() { }\n"
	if got := rewriteSource(t, src); got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewrite_PreservesMissingFinalNewline(t *testing.T) {
	src := "import a::a;\nfn main() { a::go(); }"
	want := "import a::a;\nfn main() { a::go(); }"
	if got := rewriteSource(t, src); got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewrite_CanonicalizesImportSpelling(t *testing.T) {
	// Внутри блока текст не копируется, а рендерится заново: лишние
	// пробелы исчезают, формы с '*' и алиасами сохраняют смысл.
	src := "import   b::beta   as   bb ;\nimport a::prelude::*;\nfn main() { beta::go(); }\n"
	want := "import a::prelude::*;\nimport b::beta as bb;\nfn main() { beta::go(); }\n"
	if got := rewriteSource(t, src); got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewrite_DropsInterstitialLines(t *testing.T) {
	// Пустые строки и комментарии между импортами принадлежат блоку и не
	// переживают переписывание.
	src := `import b::b;

// keep io around
import a::a;

fn main() {
    a::go();
    b::go();
}
`
	want := `import a::a;
import b::b;

fn main() {
    a::go();
    b::go();
}
`
	if got := rewriteSource(t, src); got != want {
		t.Errorf("Rewrite =\n%s\nwant\n%s", got, want)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	src := `import z::z;
import a::a;
import dead::code;

fn main() {
    a::go();
    z::go();
}
`
	once := rewriteSource(t, src)
	twice := rewriteSource(t, once)
	if once != twice {
		t.Errorf("second rewrite changed output:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestRewrite_DuplicateImportsKept(t *testing.T) {
	// Дубликаты не схлопываются: оба остаются и соседствуют после сортировки.
	src := "import a::a;\nimport a::a;\nfn main() { a::go(); }\n"
	want := "import a::a;\nimport a::a;\nfn main() { a::go(); }\n"
	if got := rewriteSource(t, src); got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

type failingReader struct {
	data []byte
	sent bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		n := copy(p, r.data)
		return n, nil
	}
	return 0, errors.New("device gone") // любая не-EOF ошибка
}

func TestRewrite_ReadErrorTruncatesSilently(t *testing.T) {
	src := "import a::a;\nfn main() { a::go(); }\n"
	reg := analyze(t, src)

	var out bytes.Buffer
	r := &failingReader{data: []byte("import a::a;\nfn mai")}
	if err := Rewrite(&out, r, reg); err != nil {
		t.Fatalf("read errors must not surface, got %v", err)
	}
	want := "import a::a;\nfn mai"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
