package imports

import (
	"bytes"
	"testing"
)

func TestReport_Lines(t *testing.T) {
	reg := analyze(t, `import z::zeta;
import a::alpha;

fn main() {
    alpha::go();
}
`)
	var out bytes.Buffer
	n, err := Report(&out, reg, "pkg/main.dr")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	want := "pkg/main.dr:1:1: unused import z::zeta\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestReport_NothingUnused(t *testing.T) {
	reg := analyze(t, "import a::a;\nfn main() { a::go(); }\n")
	var out bytes.Buffer
	n, err := Report(&out, reg, "x.dr")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if n != 0 || out.Len() != 0 {
		t.Errorf("expected empty report, got n=%d %q", n, out.String())
	}
}

func TestReport_SourceOrder(t *testing.T) {
	reg := analyze(t, "import z::z;\nimport a::a;\nfn main() { }\n")
	var out bytes.Buffer
	if _, err := Report(&out, reg, "f.dr"); err != nil {
		t.Fatalf("Report: %v", err)
	}
	want := "f.dr:1:1: unused import z::z\nf.dr:2:1: unused import a::a\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
