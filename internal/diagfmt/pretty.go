package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"drift/internal/diag"
	"drift/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		printSourceLine(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printHeader(w, fs, n.Span, diag.SevInfo, diag.Code(0), n.Msg, opts)
				printSourceLine(w, fs, n.Span, opts)
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	if code == 0 {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			displayPath(file.Path, opts.PathMode), start.Line, start.Col, sevText, msg)
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col, sevText, code, msg)
}

func printSourceLine(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	text := file.Line(start.Line)
	if text == "" && span.Start >= span.End {
		return
	}
	gutter := fmt.Sprintf("%5d", start.Line)
	fmt.Fprintf(w, "%s | %s\n", gutter, sanitizeTabs(text))

	// Ширина подчёркивания считается в экранных колонках, не в байтах.
	startCol := int(start.Col) - 1
	if startCol > len(text) {
		startCol = len(text)
	}
	endCol := len(text)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol < startCol {
		endCol = startCol
	}
	pad := runewidth.StringWidth(sanitizeTabs(text[:startCol]))
	width := runewidth.StringWidth(sanitizeTabs(text[startCol:endCol]))
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgHiGreen).Sprint(marker)
	}
	fmt.Fprintf(w, "%s | %s%s\n", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgHiCyan)
	}
}

func sanitizeTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
