// Package driver owns the per-file pipeline: load → parse → walk →
// {report | rewrite}. Files are processed strictly one after another, in
// operand order, with no shared mutable state between them; the first
// failure aborts the run.
package driver

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/imports"
	"drift/internal/parser"
	"drift/internal/source"
)

// Mode selects the terminal stage of the pipeline.
type Mode uint8

const (
	// ModePrint writes the rewritten file text to the options' writer.
	ModePrint Mode = iota
	// ModeWrite rewrites each input file in place.
	ModeWrite
	// ModeList reports unused imports and never modifies anything.
	ModeList
)

// Options configures a run over a list of files.
type Options struct {
	Mode           Mode
	Out            io.Writer // результат в ModePrint, диагностики в ModeList
	Cache          *Cache    // опционально: кеш результатов для ModeList
	MaxDiagnostics int
}

// Pipeline is one file's state, threaded explicitly through the stages.
// После Walk registry только читается.
type Pipeline struct {
	Path     string
	FS       *source.FileSet
	FileID   source.FileID
	File     *ast.File
	Registry *imports.Registry
}

// ParseError is the fatal error produced when the front end rejects a file.
type ParseError struct {
	Path string
	Bag  *diag.Bag
	FS   *source.FileSet
}

func (e *ParseError) Error() string {
	for _, d := range e.Bag.Items() {
		if d.Severity >= diag.SevError {
			start, _ := e.FS.Resolve(d.Primary)
			return fmt.Sprintf("%s:%d:%d: %s", e.Path, start.Line, start.Col, d.Message)
		}
	}
	return e.Path + ": parse failed"
}

// ProcessFiles runs the pipeline over each path in order. Output for a file
// is fully written before the next file starts, so everything before a
// failing file stands.
func ProcessFiles(paths []string, opts *Options) error {
	for _, path := range paths {
		if err := processOne(path, opts); err != nil {
			return err
		}
	}
	return nil
}

func processOne(path string, opts *Options) error {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("imports: %w", err)
	}
	file := fs.Get(id)

	// Кеш действует только в режиме отчёта: ключ — хеш содержимого.
	if opts.Mode == ModeList && opts.Cache != nil {
		if entries, ok := opts.Cache.Get(file.Hash); ok {
			for _, e := range entries {
				if err := imports.ReportLine(opts.Out, path, e.Line, e.Col, e.Dotted); err != nil {
					return err
				}
			}
			return nil
		}
	}

	p, err := analyzeLoaded(fs, id, path, opts.MaxDiagnostics)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case ModeList:
		if _, err := imports.Report(opts.Out, p.Registry, path); err != nil {
			return err
		}
		if opts.Cache != nil {
			if err := opts.Cache.Put(file.Hash, entriesOf(p.Registry)); err != nil {
				// кеш — только ускорение; не роняем успешный прогон
				fmt.Fprintf(os.Stderr, "imports: cache write failed: %v\n", err)
			}
		}
		return nil

	case ModePrint:
		return p.RewriteTo(opts.Out)

	case ModeWrite:
		return p.RewriteInPlace()

	default:
		return fmt.Errorf("imports: unknown mode %d", opts.Mode)
	}
}

// Analyze loads and parses one file, builds its registry, and runs the
// usage walk. The returned pipeline's registry is final.
func Analyze(path string, maxDiagnostics int) (*Pipeline, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("imports: %w", err)
	}
	return analyzeLoaded(fs, id, path, maxDiagnostics)
}

func analyzeLoaded(fs *source.FileSet, id source.FileID, path string, maxDiagnostics int) (*Pipeline, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}
	bag := diag.NewBag(maxDiagnostics)
	file, ok := parser.ParseFile(fs.Get(id), diag.BagReporter{Bag: bag})
	if !ok {
		bag.Sort()
		return nil, &ParseError{Path: path, Bag: bag, FS: fs}
	}

	p := &Pipeline{
		Path:   path,
		FS:     fs,
		FileID: id,
		File:   file,
	}
	p.Registry = imports.NewRegistry(file, fs)
	imports.Walk(file, p.Registry)
	return p, nil
}

// RewriteTo re-scans the original file with a fresh read handle and writes
// the spliced text to w.
func (p *Pipeline) RewriteTo(w io.Writer) error {
	// #nosec G304 -- path came from the command line
	rf, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("imports: %w", err)
	}
	defer func() { _ = rf.Close() }()

	return imports.Rewrite(w, rf, p.Registry)
}

// RewriteInPlace splices into memory first, then overwrites the file through
// a freshly obtained write handle, distinct from the read handle used for
// scanning.
func (p *Pipeline) RewriteInPlace() error {
	var buf bytes.Buffer
	if err := p.RewriteTo(&buf); err != nil {
		return err
	}

	wf, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("imports: %w", err)
	}
	if _, err := wf.Write(buf.Bytes()); err != nil {
		_ = wf.Close()
		return fmt.Errorf("imports: %w", err)
	}
	return wf.Close()
}

func entriesOf(reg *imports.Registry) []Entry {
	out := make([]Entry, 0)
	for _, rec := range reg.Unused() {
		out = append(out, Entry{
			Line:   rec.Start.Line,
			Col:    rec.Start.Col,
			Dotted: rec.DottedPath(),
		})
	}
	return out
}
