// Package imports implements unused-import analysis for one parsed file:
// a registry of declared imports, the usage walk that marks them, and the
// rewrite/report back ends.
package imports

import (
	"sort"

	"drift/internal/ast"
	"drift/internal/format"
	"drift/internal/source"
)

// Record is the registry's view of one declared import.
//
// Used переходит только false→true и после прохода walker'а больше
// не меняется.
type Record struct {
	Imp   *ast.Import
	Start source.LineCol
	End   source.LineCol
	Used  bool
}

// DottedPath returns the record's rendered path, the sort key.
func (r *Record) DottedPath() string {
	return format.Path(r.Imp.Path)
}

// Registry holds one Record per declared import, in source order.
type Registry struct {
	records []*Record
}

// NewRegistry builds the registry from the file's import list.
//
// Wildcard and group imports are marked used at construction: a wildcard's
// effect may be purely side-effecting and cannot be proven or disproven by
// name references, and group imports are deliberately left untouched.
func NewRegistry(f *ast.File, fs *source.FileSet) *Registry {
	reg := &Registry{records: make([]*Record, 0, len(f.Imports))}
	for _, imp := range f.Imports {
		start, end := fs.Resolve(imp.Span)
		reg.records = append(reg.records, &Record{
			Imp:   imp,
			Start: start,
			End:   end,
			Used:  imp.Mode != ast.ImportModule,
		})
	}
	return reg
}

// Register decides whether a qualified-name reference is satisfied by at
// least one import, marking every satisfying import used. A reference of
// length 1 is a purely local name: always satisfied, nothing marked.
//
// Two rules, either alone sufficient:
//  1. full qualification: the import path is a positional prefix of the
//     reference (excluding the reference's final selector segment);
//  2. short form: the reference's first segment equals the import path's
//     last segment (the conventional local name of a module).
//
// A reference may satisfy several imports at once; that ambiguity is
// intentional and left unresolved.
func (reg *Registry) Register(ref []string) bool {
	if len(ref) <= 1 {
		return true
	}

	matched := false
	for _, rec := range reg.records {
		if matchesFull(rec.Imp.Path, ref) || matchesShort(rec.Imp.Path, ref) {
			rec.Used = true
			matched = true
		}
	}
	return matched
}

func matchesFull(path, ref []string) bool {
	// сегменты пути позиционно совпадают с началом ссылки,
	// последний сегмент ссылки — селектор, он не участвует
	if len(ref)-1 < len(path) {
		return false
	}
	for i, seg := range path {
		if ref[i] != seg {
			return false
		}
	}
	return true
}

func matchesShort(path, ref []string) bool {
	return ref[0] == path[len(path)-1]
}

// Records returns all records in source order.
func (reg *Registry) Records() []*Record {
	return reg.records
}

// Len returns the number of declared imports.
func (reg *Registry) Len() int {
	return len(reg.records)
}

// Unused returns the records not marked used, in source order.
func (reg *Registry) Unused() []*Record {
	out := make([]*Record, 0)
	for _, rec := range reg.records {
		if !rec.Used {
			out = append(out, rec)
		}
	}
	return out
}

// Sorted returns all records ordered by ascending dotted path. Unused
// records participate too; consumers decide what to keep. Duplicate paths
// are preserved and end up adjacent.
func (reg *Registry) Sorted() []*Record {
	out := make([]*Record, len(reg.records))
	copy(out, reg.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DottedPath() < out[j].DottedPath()
	})
	return out
}

// BlockRange returns the half-open 1-based line range [First, End) occupied
// by the import block: from the first import's start line through the last
// import's end line. ok is false when the file declares no imports.
func (reg *Registry) BlockRange() (block LineRange, ok bool) {
	if len(reg.records) == 0 {
		return LineRange{}, false
	}
	first := reg.records[0].Start.Line
	last := reg.records[len(reg.records)-1].End.Line
	return LineRange{First: first, End: last + 1}, true
}
