package imports

import (
	"fmt"
	"io"
)

// Report emits one line per unused import (file path, position, rendered
// dotted path) and never touches the file. Returns the number of
// diagnostics written.
func Report(w io.Writer, reg *Registry, displayPath string) (int, error) {
	n := 0
	for _, rec := range reg.Records() {
		if rec.Used {
			continue
		}
		if err := ReportLine(w, displayPath, rec.Start.Line, rec.Start.Col, rec.DottedPath()); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ReportLine writes a single diagnostic in Report's format.
func ReportLine(w io.Writer, displayPath string, line, col uint32, dotted string) error {
	_, err := fmt.Fprintf(w, "%s:%d:%d: unused import %s\n", displayPath, line, col, dotted)
	return err
}
