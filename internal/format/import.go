// Package format renders AST fragments back to canonical Drift source text.
package format

import (
	"strings"

	"drift/internal/ast"
)

// Path renders a qualified path in its canonical dotted form.
func Path(segments []string) string {
	return strings.Join(segments, "::")
}

// Import renders one import declaration, semicolon included, without a line
// terminator.
func Import(imp *ast.Import) string {
	var sb strings.Builder
	sb.WriteString("import ")
	sb.WriteString(Path(imp.Path))

	switch imp.Mode {
	case ast.ImportModule:
		if imp.Alias != "" {
			sb.WriteString(" as ")
			sb.WriteString(imp.Alias)
		}

	case ast.ImportWildcard:
		sb.WriteString("::*")

	case ast.ImportGroup:
		sb.WriteString("::{")
		for i, member := range imp.Members {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(member.Name)
			if member.Alias != "" {
				sb.WriteString(" as ")
				sb.WriteString(member.Alias)
			}
		}
		sb.WriteString("}")
	}

	sb.WriteByte(';')
	return sb.String()
}
