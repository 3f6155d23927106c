package diagfmt

import (
	"fmt"
	"io"

	"drift/internal/ast"
	"drift/internal/format"
	"drift/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(child *treeNode) {
	n.children = append(n.children, child)
}

func leaf(msg string, args ...any) *treeNode {
	return &treeNode{label: fmt.Sprintf(msg, args...)}
}

// FormatASTPretty dumps a parsed file as an indented tree.
func FormatASTPretty(w io.Writer, f *ast.File, src *source.File, fs *source.FileSet) error {
	root := &treeNode{label: src.Path}
	for _, imp := range f.Imports {
		root.add(importTree(imp, fs))
	}
	for _, d := range f.Decls {
		root.add(declTree(d, fs))
	}
	fmt.Fprintln(w, root.label)
	return renderChildren(w, root, "")
}

func renderChildren(w io.Writer, n *treeNode, prefix string) error {
	for i, child := range n.children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(n.children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, child.label); err != nil {
			return err
		}
		if err := renderChildren(w, child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func importTree(imp *ast.Import, fs *source.FileSet) *treeNode {
	node := leaf("Import: %s (span: %s)", format.Path(imp.Path), formatSpan(imp.Span, fs))
	switch imp.Mode {
	case ast.ImportWildcard:
		node.add(leaf("Wildcard"))
	case ast.ImportGroup:
		group := leaf("Group")
		for _, m := range imp.Members {
			if m.Alias != "" {
				group.add(leaf("%s as %s", m.Name, m.Alias))
			} else {
				group.add(leaf("%s", m.Name))
			}
		}
		node.add(group)
	case ast.ImportModule:
		if imp.Alias != "" {
			node.add(leaf("Alias: %s", imp.Alias))
		}
	}
	return node
}

func declTree(d ast.Decl, fs *source.FileSet) *treeNode {
	switch d := d.(type) {
	case *ast.TypeDecl:
		node := leaf("TypeDecl: %s (span: %s)", d.Name, formatSpan(d.Span, fs))
		node.add(typeTree(d.Type, fs))
		return node
	case *ast.VarDecl:
		node := leaf("VarDecl (span: %s)", formatSpan(d.Span, fs))
		addBindings(node, d.Bindings, fs)
		return node
	case *ast.ConstDecl:
		node := leaf("ConstDecl (span: %s)", formatSpan(d.Span, fs))
		addBindings(node, d.Bindings, fs)
		return node
	case *ast.FnDecl:
		node := leaf("FnDecl: %s (span: %s)", d.Name, formatSpan(d.Span, fs))
		addParams(node, d.Params, fs)
		if d.Result != nil {
			result := leaf("Result")
			result.add(typeTree(d.Result, fs))
			node.add(result)
		}
		if d.Body != nil {
			body := leaf("Body")
			for _, e := range d.Body.Exprs {
				body.add(exprTree(e, fs))
			}
			node.add(body)
		}
		return node
	default:
		panic(fmt.Sprintf("diagfmt: unhandled declaration %T", d))
	}
}

func addBindings(node *treeNode, bindings []ast.Binding, fs *source.FileSet) {
	for _, b := range bindings {
		bn := leaf("Binding: %s", b.Name)
		if b.Type != nil {
			bn.add(typeTree(b.Type, fs))
		}
		if b.Init != nil {
			bn.add(exprTree(b.Init, fs))
		}
		node.add(bn)
	}
}

func addParams(node *treeNode, params []ast.Param, fs *source.FileSet) {
	for _, p := range params {
		label := "Param: " + p.Name
		if p.Variadic {
			label += "..."
		}
		pn := leaf("%s", label)
		if p.Type != nil {
			pn.add(typeTree(p.Type, fs))
		}
		node.add(pn)
	}
}

func typeTree(t ast.Type, fs *source.FileSet) *treeNode {
	switch t := t.(type) {
	case *ast.NamedType:
		return leaf("NamedType: %s", format.Path(t.Path))
	case *ast.PointerType:
		node := leaf("PointerType")
		node.add(typeTree(t.Elem, fs))
		return node
	case *ast.ListType:
		node := leaf("ListType")
		if t.Len != nil {
			node.add(exprTree(t.Len, fs))
		}
		node.add(typeTree(t.Elem, fs))
		return node
	case *ast.FnType:
		node := leaf("FnType")
		addParams(node, t.Params, fs)
		if t.Result != nil {
			node.add(typeTree(t.Result, fs))
		}
		return node
	case *ast.EnumType:
		node := leaf("EnumType: %s", t.Base)
		for _, c := range t.Cases {
			cn := leaf("Case: %s", c.Name)
			if c.Value != nil {
				cn.add(exprTree(c.Value, fs))
			}
			node.add(cn)
		}
		return node
	case *ast.StructType:
		node := leaf("StructType")
		addMembers(node, t.Members, fs)
		return node
	case *ast.UnionType:
		node := leaf("UnionType")
		addMembers(node, t.Members, fs)
		return node
	case *ast.TaggedUnionType:
		node := leaf("TaggedUnionType")
		for _, alt := range t.Alts {
			node.add(typeTree(alt, fs))
		}
		return node
	case *ast.TupleType:
		node := leaf("TupleType")
		for _, e := range t.Elems {
			node.add(typeTree(e, fs))
		}
		return node
	default:
		panic(fmt.Sprintf("diagfmt: unhandled type %T", t))
	}
}

func addMembers(node *treeNode, members []ast.StructMember, fs *source.FileSet) {
	for _, m := range members {
		var mn *treeNode
		switch {
		case len(m.AliasOf) > 0:
			mn = leaf("Alias: %s = %s", m.Name, format.Path(m.AliasOf))
		case m.Name != "":
			mn = leaf("Field: %s", m.Name)
		default:
			mn = leaf("Embedded")
		}
		if m.Offset != nil {
			off := leaf("Offset")
			off.add(exprTree(m.Offset, fs))
			mn.add(off)
		}
		if m.Type != nil {
			mn.add(typeTree(m.Type, fs))
		}
		node.add(mn)
	}
}

func exprTree(e ast.Expr, fs *source.FileSet) *treeNode {
	switch e := e.(type) {
	case *ast.PathExpr:
		return leaf("Path: %s", format.Path(e.Segments))
	case *ast.LitExpr:
		return leaf("Lit: %s %q", e.Kind, e.Text)
	case *ast.CallExpr:
		node := leaf("Call")
		node.add(exprTree(e.Fn, fs))
		for _, a := range e.Args {
			node.add(exprTree(a, fs))
		}
		return node
	case *ast.IndexExpr:
		node := leaf("Index")
		node.add(exprTree(e.X, fs))
		node.add(exprTree(e.Index, fs))
		return node
	case *ast.SliceExpr:
		node := leaf("Slice")
		node.add(exprTree(e.X, fs))
		if e.Lo != nil {
			node.add(exprTree(e.Lo, fs))
		}
		if e.Hi != nil {
			node.add(exprTree(e.Hi, fs))
		}
		return node
	case *ast.FieldExpr:
		node := leaf("Field: %s", e.Name)
		node.add(exprTree(e.X, fs))
		return node
	case *ast.CastExpr:
		node := leaf("Cast")
		node.add(exprTree(e.X, fs))
		node.add(typeTree(e.Type, fs))
		return node
	case *ast.UnaryExpr:
		node := leaf("Unary: %s", e.Op)
		node.add(exprTree(e.X, fs))
		return node
	case *ast.BinaryExpr:
		node := leaf("Binary: %s", e.Op)
		node.add(exprTree(e.X, fs))
		node.add(exprTree(e.Y, fs))
		return node
	case *ast.AssignExpr:
		node := leaf("Assign: %s", e.Op)
		node.add(exprTree(e.Target, fs))
		node.add(exprTree(e.Value, fs))
		return node
	case *ast.LetExpr:
		node := leaf("Let")
		addBindings(node, e.Bindings, fs)
		return node
	case *ast.ArrayLit:
		node := leaf("ArrayLit")
		for _, el := range e.Elems {
			node.add(exprTree(el, fs))
		}
		return node
	case *ast.TupleLit:
		node := leaf("TupleLit")
		for _, el := range e.Elems {
			node.add(exprTree(el, fs))
		}
		return node
	case *ast.StructLit:
		node := leaf("StructLit: %s", format.Path(e.Name))
		for _, f := range e.Fields {
			fn := leaf("Field: %s", f.Name)
			fn.add(exprTree(f.Value, fs))
			node.add(fn)
		}
		return node
	case *ast.BlockExpr:
		node := leaf("Block")
		for _, el := range e.Exprs {
			node.add(exprTree(el, fs))
		}
		return node
	case *ast.IfExpr:
		node := leaf("If")
		node.add(exprTree(e.Cond, fs))
		node.add(exprTree(e.Then, fs))
		if e.Else != nil {
			node.add(exprTree(e.Else, fs))
		}
		return node
	case *ast.ForExpr:
		node := leaf("For")
		if e.Init != nil {
			node.add(exprTree(e.Init, fs))
		}
		if e.Cond != nil {
			node.add(exprTree(e.Cond, fs))
		}
		if e.Post != nil {
			node.add(exprTree(e.Post, fs))
		}
		node.add(exprTree(e.Body, fs))
		return node
	case *ast.MatchExpr:
		node := leaf("Match")
		node.add(exprTree(e.Scrutinee, fs))
		for _, c := range e.Cases {
			var cn *treeNode
			if c.Guard == nil {
				cn = leaf("Case: default")
			} else {
				cn = leaf("Case")
				cn.add(typeTree(c.Guard, fs))
			}
			for _, b := range c.Body {
				cn.add(exprTree(b, fs))
			}
			node.add(cn)
		}
		return node
	case *ast.SwitchExpr:
		node := leaf("Switch")
		node.add(exprTree(e.Scrutinee, fs))
		for _, c := range e.Cases {
			var cn *treeNode
			if len(c.Values) == 0 {
				cn = leaf("Case: default")
			} else {
				cn = leaf("Case")
				for _, v := range c.Values {
					cn.add(exprTree(v, fs))
				}
			}
			for _, b := range c.Body {
				cn.add(exprTree(b, fs))
			}
			node.add(cn)
		}
		return node
	case *ast.DeferExpr:
		node := leaf("Defer")
		node.add(exprTree(e.X, fs))
		return node
	case *ast.FreeExpr:
		node := leaf("Free")
		node.add(exprTree(e.X, fs))
		return node
	case *ast.AllocExpr:
		node := leaf("Alloc")
		node.add(exprTree(e.Init, fs))
		if e.Cap != nil {
			node.add(exprTree(e.Cap, fs))
		}
		return node
	case *ast.AppendExpr:
		name := "Append"
		if e.Insert {
			name = "Insert"
		}
		node := leaf("%s", name)
		node.add(exprTree(e.Target, fs))
		for _, v := range e.Values {
			node.add(exprTree(v, fs))
		}
		if e.Spread != nil {
			node.add(exprTree(e.Spread, fs))
		}
		return node
	case *ast.AssertExpr:
		node := leaf("Assert")
		node.add(exprTree(e.Cond, fs))
		if e.Msg != nil {
			node.add(exprTree(e.Msg, fs))
		}
		return node
	case *ast.SizeExpr:
		node := leaf("Size")
		node.add(typeTree(e.Type, fs))
		return node
	case *ast.LenExpr:
		node := leaf("Len")
		node.add(exprTree(e.X, fs))
		return node
	case *ast.OffsetExpr:
		node := leaf("Offset")
		node.add(exprTree(e.X, fs))
		return node
	case *ast.BreakExpr:
		return leaf("Break")
	case *ast.ContinueExpr:
		return leaf("Continue")
	case *ast.ReturnExpr:
		node := leaf("Return")
		if e.Value != nil {
			node.add(exprTree(e.Value, fs))
		}
		return node
	case *ast.YieldExpr:
		node := leaf("Yield")
		if e.Value != nil {
			node.add(exprTree(e.Value, fs))
		}
		return node
	case *ast.SpreadExpr:
		node := leaf("Spread")
		node.add(exprTree(e.X, fs))
		return node
	default:
		panic(fmt.Sprintf("diagfmt: unhandled expression %T", e))
	}
}
