package imports

import (
	"fmt"

	"drift/internal/ast"
)

// Walk visits every node of the file's declarations that can contain a
// qualified-name reference and feeds each reference to the registry.
//
// The dispatchers below type-switch over the closed variant sets of the ast
// package and panic on an unknown node, so extending the grammar without
// extending the walk fails loudly instead of silently under-reporting usage.
// Marking is idempotent and commutative: visiting order never changes the
// outcome.
func Walk(f *ast.File, reg *Registry) {
	w := walker{reg: reg}
	for _, d := range f.Decls {
		w.decl(d)
	}
}

type walker struct {
	reg *Registry
}

func (w *walker) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.TypeDecl:
		w.typ(d.Type)
	case *ast.VarDecl:
		w.bindings(d.Bindings)
	case *ast.ConstDecl:
		w.bindings(d.Bindings)
	case *ast.FnDecl:
		w.params(d.Params)
		w.optType(d.Result)
		w.expr(d.Body)
	default:
		panic(fmt.Sprintf("imports: unhandled declaration %T", d))
	}
}

func (w *walker) bindings(bs []ast.Binding) {
	for i := range bs {
		w.optType(bs[i].Type)
		w.optExpr(bs[i].Init)
	}
}

func (w *walker) params(ps []ast.Param) {
	for i := range ps {
		w.typ(ps[i].Type)
	}
}

func (w *walker) optType(t ast.Type) {
	if t != nil {
		w.typ(t)
	}
}

func (w *walker) optExpr(e ast.Expr) {
	if e != nil {
		w.expr(e)
	}
}

func (w *walker) typ(t ast.Type) {
	switch t := t.(type) {
	case *ast.NamedType:
		// Имя алиаса/типа — само по себе ссылка.
		w.reg.Register(t.Path)

	case *ast.PointerType:
		w.typ(t.Elem)

	case *ast.ListType:
		w.optExpr(t.Len)
		w.typ(t.Elem)

	case *ast.FnType:
		w.params(t.Params)
		w.optType(t.Result)

	case *ast.EnumType:
		for i := range t.Cases {
			w.optExpr(t.Cases[i].Value)
		}

	case *ast.StructType:
		w.members(t.Members)

	case *ast.UnionType:
		w.members(t.Members)

	case *ast.TaggedUnionType:
		for _, alt := range t.Alts {
			w.typ(alt)
		}

	case *ast.TupleType:
		for _, elem := range t.Elems {
			w.typ(elem)
		}

	default:
		panic(fmt.Sprintf("imports: unhandled type %T", t))
	}
}

func (w *walker) members(ms []ast.StructMember) {
	for i := range ms {
		m := &ms[i]
		w.optExpr(m.Offset)
		// поле или embedded — ссылка на тип; алиас — ссылка на имя
		w.optType(m.Type)
		if len(m.AliasOf) > 0 {
			w.reg.Register(m.AliasOf)
		}
	}
}

func (w *walker) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.PathExpr:
		w.reg.Register(e.Segments)

	case *ast.LitExpr:
		// литералы ссылок не содержат

	case *ast.CallExpr:
		w.expr(e.Fn)
		for _, arg := range e.Args {
			w.expr(arg)
		}

	case *ast.IndexExpr:
		w.expr(e.X)
		w.expr(e.Index)

	case *ast.SliceExpr:
		w.expr(e.X)
		w.optExpr(e.Lo)
		w.optExpr(e.Hi)

	case *ast.FieldExpr:
		w.expr(e.X)

	case *ast.CastExpr:
		w.expr(e.X)
		w.typ(e.Type)

	case *ast.UnaryExpr:
		w.expr(e.X)

	case *ast.BinaryExpr:
		w.expr(e.X)
		w.expr(e.Y)

	case *ast.AssignExpr:
		w.expr(e.Target)
		w.expr(e.Value)

	case *ast.LetExpr:
		w.bindings(e.Bindings)

	case *ast.ArrayLit:
		for _, elem := range e.Elems {
			w.expr(elem)
		}

	case *ast.TupleLit:
		for _, elem := range e.Elems {
			w.expr(elem)
		}

	case *ast.StructLit:
		// имя литерала структуры — ссылка на тип
		w.reg.Register(e.Name)
		for i := range e.Fields {
			w.expr(e.Fields[i].Value)
		}

	case *ast.BlockExpr:
		for _, sub := range e.Exprs {
			w.expr(sub)
		}

	case *ast.IfExpr:
		w.expr(e.Cond)
		w.expr(e.Then)
		w.optExpr(e.Else)

	case *ast.ForExpr:
		w.optExpr(e.Init)
		w.optExpr(e.Cond)
		w.optExpr(e.Post)
		w.expr(e.Body)

	case *ast.MatchExpr:
		w.expr(e.Scrutinee)
		for i := range e.Cases {
			w.optType(e.Cases[i].Guard)
			for _, sub := range e.Cases[i].Body {
				w.expr(sub)
			}
		}

	case *ast.SwitchExpr:
		w.expr(e.Scrutinee)
		for i := range e.Cases {
			for _, v := range e.Cases[i].Values {
				w.expr(v)
			}
			for _, sub := range e.Cases[i].Body {
				w.expr(sub)
			}
		}

	case *ast.DeferExpr:
		w.expr(e.X)

	case *ast.FreeExpr:
		w.expr(e.X)

	case *ast.AllocExpr:
		w.expr(e.Init)
		w.optExpr(e.Cap)

	case *ast.AppendExpr:
		w.expr(e.Target)
		for _, v := range e.Values {
			w.expr(v)
		}
		w.optExpr(e.Spread)

	case *ast.AssertExpr:
		w.optExpr(e.Cond)
		w.optExpr(e.Msg)

	case *ast.SizeExpr:
		w.typ(e.Type)

	case *ast.LenExpr:
		w.expr(e.X)

	case *ast.OffsetExpr:
		w.expr(e.X)

	case *ast.BreakExpr, *ast.ContinueExpr:
		// переноса значения нет

	case *ast.ReturnExpr:
		w.optExpr(e.Value)

	case *ast.YieldExpr:
		w.optExpr(e.Value)

	case *ast.SpreadExpr:
		w.expr(e.X)

	default:
		panic(fmt.Sprintf("imports: unhandled expression %T", e))
	}
}
