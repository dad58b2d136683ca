// Package repl evaluates call expressions against a funcwrap.Module. Input
// is a subset of Go expression syntax: literals, names, calls, indexing,
// selectors and `name = expr` assignments.
package repl

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/gad-lang/funcwrap"
	"go.uber.org/zap"
)

// LastName is bound to the result of the last evaluated expression.
const LastName = "_"

var ErrSyntax = &funcwrap.Error{Name: "SyntaxError"}

// Evaluator evaluates expressions. Names resolve in order to variables,
// functions of the module, modules by name and builtins.
type Evaluator struct {
	Module   *funcwrap.Module
	modules  map[string]*funcwrap.Module
	vars     map[string]funcwrap.Object
	builtins map[string]funcwrap.Object
	last     funcwrap.Object
}

// New returns an Evaluator calling the functions of m by their name. The
// functions of others are reached through their module, as in json.Marshal.
func New(m *funcwrap.Module, others ...*funcwrap.Module) *Evaluator {
	e := &Evaluator{
		Module:   m,
		modules:  map[string]*funcwrap.Module{},
		vars:     map[string]funcwrap.Object{},
		builtins: Builtins(),
		last:     funcwrap.Nil,
	}
	for _, o := range append(others, m) {
		if o != nil {
			e.modules[o.Name] = o
		}
	}
	return e
}

// Set binds name to v.
func (e *Evaluator) Set(name string, v funcwrap.Object) {
	e.vars[name] = v
}

// Lookup resolves name.
func (e *Evaluator) Lookup(name string) (funcwrap.Object, bool) {
	switch name {
	case "true":
		return funcwrap.True, true
	case "false":
		return funcwrap.False, true
	case "nil":
		return funcwrap.Nil, true
	case LastName:
		return e.last, true
	}
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Module != nil {
		if set, ok := e.Module.Get(name); ok {
			return set, true
		}
	}
	if m, ok := e.modules[name]; ok {
		return m, true
	}
	v, ok := e.builtins[name]
	return v, ok
}

// Eval evaluates src. An assignment evaluates to the assigned value.
func (e *Evaluator) Eval(src string) (funcwrap.Object, error) {
	name, expr := splitAssign(src)
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, ErrSyntax.NewError(err.Error())
	}
	v, err := e.eval(x)
	if err != nil {
		funcwrap.Logger().Debug("evaluation failed", zap.String("src", src), zap.Error(err))
		return nil, funcwrap.Translate(err)
	}
	if name != "" {
		e.vars[name] = v
	}
	e.last = v
	return v, nil
}

// Call evaluates name to a callable and calls it with the values of the
// argument expressions. name is a function of the module or, for other
// modules, module.name.
func (e *Evaluator) Call(name string, argSrcs ...string) (funcwrap.Object, error) {
	callee, err := e.Eval(name)
	if err != nil {
		return nil, err
	}
	args := make([]funcwrap.Object, len(argSrcs))
	for i, src := range argSrcs {
		if args[i], err = e.Eval(src); err != nil {
			return nil, err
		}
	}
	ret, err := funcwrap.MustCall(callee, args...)
	if err != nil {
		return nil, funcwrap.Translate(err)
	}
	return ret, nil
}

func splitAssign(src string) (name, expr string) {
	lhs, rhs, ok := strings.Cut(src, "=")
	if !ok || strings.HasPrefix(rhs, "=") {
		return "", src
	}
	lhs = strings.TrimSpace(lhs)
	if !token.IsIdentifier(lhs) || lhs == LastName {
		return "", src
	}
	return lhs, rhs
}

func (e *Evaluator) eval(x ast.Expr) (funcwrap.Object, error) {
	switch x := x.(type) {
	case *ast.BasicLit:
		return literal(x)
	case *ast.Ident:
		if v, ok := e.Lookup(x.Name); ok {
			return v, nil
		}
		return nil, funcwrap.ErrNotFound.NewError(x.Name)
	case *ast.ParenExpr:
		return e.eval(x.X)
	case *ast.UnaryExpr:
		v, err := e.eval(x.X)
		if err != nil {
			return nil, err
		}
		return unary(x.Op, v)
	case *ast.CallExpr:
		if x.Ellipsis.IsValid() {
			return nil, ErrSyntax.NewError("variadic call")
		}
		fn, err := e.eval(x.Fun)
		if err != nil {
			return nil, err
		}
		args := make([]funcwrap.Object, len(x.Args))
		for i, a := range x.Args {
			if args[i], err = e.eval(a); err != nil {
				return nil, err
			}
		}
		return funcwrap.MustCall(fn, args...)
	case *ast.IndexExpr:
		v, err := e.eval(x.X)
		if err != nil {
			return nil, err
		}
		index, err := e.eval(x.Index)
		if err != nil {
			return nil, err
		}
		return indexGet(v, index)
	case *ast.SelectorExpr:
		v, err := e.eval(x.X)
		if err != nil {
			return nil, err
		}
		return indexGet(v, funcwrap.Str(x.Sel.Name))
	}
	return nil, ErrSyntax.NewError(fmt.Sprintf("unsupported expression %T", x))
}

func literal(x *ast.BasicLit) (funcwrap.Object, error) {
	switch x.Kind {
	case token.INT:
		i, err := strconv.ParseInt(x.Value, 0, 64)
		if err != nil {
			return nil, ErrSyntax.NewError(err.Error())
		}
		return funcwrap.Int(i), nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return nil, ErrSyntax.NewError(err.Error())
		}
		return funcwrap.Float(f), nil
	case token.STRING, token.CHAR:
		s, err := strconv.Unquote(x.Value)
		if err != nil {
			return nil, ErrSyntax.NewError(err.Error())
		}
		return funcwrap.Str(s), nil
	}
	return nil, ErrSyntax.NewError("unsupported literal " + x.Value)
}

func unary(op token.Token, v funcwrap.Object) (funcwrap.Object, error) {
	switch op {
	case token.ADD:
		if _, ok := funcwrap.ToFloat64(v); ok {
			return v, nil
		}
	case token.SUB:
		switch v := v.(type) {
		case funcwrap.Int:
			return -v, nil
		case funcwrap.Float:
			return -v, nil
		case funcwrap.Decimal:
			return funcwrap.Decimal(v.Go().Neg()), nil
		}
	case token.NOT:
		return funcwrap.Bool(v.IsFalsy()), nil
	default:
		return nil, ErrSyntax.NewError("unsupported operator " + op.String())
	}
	return nil, funcwrap.ErrType.NewError(fmt.Sprintf("invalid operand for %s: %s", op, v.Type().Name()))
}

func indexGet(v, index funcwrap.Object) (funcwrap.Object, error) {
	g, ok := v.(funcwrap.IndexGetter)
	if !ok {
		return nil, funcwrap.ErrType.NewError(v.Type().Name() + " is not indexable")
	}
	return g.IndexGet(index)
}

// Format returns the text printed for v.
func Format(v funcwrap.Object) string {
	if s, ok := v.(funcwrap.Str); ok {
		return strconv.Quote(string(s))
	}
	return v.ToString()
}
