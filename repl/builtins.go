package repl

import (
	"fmt"

	"github.com/gad-lang/funcwrap"
	"github.com/shopspring/decimal"
)

// Builtins returns the script side callables available to every Evaluator.
func Builtins() map[string]funcwrap.Object {
	return map[string]funcwrap.Object{
		"dict":   &funcwrap.Function{Name: "dict", Value: builtinDict},
		"array":  &funcwrap.Function{Name: "array", Value: builtinArray},
		"thunk":  funcwrap.MustWrap("thunk", builtinThunk),
		"setter": funcwrap.MustWrap("setter", builtinSetter),
		"adder":  funcwrap.MustWrap("adder", builtinAdder),
		"is":     funcwrap.MustWrap("is", funcwrap.Identical),
		"type": funcwrap.MustWrap("type", func(o funcwrap.Object) string {
			return o.Type().Name()
		}),
		"decimal": funcwrap.NewOverloadSet("decimal",
			funcwrap.MustWrap("decimal", func(s string) (decimal.Decimal, error) {
				return decimal.NewFromString(s)
			}),
			funcwrap.MustWrap("decimal", func(d decimal.Decimal) decimal.Decimal {
				return d
			}),
		),
	}
}

func builtinDict(c funcwrap.Call) (funcwrap.Object, error) {
	if c.Args.Len()%2 != 0 {
		return nil, funcwrap.ErrWrongNumArguments.NewError(
			fmt.Sprintf("want=even got=%d", c.Args.Len()))
	}
	d := funcwrap.NewDict()
	for i := 0; i < c.Args.Len(); i += 2 {
		if err := d.Set(c.Args[i], c.Args[i+1]); err != nil {
			return nil, funcwrap.NewArgumentError(i, err)
		}
	}
	return d, nil
}

func builtinArray(c funcwrap.Call) (funcwrap.Object, error) {
	return funcwrap.NewArray(append([]funcwrap.Object(nil), c.Args...)...), nil
}

// builtinThunk returns a thunk returning v.
func builtinThunk(v funcwrap.Object) func() funcwrap.Object {
	return func() funcwrap.Object { return v }
}

// builtinSetter returns a callable setting key to value on its argument and
// returning the argument.
func builtinSetter(key, value funcwrap.Object) func(funcwrap.Object) (funcwrap.Object, error) {
	return func(o funcwrap.Object) (funcwrap.Object, error) {
		s, ok := o.(funcwrap.IndexSetter)
		if !ok {
			return nil, funcwrap.NewArgumentTypeError(0, "dict or array", o.Type().Name())
		}
		if err := s.IndexSet(key, value); err != nil {
			return nil, err
		}
		return o, nil
	}
}

// builtinAdder returns a callable adding its argument to target[key].
func builtinAdder(target funcwrap.IndexGetSetter, key funcwrap.Object) func(funcwrap.Object) error {
	return func(n funcwrap.Object) error {
		cur, err := target.IndexGet(key)
		if err != nil {
			return err
		}
		sum, err := add(cur, n)
		if err != nil {
			return err
		}
		return target.IndexSet(key, sum)
	}
}

func add(a, b funcwrap.Object) (funcwrap.Object, error) {
	if x, ok := a.(funcwrap.Int); ok {
		if y, ok := b.(funcwrap.Int); ok {
			return x + y, nil
		}
	}
	_, decA := a.(funcwrap.Decimal)
	_, decB := b.(funcwrap.Decimal)
	if decA || decB {
		x, okA := funcwrap.ToDecimal(a)
		y, okB := funcwrap.ToDecimal(b)
		if okA && okB {
			return funcwrap.Decimal(x.Add(y)), nil
		}
	}
	x, okA := funcwrap.ToFloat64(a)
	y, okB := funcwrap.ToFloat64(b)
	if !okA || !okB {
		return nil, funcwrap.ErrType.NewError(fmt.Sprintf("cannot add %s and %s",
			a.Type().Name(), b.Type().Name()))
	}
	return funcwrap.Float(x + y), nil
}
