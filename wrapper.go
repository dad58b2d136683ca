package funcwrap

import (
	"fmt"
	"reflect"
)

// Wrapper holds a native Go func behind the uniform CallerObject interface.
// Its arity and descriptors are fixed when it is created.
type Wrapper struct {
	ObjectImpl
	Name       string
	fn         reflect.Value
	params     []TypeDesc
	result     TypeDesc
	returnsErr bool
}

var _ CallerObject = (*Wrapper)(nil)

// Wrap wraps the Go func fn using the default converters.
func Wrap(name string, fn any) (*Wrapper, error) {
	return (*ObjectConverters)(nil).Wrap(name, fn)
}

// MustWrap is like Wrap but panics on error.
func MustWrap(name string, fn any) *Wrapper {
	w, err := Wrap(name, fn)
	if err != nil {
		panic(err)
	}
	return w
}

// Wrap wraps the Go func fn. Values of `any` typed parameters and results are
// converted with oc.
func (oc *ObjectConverters) Wrap(name string, fn any) (*Wrapper, error) {
	if w, ok := fn.(*Wrapper); ok {
		cp := *w
		cp.Name = name
		return &cp, nil
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, ErrUnsupportedType.NewError(fmt.Sprintf("%T is not a function", fn))
	}
	if rv.IsNil() {
		return nil, ErrUnsupportedType.NewError("nil function")
	}
	return oc.wrapValue(name, rv)
}

func (*Wrapper) Type() ObjectType {
	return TNativeFunction
}

func (w *Wrapper) ToString() string {
	return fmt.Sprintf("<nativeFunction:%s>", w.Signature())
}

// Equal implements Object interface.
func (w *Wrapper) Equal(right Object) bool {
	v, ok := right.(*Wrapper)
	return ok && v == w
}

// IsFalsy implements Object interface.
func (*Wrapper) IsFalsy() bool { return false }

// Arity returns the number of parameters.
func (w *Wrapper) Arity() int {
	return len(w.params)
}

// Params returns the parameter descriptors.
func (w *Wrapper) Params() []TypeDesc {
	return append([]TypeDesc(nil), w.params...)
}

// Result returns the result descriptor, nil if the function returns nothing
// but an optional error.
func (w *Wrapper) Result() TypeDesc {
	return w.result
}

// Func returns the wrapped Go func.
func (w *Wrapper) Func() any {
	return w.fn.Interface()
}

func (w *Wrapper) Signature() string {
	return signatureOf(nameOr(w.Name), w.params, w.result, w.returnsErr)
}

// Accepts reports whether args match the arity and the parameter
// descriptors.
func (w *Wrapper) Accepts(args Args) bool {
	if len(args) != len(w.params) {
		return false
	}
	for i, p := range w.params {
		if !p.Accepts(args[i]) {
			return false
		}
	}
	return true
}

// Covers reports whether w accepts every argument list other accepts.
func (w *Wrapper) Covers(other *Wrapper) bool {
	if len(w.params) != len(other.params) {
		return false
	}
	for i, p := range w.params {
		if !p.Covers(other.params[i]) {
			return false
		}
	}
	return true
}

// Invoke calls the Go func with args. It returns a *MismatchError if args do
// not match the signature and native errors untranslated.
func (w *Wrapper) Invoke(args ...Object) (Object, error) {
	args = normalizeArgs(args)
	if !w.Accepts(args) {
		return nil, &MismatchError{
			Name:       nameOr(w.Name),
			ArgTypes:   Args(args).Types(),
			Signatures: []string{w.Signature()},
		}
	}
	return w.invoke(args)
}

// Call implements CallerObject interface. Errors are translated for the
// script side.
func (w *Wrapper) Call(c Call) (Object, error) {
	ret, err := w.Invoke(c.Args...)
	if err != nil {
		return nil, Translate(err)
	}
	return ret, nil
}

func (w *Wrapper) invoke(args Args) (_ Object, err error) {
	argv := make([]reflect.Value, len(args))
	for i, arg := range args {
		if argv[i], err = w.params[i].ToGo(arg); err != nil {
			return nil, NewArgumentError(i, err)
		}
	}

	out, err := safeCall(w.fn, argv)
	if err != nil {
		return nil, err
	}
	if w.returnsErr {
		if ev := out[len(out)-1]; !ev.IsNil() {
			return nil, ev.Interface().(error)
		}
	}
	if w.result == nil {
		return Nil, nil
	}
	return w.result.ToObject(out[0])
}

func normalizeArgs(args []Object) []Object {
	for i, arg := range args {
		if arg == nil {
			args[i] = Nil
		}
	}
	return args
}

func nameOr(name string) string {
	if name == "" {
		return "func"
	}
	return name
}
