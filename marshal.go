package funcwrap

import (
	"fmt"
	"reflect"
)

// funcDesc bridges Go func types. Any callable object is accepted, since the
// arity and parameter types of a script callable cannot be checked before
// it is called.
type funcDesc struct {
	maskDesc
	params     []TypeDesc
	result     TypeDesc
	returnsErr bool
	conv       *ObjectConverters
}

func (oc *ObjectConverters) funcDescOf(t reflect.Type) (*funcDesc, error) {
	params, err := oc.paramsOf(t)
	if err != nil {
		return nil, err
	}
	result, returnsErr, err := oc.resultsOf(t)
	if err != nil {
		return nil, err
	}
	d := &funcDesc{
		params:     params,
		result:     result,
		returnsErr: returnsErr,
		conv:       oc,
	}
	d.maskDesc = maskDesc{
		name: signatureOf("func", params, result, returnsErr),
		t:    t,
		mask: kindCallable,
	}
	return d, nil
}

// ToGo returns a Go func calling o. A wrapper of the same func type is
// unwrapped to the func it holds.
//
// If the func type has no error result, a failing call of o panics with an
// error wrapping the script error. The bridge recovers it when the func is
// called from a wrapped native function; native code keeping the func and
// calling it later, or from another goroutine, must recover it itself.
func (d *funcDesc) ToGo(o Object) (reflect.Value, error) {
	if w, ok := o.(*Wrapper); ok && w.fn.Type() == d.t {
		return w.fn, nil
	}
	if !Callable(o) {
		return reflect.Value{}, ErrNotCallable.NewError(o.Type().Name())
	}
	callee := o.(CallerObject)
	return reflect.MakeFunc(d.t, func(in []reflect.Value) []reflect.Value {
		return d.callback(callee, in)
	}), nil
}

// ToObject wraps a Go func so that the script side can call it.
func (d *funcDesc) ToObject(v reflect.Value) (Object, error) {
	if v.IsNil() {
		return Nil, nil
	}
	return &Wrapper{
		fn:         v,
		params:     d.params,
		result:     d.result,
		returnsErr: d.returnsErr,
	}, nil
}

func (d *funcDesc) callback(callee CallerObject, in []reflect.Value) []reflect.Value {
	args := make(Args, len(in))
	for i, v := range in {
		o, err := d.params[i].ToObject(v)
		if err != nil {
			return d.fail(NewArgumentError(i, err))
		}
		args[i] = o
	}

	ret, err := callee.Call(NewCall(WithArgs(args...)))
	if err != nil {
		return d.fail(err)
	}
	if ret == nil {
		ret = Nil
	}

	out := make([]reflect.Value, 0, 2)
	if d.result != nil {
		if !d.result.Accepts(ret) {
			return d.fail(ErrType.NewError(fmt.Sprintf("invalid result of %s: expected %s, found %s",
				callee.ToString(), d.result.Name(), ret.Type().Name())))
		}
		rv, err := d.result.ToGo(ret)
		if err != nil {
			return d.fail(err)
		}
		out = append(out, rv)
	}
	if d.returnsErr {
		out = append(out, reflect.Zero(errorType))
	}
	return out
}

// fail reports err from a callback. Func types returning an error get it as
// their error result; for the others the native frame is unwound up to the
// wrapper that called it.
func (d *funcDesc) fail(err error) []reflect.Value {
	if !d.returnsErr {
		panic(&callbackError{err: err})
	}
	out := make([]reflect.Value, 0, 2)
	if d.result != nil {
		out = append(out, reflect.Zero(d.result.GoType()))
	}
	ev := reflect.New(errorType).Elem()
	ev.Set(reflect.ValueOf(err))
	return append(out, ev)
}

// callbackError carries the error of a script callback through the native
// frames that have no error result.
type callbackError struct {
	err error
}

func (e *callbackError) Error() string {
	return "callback failed: " + e.err.Error()
}

func (e *callbackError) Unwrap() error {
	return e.err
}

func safeCall(fn reflect.Value, argv []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*callbackError); ok {
				err = ce.err
				return
			}
			e := ErrNativePanic.NewError(fmt.Sprintf("%s: %v", fn.Type(), r))
			if re, ok := r.(error); ok {
				e.Cause = re
			}
			err = e
		}
	}()
	return fn.Call(argv), nil
}

// wrapValue wraps the func value rv.
func (oc *ObjectConverters) wrapValue(name string, rv reflect.Value) (*Wrapper, error) {
	d, err := oc.funcDescOf(rv.Type())
	if err != nil {
		return nil, err
	}
	w, _ := d.ToObject(rv)
	wr := w.(*Wrapper)
	wr.Name = name
	return wr, nil
}
