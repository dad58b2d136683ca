package funcwrap

import "fmt"

// Args holds the positional arguments of a call.
type Args []Object

// GetDefault returns the nth argument. If n is greater than the number of
// arguments, return defaul.
func (c Args) GetDefault(n int, defaul Object) Object {
	if n < len(c) {
		return c[n]
	}
	return defaul
}

// Get returns the nth argument. If n is greater than the number of arguments,
// it panics!
func (c Args) Get(n int) (v Object) {
	v = c.GetDefault(n, nil)
	if v == nil {
		panic(fmt.Sprintf("index out of range [%d] with length %d", n, c.Len()))
	}
	return
}

// ShiftOk returns the first argument and removes it from the arguments.
// If it cannot ShiftOk, it returns Nil and false.
func (c *Args) ShiftOk() (Object, bool) {
	if len(*c) == 0 {
		return Nil, false
	}
	v := (*c)[0]
	*c = (*c)[1:]
	return v, true
}

// Shift returns the first argument and removes it from the arguments.
// If it cannot Shift, it returns Nil.
func (c *Args) Shift() (v Object) {
	v, _ = c.ShiftOk()
	return v
}

// Len returns the number of arguments.
func (c Args) Len() int {
	return len(c)
}

// CheckLen checks the number of arguments. If the number of arguments is not
// equal to n, it returns an error.
func (c Args) CheckLen(n int) error {
	if n != c.Len() {
		return ErrWrongNumArguments.NewError(
			fmt.Sprintf("want=%d got=%d", n, c.Len()),
		)
	}
	return nil
}

// Walk calls cb for every argument until cb returns a non nil value, which is
// returned.
func (c Args) Walk(cb func(i int, arg Object) any) (v any) {
	for i, arg := range c {
		if v = cb(i, arg); v != nil {
			return
		}
	}
	return
}

// Types returns the type names of the arguments.
func (c Args) Types() []string {
	return TypeNames(c...)
}

// Call is the invocation request passed to CallerObject.Call. It is created
// per call and discarded after dispatch.
type Call struct {
	Args Args
}

// NewCall creates a new Call struct.
func NewCall(opts ...CallOpt) Call {
	var c Call
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type CallOpt func(c *Call)

func WithArgs(args ...Object) CallOpt {
	return func(c *Call) {
		c.Args = args
	}
}

// MustCall calls callee with args. It returns ErrNotCallable if callee is not
// callable.
func MustCall(callee Object, args ...Object) (Object, error) {
	if !Callable(callee) {
		return nil, ErrNotCallable.NewError(callee.Type().Name())
	}
	return callee.(CallerObject).Call(NewCall(WithArgs(args...)))
}
