package funcwrap

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	// ErrArgumentTypes is the kind of every argument type mismatch: no
	// overload accepts the runtime types of the supplied arguments.
	ErrArgumentTypes = &Error{Name: "ArgumentTypeMismatch"}

	// ErrNotCallable is an error if object is not callable.
	ErrNotCallable = &Error{Name: "NotCallableError"}

	// ErrWrongNumArguments is an error if wrong number of arguments is passed.
	ErrWrongNumArguments = &Error{Name: "WrongNumberOfArgumentsError"}

	// ErrType represents a type error.
	ErrType = &Error{Name: "TypeError"}

	// ErrNotHashable is an error if a non hashable object is used as a key.
	ErrNotHashable = &Error{Name: "NotHashableError"}

	// ErrNotFound is an error if a key or name does not exist.
	ErrNotFound = &Error{Name: "NotFoundError"}

	// ErrIndexOutOfBounds is an error if index is out of bounds.
	ErrIndexOutOfBounds = &Error{Name: "IndexOutOfBoundsError"}

	// ErrUnsupportedType is an error if a Go type cannot cross the bridge.
	ErrUnsupportedType = &Error{Name: "UnsupportedTypeError"}

	// ErrNativePanic is an error if a native function panics.
	ErrNativePanic = &Error{Name: "NativePanicError"}

	// ErrNative wraps errors returned by native functions.
	ErrNative = &Error{Name: "NativeError"}

	// ErrNotImplemented is an error if an Object method is not implemented.
	ErrNotImplemented = &Error{Name: "NotImplementedError"}
)

// Error represents Error Object and implements error and Object interfaces.
// It is what the script side receives for every failed call.
type Error struct {
	Name    string
	Message string
	Cause   error
}

var (
	_ Object      = (*Error)(nil)
	_ Copier      = (*Error)(nil)
	_ IndexGetter = (*Error)(nil)
)

func (o *Error) Unwrap() error {
	return o.Cause
}

// Is reports whether target is the sentinel Error o was derived from.
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Name == o.Name
}

func (o *Error) Type() ObjectType {
	return TError
}

func (o *Error) ToString() string {
	return o.Error()
}

// Copy implements Copier interface.
func (o *Error) Copy() Object {
	return &Error{
		Name:    o.Name,
		Message: o.Message,
		Cause:   o.Cause,
	}
}

// Error implements error interface.
func (o *Error) Error() string {
	name := o.Name
	if name == "" {
		name = "error"
	}
	if o.Message == "" {
		return name
	}
	return fmt.Sprintf("%s: %s", name, o.Message)
}

// Equal implements Object interface.
func (o *Error) Equal(right Object) bool {
	if v, ok := right.(*Error); ok {
		return v == o
	}
	return false
}

// IsFalsy implements Object interface.
func (o *Error) IsFalsy() bool { return true }

// IndexGet implements IndexGetter interface.
func (o *Error) IndexGet(index Object) (Object, error) {
	switch index.ToString() {
	case "Name":
		return Str(o.Name), nil
	case "Message":
		return Str(o.Message), nil
	}
	return Nil, nil
}

// NewError creates a new Error and sets original Error as its cause which can be unwrapped.
func (o *Error) NewError(messages ...string) *Error {
	cp := o.Copy().(*Error)
	cp.Message = strings.Join(messages, " ")
	cp.Cause = o
	return cp
}

// NewArgumentTypeError creates a new Error from ErrType for the argument at
// the zero based position pos.
func NewArgumentTypeError(pos int, expectType, foundType string) *Error {
	return ErrType.NewError(fmt.Sprintf("invalid type for %s argument: expected %s, found %s",
		humanize.Ordinal(pos+1), expectType, foundType))
}

// NewIndexTypeError creates a new Error from ErrType.
func NewIndexTypeError(expectType, foundType string) *Error {
	return ErrType.NewError(fmt.Sprintf("index type expected %s, found %s", expectType, foundType))
}

// NewArgumentError wraps err with the position of the argument it was raised
// for.
func NewArgumentError(pos int, err error) *Error {
	e := ErrType.NewError(fmt.Sprintf("%s argument: %v", humanize.Ordinal(pos+1), err))
	e.Cause = err
	return e
}
