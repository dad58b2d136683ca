package funcwrap

import (
	"errors"
	"strings"
)

// ArgumentTypesPrefix starts the message of every argument type mismatch.
// Callers should match it rather than a narrower error value.
const ArgumentTypesPrefix = "Script argument types in"

// MismatchError is returned when no overload accepts the supplied arguments.
type MismatchError struct {
	// Name is the qualified name of the called function.
	Name string
	// ArgTypes are the type names of the supplied arguments.
	ArgTypes []string
	// Signatures are the declared signatures in registration order.
	Signatures []string
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString(ArgumentTypesPrefix)
	b.WriteString("\n    ")
	b.WriteString(e.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(e.ArgTypes, ", "))
	b.WriteString(")\ndid not match native signature")
	if len(e.Signatures) > 1 {
		b.WriteByte('s')
	}
	b.WriteByte(':')
	for _, sig := range e.Signatures {
		b.WriteString("\n    ")
		b.WriteString(sig)
	}
	return b.String()
}

// Is reports whether target is ErrArgumentTypes.
func (e *MismatchError) Is(target error) bool {
	return target == ErrArgumentTypes
}

// Translate converts a native failure into the Error object the script side
// receives. Errors already in that form are returned unchanged.
func Translate(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	var me *MismatchError
	if errors.As(err, &me) {
		return &Error{
			Name:    ErrArgumentTypes.Name,
			Message: me.Error(),
			Cause:   me,
		}
	}
	e := ErrNative.NewError(err.Error())
	e.Cause = err
	return e
}
