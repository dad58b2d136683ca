// Package funcwrap exposes native Go functions to a dynamic script side.
//
// Script side values implement Object. A Go func is wrapped into a Wrapper,
// which marshals its arguments from objects and its results back to objects
// according to the TypeDesc of each parameter and result:
//
//	w := funcwrap.MustWrap("twice", func(f func() float64) float64 { return 2 * f() })
//	ret, err := w.Invoke(thunk) // thunk is any callable object
//
// Reference objects (*Dict, *Array, Object typed values) cross the bridge
// without being copied. Script callables passed where a Go func is declared
// become Go funcs calling back into the script side, and Go funcs returned
// to the script side become Wrappers.
//
// Several Wrappers sharing a name form an OverloadSet; a call selects the
// first candidate, in registration order, that accepts the runtime types of
// the arguments. A Module groups overload sets under a name. When no
// candidate matches, the script side receives an *Error whose Message starts
// with ArgumentTypesPrefix.
package funcwrap
