// Package fnexample provides the fnexample module: functions taking Go funcs
// that can be called from the script side with script callables.
package fnexample

import (
	"github.com/gad-lang/funcwrap"
)

// Name is the module name.
const Name = "fnexample"

// Module is the fnexample module.
var Module = New()

// New returns a new fnexample module. opts configure it as in
// funcwrap.NewModule.
func New(opts ...funcwrap.ModuleOpt) *funcwrap.Module {
	return funcwrap.NewModule(Name, opts...).
		// call_function_with(f func(int), i int)
		// Calls f with i.
		MustDef("call_function_with", callFunctionWith).
		// call_python_function(f func(object) object, obj object) -> object
		// Returns f(obj). The object f returns is passed back as it is.
		MustDef("call_python_function", callPythonFunction).
		// times_two(get func() float64) -> float64
		// times_two(get func(int) int) -> int
		// times_two(value float64) -> float64
		// Doubles value or the result of get. A script callable always
		// selects the first overload: callables cannot be told apart by
		// their signature, so the second one is never selected for them.
		MustDef("times_two", timesTwoOf).
		MustDef("times_two", timesTwoOfInt).
		MustDef("times_two", timesTwoValue).
		// times_two_value(value float64) -> float64
		MustDef("times_two_value", timesTwoValue).
		// times_two_of(get func() float64) -> float64
		MustDef("times_two_of", timesTwoOf)
}

func callFunctionWith(f func(int), i int) {
	f(i)
}

func callPythonFunction(f func(funcwrap.Object) funcwrap.Object, obj funcwrap.Object) funcwrap.Object {
	return f(obj)
}

func timesTwoOf(get func() float64) float64 {
	return 2 * get()
}

func timesTwoOfInt(get func(int) int) int {
	return 2 * get(1)
}

func timesTwoValue(value float64) float64 {
	return 2 * value
}
