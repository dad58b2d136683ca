package funcwrap

import "reflect"

// Callable reports whether o can be invoked through the CallerObject
// interface.
func Callable(o Object) (ok bool) {
	if _, ok = o.(CallerObject); ok {
		if cc, _ := o.(CanCallerObject); cc != nil {
			ok = cc.CanCall()
		}
	}
	return
}

// IsHashable reports whether o can be used as a Dict key.
func IsHashable(o Object) (ok bool) {
	_, ok = o.(Hashable)
	return
}

func IsIndexSetter(obj Object) (ok bool) {
	_, ok = obj.(IndexSetter)
	return
}

func IsIndexGetter(obj Object) (ok bool) {
	_, ok = obj.(IndexGetter)
	return
}

// Identical reports whether a and b denote the same object. Reference
// objects (Dict, Array, Function, wrappers) are identical only when they are
// the same pointer, scalar objects when they hold the same value and type.
func Identical(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// TypeNames returns the type names of objects.
func TypeNames(objs ...Object) []string {
	names := make([]string, len(objs))
	for i, o := range objs {
		if o == nil {
			o = Nil
		}
		names[i] = o.Type().Name()
	}
	return names
}
