package funcwrap

// Falser represents an Falser object.
type Falser interface {
	// IsFalsy returns true if value is falsy otherwise false.
	IsFalsy() bool
}

// Object represents a script side value.
//
// Every implementation must be comparable with the == operator: scalar
// objects are plain values and reference objects are pointers. Identical
// relies on this.
type Object interface {
	Falser

	// Type returns the type of the object.
	Type() ObjectType

	// ToString should return a string of the type's value.
	ToString() string

	// Equal checks equality of objects.
	Equal(right Object) bool
}

// ObjectType describes the script side type of an object. Type names are
// what argument type mismatch messages report.
type ObjectType interface {
	Name() string
}

// IndexGetter wraps the IndexGet method to get index value.
type IndexGetter interface {
	Object
	// IndexGet should take an index Object and return a result Object or an
	// error for indexable objects.
	IndexGet(index Object) (value Object, err error)
}

// IndexSetter wraps the IndexSet method to set index value.
type IndexSetter interface {
	Object
	IndexSet(index, value Object) error
}

// IndexDeleter wraps the IndexDelete method to delete an index of an object.
type IndexDeleter interface {
	Object
	IndexDelete(key Object) error
}

type IndexGetSetter interface {
	IndexGetter
	IndexSetter
}

// LengthGetter wraps the Len method to get the number of elements of an object.
type LengthGetter interface {
	Object
	Length() int
}

// CallerObject is an interface for objects that can be called with Call
// method.
type CallerObject interface {
	Object
	Call(c Call) (Object, error)
}

// CanCallerObject is an interface for objects that can be objects implements
// this CallerObject interface.
// Note if CallerObject implements this interface, CanCall() is called for check
// if object is callable.
type CanCallerObject interface {
	CallerObject
	// CanCall returns true if type can be called with Call() method.
	CanCall() bool
}

// Hashable is implemented by objects usable as Dict keys.
type Hashable interface {
	Object
	hashKey()
}

// Copier wraps the Copy method to create a single copy of the object.
type Copier interface {
	Object
	Copy() Object
}
