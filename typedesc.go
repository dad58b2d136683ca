package funcwrap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// TypeDesc describes how a Go parameter or result type crosses the bridge.
// ToGo marshals a script side object into a value of GoType, ToObject
// marshals a native value back.
type TypeDesc interface {
	Name() string
	GoType() reflect.Type
	// Accepts reports whether o can be passed where this type is declared.
	// Overload selection only consults Accepts.
	Accepts(o Object) bool
	// Covers reports whether every object other accepts is accepted too.
	Covers(other TypeDesc) bool
	ToGo(o Object) (reflect.Value, error)
	ToObject(v reflect.Value) (Object, error)
}

type kindMask uint16

const (
	kindNil kindMask = 1 << iota
	kindBool
	kindInt
	kindFloat
	kindDecimal
	kindStr
	kindArray
	kindDict
	kindCallable
	kindOther

	kindNumber = kindInt | kindFloat | kindDecimal
	kindAll    = kindOther<<1 - 1
)

func kindOf(o Object) kindMask {
	switch o.(type) {
	case *NilType:
		return kindNil
	case Bool:
		return kindBool
	case Int:
		return kindInt
	case Float:
		return kindFloat
	case Decimal:
		return kindDecimal
	case Str:
		return kindStr
	case *Array:
		return kindArray
	case *Dict:
		return kindDict
	}
	if Callable(o) {
		return kindCallable
	}
	return kindOther
}

var (
	objectType    = reflect.TypeOf((*Object)(nil)).Elem()
	callerType    = reflect.TypeOf((*CallerObject)(nil)).Elem()
	canCallerType = reflect.TypeOf((*CanCallerObject)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	decimalType   = reflect.TypeOf(decimal.Decimal{})
	objTypeNames  = map[reflect.Type]string{
		objectType:                       "object",
		callerType:                       "callable",
		reflect.TypeOf(Bool(false)):      TBool.Name(),
		reflect.TypeOf(Int(0)):           TInt.Name(),
		reflect.TypeOf(Float(0)):         TFloat.Name(),
		reflect.TypeOf(Decimal{}):        TDecimal.Name(),
		reflect.TypeOf(Str("")):          TStr.Name(),
		reflect.TypeOf((*Array)(nil)):    TArray.Name(),
		reflect.TypeOf((*Dict)(nil)):     TDict.Name(),
		reflect.TypeOf((*Function)(nil)): TFunction.Name(),
		reflect.TypeOf((*Error)(nil)):    TError.Name(),
	}
)

// maskDesc accepts objects by their kind. It is embedded by every
// descriptor.
type maskDesc struct {
	name string
	t    reflect.Type
	mask kindMask
}

func (d *maskDesc) Name() string { return d.name }

func (d *maskDesc) GoType() reflect.Type { return d.t }

func (d *maskDesc) Accepts(o Object) bool {
	return d.mask&kindOf(o) != 0
}

func (d *maskDesc) Covers(other TypeDesc) bool {
	m, ok := other.(interface{ kinds() kindMask })
	if !ok {
		return false
	}
	om := m.kinds()
	return d.mask&om == om
}

func (d *maskDesc) kinds() kindMask { return d.mask }

func (d *maskDesc) zero() reflect.Value {
	return reflect.New(d.t).Elem()
}

func (d *maskDesc) mismatch(o Object) error {
	return ErrType.NewError(fmt.Sprintf("expected %s, found %s", d.name, o.Type().Name()))
}

type intDesc struct {
	maskDesc
}

func (d *intDesc) ToGo(o Object) (reflect.Value, error) {
	i, ok := o.(Int)
	if !ok {
		return reflect.Value{}, d.mismatch(o)
	}
	rv := d.zero()
	switch d.t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return reflect.Value{}, ErrType.NewError(fmt.Sprintf("%d overflows %s", i, d.name))
		}
		rv.SetUint(uint64(i))
	default:
		if rv.OverflowInt(int64(i)) {
			return reflect.Value{}, ErrType.NewError(fmt.Sprintf("%d overflows %s", i, d.name))
		}
		rv.SetInt(int64(i))
	}
	return rv, nil
}

func (d *intDesc) ToObject(v reflect.Value) (Object, error) {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintToObject(v.Uint())
	}
	return Int(v.Int()), nil
}

type floatDesc struct {
	maskDesc
}

func (d *floatDesc) ToGo(o Object) (reflect.Value, error) {
	f, ok := ToFloat64(o)
	if !ok {
		return reflect.Value{}, d.mismatch(o)
	}
	rv := d.zero()
	if rv.OverflowFloat(f) {
		return reflect.Value{}, ErrType.NewError(fmt.Sprintf("%v overflows %s", f, d.name))
	}
	rv.SetFloat(f)
	return rv, nil
}

func (d *floatDesc) ToObject(v reflect.Value) (Object, error) {
	return Float(v.Float()), nil
}

type decimalDesc struct {
	maskDesc
}

func (d *decimalDesc) ToGo(o Object) (reflect.Value, error) {
	v, ok := ToDecimal(o)
	if !ok {
		return reflect.Value{}, d.mismatch(o)
	}
	return reflect.ValueOf(v), nil
}

func (d *decimalDesc) ToObject(v reflect.Value) (Object, error) {
	return Decimal(v.Interface().(decimal.Decimal)), nil
}

type strDesc struct {
	maskDesc
}

func (d *strDesc) ToGo(o Object) (reflect.Value, error) {
	s, ok := o.(Str)
	if !ok {
		return reflect.Value{}, d.mismatch(o)
	}
	rv := d.zero()
	rv.SetString(string(s))
	return rv, nil
}

func (d *strDesc) ToObject(v reflect.Value) (Object, error) {
	return Str(v.String()), nil
}

type boolDesc struct {
	maskDesc
}

func (d *boolDesc) ToGo(o Object) (reflect.Value, error) {
	b, ok := o.(Bool)
	if !ok {
		return reflect.Value{}, d.mismatch(o)
	}
	rv := d.zero()
	rv.SetBool(bool(b))
	return rv, nil
}

func (d *boolDesc) ToObject(v reflect.Value) (Object, error) {
	return Bool(v.Bool()), nil
}

// objectDesc passes objects through unchanged, so reference objects keep
// their identity across the call.
type objectDesc struct {
	maskDesc
}

func (d *objectDesc) Covers(TypeDesc) bool { return true }

func (d *objectDesc) ToGo(o Object) (reflect.Value, error) {
	rv := d.zero()
	rv.Set(reflect.ValueOf(&o).Elem())
	return rv, nil
}

func (d *objectDesc) ToObject(v reflect.Value) (Object, error) {
	if v.IsNil() {
		return Nil, nil
	}
	return v.Interface().(Object), nil
}

// concreteDesc accepts the objects of one Object implementation, or of the
// implementations of an interface embedding Object.
type concreteDesc struct {
	maskDesc
}

func (d *concreteDesc) Accepts(o Object) bool {
	if d.t.Kind() == reflect.Interface {
		if !reflect.TypeOf(o).Implements(d.t) {
			return false
		}
		return d.t != callerType || Callable(o)
	}
	return reflect.TypeOf(o) == d.t
}

func (d *concreteDesc) Covers(other TypeDesc) bool {
	if o, ok := other.(*concreteDesc); ok {
		if o.t == d.t {
			return true
		}
		if d.t.Kind() != reflect.Interface || !o.t.Implements(d.t) {
			return false
		}
		// callers that may refuse calls are not accepted as callables
		return d.t != callerType || !o.t.Implements(canCallerType)
	}
	return false
}

func (d *concreteDesc) ToGo(o Object) (reflect.Value, error) {
	if !d.Accepts(o) {
		return reflect.Value{}, d.mismatch(o)
	}
	rv := d.zero()
	rv.Set(reflect.ValueOf(o))
	return rv, nil
}

func (d *concreteDesc) ToObject(v reflect.Value) (Object, error) {
	if (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) && v.IsNil() {
		return Nil, nil
	}
	return v.Interface().(Object), nil
}

// anyDesc converts objects with ObjectConverters for `any` typed values.
type anyDesc struct {
	maskDesc
	conv *ObjectConverters
}

func (d *anyDesc) Covers(TypeDesc) bool { return true }

func (d *anyDesc) ToGo(o Object) (reflect.Value, error) {
	rv := d.zero()
	if v := d.conv.ToInterface(o); v != nil {
		rv.Set(reflect.ValueOf(v))
	}
	return rv, nil
}

func (d *anyDesc) ToObject(v reflect.Value) (Object, error) {
	if v.IsNil() {
		return Nil, nil
	}
	return d.conv.ToObject(v.Interface())
}

// DescOf returns the descriptor of the Go type t.
func (oc *ObjectConverters) DescOf(t reflect.Type) (TypeDesc, error) {
	switch {
	case t == objectType:
		return &objectDesc{maskDesc{"object", t, kindAll}}, nil
	case t == decimalType:
		return &decimalDesc{maskDesc{"decimal", t, kindNumber}}, nil
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		return &anyDesc{maskDesc{"any", t, kindAll}, oc}, nil
	case t.Implements(objectType):
		name, ok := objTypeNames[t]
		if !ok {
			name = t.String()
		}
		return &concreteDesc{maskDesc{name, t, kindOfType(t)}}, nil
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &intDesc{maskDesc{t.String(), t, kindInt}}, nil
	case reflect.Float32, reflect.Float64:
		return &floatDesc{maskDesc{t.String(), t, kindNumber}}, nil
	case reflect.String:
		return &strDesc{maskDesc{t.String(), t, kindStr}}, nil
	case reflect.Bool:
		return &boolDesc{maskDesc{t.String(), t, kindBool}}, nil
	case reflect.Func:
		return oc.funcDescOf(t)
	}
	return nil, ErrUnsupportedType.NewError(t.String())
}

// kindOfType returns the kinds the objects of the Object implementation t
// may have.
func kindOfType(t reflect.Type) kindMask {
	if t.Kind() == reflect.Interface {
		if t == callerType {
			return kindCallable
		}
		return kindAll
	}
	if t.Implements(callerType) {
		return kindCallable
	}
	return kindOf(reflect.Zero(t).Interface().(Object))
}

// resultsOf returns the descriptor of the non error result of t, and whether
// t returns an error as its last result.
func (oc *ObjectConverters) resultsOf(t reflect.Type) (result TypeDesc, returnsErr bool, err error) {
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errorType {
			returnsErr = true
		} else {
			result, err = oc.DescOf(t.Out(0))
		}
	case 2:
		if t.Out(1) != errorType {
			err = ErrUnsupportedType.NewError(t.String() + ": second result must be error")
			return
		}
		returnsErr = true
		result, err = oc.DescOf(t.Out(0))
	default:
		err = ErrUnsupportedType.NewError(t.String() + ": too many results")
	}
	return
}

func (oc *ObjectConverters) paramsOf(t reflect.Type) ([]TypeDesc, error) {
	if t.IsVariadic() {
		return nil, ErrUnsupportedType.NewError(t.String() + ": variadic functions have no fixed arity")
	}
	params := make([]TypeDesc, t.NumIn())
	for i := range params {
		d, err := oc.DescOf(t.In(i))
		if err != nil {
			return nil, err
		}
		params[i] = d
	}
	return params, nil
}

func signatureOf(name string, params []TypeDesc, result TypeDesc, returnsErr bool) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name())
	}
	b.WriteByte(')')
	switch {
	case result != nil && returnsErr:
		b.WriteString(" (" + result.Name() + ", error)")
	case result != nil:
		b.WriteString(" " + result.Name())
	case returnsErr:
		b.WriteString(" error")
	}
	return b.String()
}
