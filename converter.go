package funcwrap

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/shopspring/decimal"
)

// ObjectConverters converts values of `any` typed parameters and results.
// Handlers registered for a Go type or an ObjectType take precedence over the
// default conversions of ToObject and ToInterface.
type ObjectConverters struct {
	ToGoHandlers     map[ObjectType]func(v Object) any
	ToObjectHandlers map[reflect.Type]func(v any) (Object, error)
}

func NewObjectConverters() *ObjectConverters {
	return &ObjectConverters{
		ToGoHandlers:     make(map[ObjectType]func(v Object) any),
		ToObjectHandlers: make(map[reflect.Type]func(v any) (Object, error)),
	}
}

func (oc *ObjectConverters) Register(objType ObjectType, togo func(v Object) any, goType reflect.Type, toObject func(v any) (Object, error)) *ObjectConverters {
	if objType != nil {
		oc.ToGoHandlers[objType] = togo
	}
	if goType != nil {
		oc.ToObjectHandlers[goType] = toObject
	}
	return oc
}

func (oc *ObjectConverters) ToObject(v any) (Object, error) {
	if v == nil {
		return Nil, nil
	}
	if oc != nil {
		typ := reflect.TypeOf(v)
		for typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		if h := oc.ToObjectHandlers[typ]; h != nil {
			return h(v)
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
			return oc.funcToObject(rv)
		}
	}
	return ToObject(v)
}

func (oc *ObjectConverters) funcToObject(rv reflect.Value) (Object, error) {
	if rv.IsNil() {
		return Nil, nil
	}
	w, err := oc.wrapValue("", rv)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (oc *ObjectConverters) ToInterface(v Object) any {
	if v == nil || v == Nil {
		return nil
	}
	if oc != nil {
		if h := oc.ToGoHandlers[v.Type()]; h != nil {
			return h(v)
		}
	}
	return ToInterface(v)
}

// ToInterface converts o to a Go value. Reference objects are returned as
// they are so their identity survives the conversion.
func ToInterface(o Object) any {
	switch v := o.(type) {
	case nil, *NilType:
		return nil
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case Decimal:
		return v.Go()
	case Str:
		return string(v)
	default:
		return o
	}
}

// ToObject converts a Go value to an Object.
func ToObject(v any) (Object, error) {
	switch t := v.(type) {
	case nil:
		return Nil, nil
	case Object:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(t), nil
	case int8:
		return Int(t), nil
	case int16:
		return Int(t), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint:
		return uintToObject(uint64(t))
	case uint8:
		return Int(t), nil
	case uint16:
		return Int(t), nil
	case uint32:
		return Int(t), nil
	case uint64:
		return uintToObject(t)
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case decimal.Decimal:
		return Decimal(t), nil
	case string:
		return Str(t), nil
	case []byte:
		return Str(t), nil
	case error:
		e := ErrNative.NewError(t.Error())
		e.Cause = t
		return e, nil
	case []any:
		arr := make([]Object, len(t))
		for i, item := range t {
			o, err := ToObject(item)
			if err != nil {
				return nil, err
			}
			arr[i] = o
		}
		return NewArray(arr...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := NewDict()
		for _, k := range keys {
			o, err := ToObject(t[k])
			if err != nil {
				return nil, err
			}
			_ = d.Set(Str(k), o)
		}
		return d, nil
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
		return (*ObjectConverters)(nil).funcToObject(rv)
	}
	return nil, ErrUnsupportedType.NewError(fmt.Sprintf("%T", v))
}

func uintToObject(v uint64) (Object, error) {
	if v > math.MaxInt64 {
		return nil, ErrType.NewError(fmt.Sprintf("%d overflows int", v))
	}
	return Int(v), nil
}
