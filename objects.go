// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package funcwrap

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// True represents a true value.
	True = Bool(true)

	// False represents a false value.
	False = Bool(false)
)

var (
	// Nil represents nil value.
	Nil Object = &NilType{}
)

// ObjectImpl is the basic Object implementation and it does not nothing, and
// helps to implement Object interface by embedding and overriding methods in
// custom implementations. Type and ToString must be implemented otherwise
// calling these methods causes panic.
type ObjectImpl struct{}

var _ Object = ObjectImpl{}

func (ObjectImpl) Type() ObjectType {
	panic(ErrNotImplemented)
}

func (ObjectImpl) ToString() string {
	panic(ErrNotImplemented)
}

// Equal implements Object interface.
func (ObjectImpl) Equal(Object) bool { return false }

// IsFalsy implements Object interface.
func (ObjectImpl) IsFalsy() bool { return true }

// NilType represents the type of global Nil Object. One should use
// the NilType in type switches only.
type NilType struct {
	ObjectImpl
}

func (o *NilType) Type() ObjectType {
	return TNil
}

func (o *NilType) ToString() string {
	return "nil"
}

// Equal implements Object interface.
func (o *NilType) Equal(right Object) bool {
	return right == nil || right == Nil
}

func (o *NilType) hashKey() {}

// Bool represents boolean values and implements Object interface.
type Bool bool

func (Bool) Type() ObjectType {
	return TBool
}

func (o Bool) ToString() string {
	if o {
		return "true"
	}
	return "false"
}

// Equal implements Object interface.
func (o Bool) Equal(right Object) bool {
	if v, ok := right.(Bool); ok {
		return o == v
	}
	return false
}

// IsFalsy implements Object interface.
func (o Bool) IsFalsy() bool { return bool(!o) }

func (Bool) hashKey() {}

// Int represents signed integer values and implements Object interface.
type Int int64

func (Int) Type() ObjectType {
	return TInt
}

func (o Int) ToString() string {
	return strconv.FormatInt(int64(o), 10)
}

// Equal implements Object interface.
func (o Int) Equal(right Object) bool {
	switch v := right.(type) {
	case Int:
		return o == v
	case Float:
		return Float(o) == v
	case Decimal:
		return v.Equal(o)
	}
	return false
}

// IsFalsy implements Object interface.
func (o Int) IsFalsy() bool { return o == 0 }

func (Int) hashKey() {}

// Float represents float values and implements Object interface.
type Float float64

func (Float) Type() ObjectType {
	return TFloat
}

func (o Float) ToString() string {
	return strconv.FormatFloat(float64(o), 'g', -1, 64)
}

// Equal implements Object interface.
func (o Float) Equal(right Object) bool {
	switch v := right.(type) {
	case Float:
		return o == v
	case Int:
		return o == Float(v)
	case Decimal:
		return v.Equal(o)
	}
	return false
}

// IsFalsy implements Object interface.
func (o Float) IsFalsy() bool { return o == 0 }

func (Float) hashKey() {}

// Str represents string values and implements Object interface.
type Str string

func (Str) Type() ObjectType {
	return TStr
}

func (o Str) ToString() string {
	return string(o)
}

// Equal implements Object interface.
func (o Str) Equal(right Object) bool {
	if v, ok := right.(Str); ok {
		return o == v
	}
	return false
}

// IsFalsy implements Object interface.
func (o Str) IsFalsy() bool { return len(o) == 0 }

// Length implements LengthGetter interface.
func (o Str) Length() int {
	return len(o)
}

func (Str) hashKey() {}

// Array represents a mutable, ordered sequence of objects. It is always used
// by pointer so native code mutating it is observed by the script side.
type Array struct {
	items []Object
}

var (
	_ IndexGetSetter = (*Array)(nil)
	_ LengthGetter   = (*Array)(nil)
)

// NewArray returns a new Array holding items.
func NewArray(items ...Object) *Array {
	return &Array{items: items}
}

func (*Array) Type() ObjectType {
	return TArray
}

func (o *Array) ToString() string {
	var sb strings.Builder
	o.writeTo(&sb, nil)
	return sb.String()
}

func (o *Array) writeTo(sb *strings.Builder, seen map[Object]struct{}) {
	if _, ok := seen[o]; ok {
		sb.WriteString("[...]")
		return
	}
	if seen == nil {
		seen = map[Object]struct{}{}
	}
	seen[o] = struct{}{}
	defer delete(seen, o)

	sb.WriteByte('[')
	for i, item := range o.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeRepr(sb, item, seen)
	}
	sb.WriteByte(']')
}

// Equal implements Object interface.
func (o *Array) Equal(right Object) bool {
	v, ok := right.(*Array)
	if ok && v == o {
		return true
	}
	if !ok || len(v.items) != len(o.items) {
		return false
	}
	for i, item := range o.items {
		if !item.Equal(v.items[i]) {
			return false
		}
	}
	return true
}

// IsFalsy implements Object interface.
func (o *Array) IsFalsy() bool { return len(o.items) == 0 }

// Length implements LengthGetter interface.
func (o *Array) Length() int {
	return len(o.items)
}

// Items returns the underlying items.
func (o *Array) Items() []Object {
	return o.items
}

// Append adds items at the end of the array.
func (o *Array) Append(items ...Object) {
	o.items = append(o.items, items...)
}

// Copy implements Copier interface.
func (o *Array) Copy() Object {
	return &Array{items: append([]Object(nil), o.items...)}
}

func (o *Array) index(index Object) (int, error) {
	i, ok := index.(Int)
	if !ok {
		return 0, NewIndexTypeError("int", index.Type().Name())
	}
	idx := int(i)
	if idx < 0 {
		idx += len(o.items)
	}
	if idx < 0 || idx >= len(o.items) {
		return 0, ErrIndexOutOfBounds.NewError(i.ToString())
	}
	return idx, nil
}

// IndexGet implements IndexGetter interface.
func (o *Array) IndexGet(index Object) (Object, error) {
	i, err := o.index(index)
	if err != nil {
		return nil, err
	}
	return o.items[i], nil
}

// IndexSet implements IndexSetter interface.
func (o *Array) IndexSet(index, value Object) error {
	i, err := o.index(index)
	if err != nil {
		return err
	}
	o.items[i] = value
	return nil
}

// Dict represents a mutable mapping of hashable keys to objects that keeps
// insertion order. Like Array it is always used by pointer.
type Dict struct {
	keys   []Object
	values map[Object]Object
}

var (
	_ IndexGetSetter = (*Dict)(nil)
	_ IndexDeleter   = (*Dict)(nil)
	_ LengthGetter   = (*Dict)(nil)
)

// NewDict returns a new Dict from alternating keys and values. It panics if a
// key is not hashable or if kv has an odd length.
func NewDict(kv ...Object) *Dict {
	if len(kv)%2 != 0 {
		panic(ErrWrongNumArguments.NewError("odd number of dict items"))
	}
	d := &Dict{values: make(map[Object]Object, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		if err := d.Set(kv[i], kv[i+1]); err != nil {
			panic(err)
		}
	}
	return d
}

func (*Dict) Type() ObjectType {
	return TDict
}

func (o *Dict) ToString() string {
	var sb strings.Builder
	o.writeTo(&sb, nil)
	return sb.String()
}

func (o *Dict) writeTo(sb *strings.Builder, seen map[Object]struct{}) {
	if _, ok := seen[o]; ok {
		sb.WriteString("{...}")
		return
	}
	if seen == nil {
		seen = map[Object]struct{}{}
	}
	seen[o] = struct{}{}
	defer delete(seen, o)

	sb.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeRepr(sb, k, seen)
		sb.WriteString(": ")
		writeRepr(sb, o.values[k], seen)
	}
	sb.WriteByte('}')
}

// Equal implements Object interface.
func (o *Dict) Equal(right Object) bool {
	v, ok := right.(*Dict)
	if ok && v == o {
		return true
	}
	if !ok || len(v.keys) != len(o.keys) {
		return false
	}
	for k, val := range o.values {
		other, ok := v.values[k]
		if !ok || !val.Equal(other) {
			return false
		}
	}
	return true
}

// IsFalsy implements Object interface.
func (o *Dict) IsFalsy() bool { return len(o.keys) == 0 }

// Length implements LengthGetter interface.
func (o *Dict) Length() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Dict) Keys() []Object {
	return append([]Object(nil), o.keys...)
}

// Get returns the value of key.
func (o *Dict) Get(key Object) (Object, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set sets the value of key. The key must be Hashable.
func (o *Dict) Set(key, value Object) error {
	if !IsHashable(key) {
		return ErrNotHashable.NewError(key.Type().Name())
	}
	if o.values == nil {
		o.values = map[Object]Object{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return nil
}

// Copy implements Copier interface.
func (o *Dict) Copy() Object {
	cp := &Dict{
		keys:   append([]Object(nil), o.keys...),
		values: make(map[Object]Object, len(o.values)),
	}
	for k, v := range o.values {
		cp.values[k] = v
	}
	return cp
}

// IndexGet implements IndexGetter interface. Missing keys return
// ErrNotFound.
func (o *Dict) IndexGet(index Object) (Object, error) {
	if !IsHashable(index) {
		return nil, ErrNotHashable.NewError(index.Type().Name())
	}
	if v, ok := o.values[index]; ok {
		return v, nil
	}
	return nil, ErrNotFound.NewError(reprOf(index))
}

// IndexSet implements IndexSetter interface.
func (o *Dict) IndexSet(index, value Object) error {
	return o.Set(index, value)
}

// IndexDelete implements IndexDeleter interface.
func (o *Dict) IndexDelete(key Object) error {
	if !IsHashable(key) {
		return ErrNotHashable.NewError(key.Type().Name())
	}
	if _, ok := o.values[key]; !ok {
		return nil
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Function represents a script side function object and implements Object
// interface.
type Function struct {
	ObjectImpl
	Name  string
	Value func(Call) (Object, error)
}

var _ CallerObject = (*Function)(nil)

func (*Function) Type() ObjectType {
	return TFunction
}

func (o *Function) ToString() string {
	return fmt.Sprintf("<function:%s>", o.Name)
}

// Equal implements Object interface.
func (o *Function) Equal(right Object) bool {
	v, ok := right.(*Function)
	if !ok {
		return false
	}
	return v == o
}

// IsFalsy implements Object interface.
func (*Function) IsFalsy() bool { return false }

func (o *Function) Call(call Call) (Object, error) {
	return o.Value(call)
}

func reprOf(o Object) string {
	var sb strings.Builder
	writeRepr(&sb, o, nil)
	return sb.String()
}

// writeRepr writes the repr of o. Containers in seen are being written
// already and are elided.
func writeRepr(sb *strings.Builder, o Object, seen map[Object]struct{}) {
	switch v := o.(type) {
	case Str:
		sb.WriteString(strconv.Quote(string(v)))
	case *Array:
		v.writeTo(sb, seen)
	case *Dict:
		v.writeTo(sb, seen)
	default:
		sb.WriteString(o.ToString())
	}
}
