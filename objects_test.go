package funcwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjects_ToString(t *testing.T) {
	tests := []struct {
		o    Object
		want string
	}{
		{Nil, "nil"},
		{True, "true"},
		{Int(-3), "-3"},
		{Float(2.5), "2.5"},
		{MustDecimalFromString("1.10"), "1.1"},
		{Str("a"), "a"},
		{NewArray(Int(1), Str("b")), `[1, "b"]`},
		{NewDict(Str("k"), NewArray()), `{"k": []}`},
		{&Function{Name: "f"}, "<function:f>"},
		{ErrType.NewError("x"), "TypeError: x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.o.ToString())
	}
}

func TestObjects_ToStringCycle(t *testing.T) {
	d := NewDict()
	require.NoError(t, d.Set(Str("self"), d))
	require.Equal(t, `{"self": {...}}`, d.ToString())
	require.True(t, d.Equal(d))

	a := NewArray(Int(1))
	a.Append(a, d)
	require.Equal(t, `[1, [...], {"self": {...}}]`, a.ToString())

	shared := NewArray(Int(2))
	require.Equal(t, "[[2], [2]]", NewArray(shared, shared).ToString())

	require.NoError(t, d.Set(Str("list"), a))
	require.Equal(t, `{"self": {...}, "list": [1, [...], {...}]}`, d.ToString())
}

func TestObjects_Equal(t *testing.T) {
	assert.True(t, Int(2).Equal(Float(2)))
	assert.True(t, Float(2).Equal(MustDecimalFromString("2.0")))
	assert.True(t, MustDecimalFromString("3").Equal(Int(3)))
	assert.False(t, Int(2).Equal(Str("2")))
	assert.True(t, NewArray(Int(1)).Equal(NewArray(Float(1))))
	assert.True(t, NewDict(Str("a"), Int(1)).Equal(NewDict(Str("a"), Int(1))))
	assert.False(t, NewDict(Str("a"), Int(1)).Equal(NewDict(Str("b"), Int(1))))

	f := &Function{}
	assert.True(t, f.Equal(f))
	assert.False(t, f.Equal(&Function{}))
}

func TestObjects_IsFalsy(t *testing.T) {
	for _, o := range []Object{Nil, False, Int(0), Float(0), DecimalZero, Str(""), NewArray(), NewDict(), ErrType} {
		assert.True(t, o.IsFalsy(), "%v", o)
	}
	for _, o := range []Object{True, Int(1), Str("x"), NewArray(Nil), &Function{}} {
		assert.False(t, o.IsFalsy(), "%v", o)
	}
}

func TestIdentical(t *testing.T) {
	d := NewDict()
	assert.True(t, Identical(d, d))
	assert.False(t, Identical(d, NewDict()))
	assert.True(t, Identical(Int(1), Int(1)))
	assert.False(t, Identical(Int(1), Float(1)))
	assert.True(t, Identical(Nil, Nil))
	assert.False(t, Identical(nil, Nil))
	assert.True(t, Identical(nil, nil))
}

func TestArray(t *testing.T) {
	arr := NewArray(Int(1), Int(2))
	arr.Append(Int(3))
	require.Equal(t, 3, arr.Length())

	v, err := arr.IndexGet(Int(-1))
	require.NoError(t, err)
	require.Equal(t, Int(3), v)

	require.NoError(t, arr.IndexSet(Int(0), Str("x")))
	require.Equal(t, `["x", 2, 3]`, arr.ToString())

	_, err = arr.IndexGet(Int(3))
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = arr.IndexGet(Str("0"))
	require.ErrorIs(t, err, ErrType)

	cp := arr.Copy().(*Array)
	require.NoError(t, cp.IndexSet(Int(1), Nil))
	require.Equal(t, Int(2), arr.Items()[1])
}

func TestDict(t *testing.T) {
	d := NewDict(Int(4), Int(5))
	require.NoError(t, d.IndexSet(Str("a"), True))
	require.NoError(t, d.IndexSet(Int(4), Int(6)))
	require.Equal(t, `{4: 6, "a": true}`, d.ToString())
	require.Equal(t, []Object{Int(4), Str("a")}, d.Keys())

	// numeric keys of different types are distinct
	require.NoError(t, d.Set(Float(4), Int(7)))
	require.Equal(t, 3, d.Length())

	_, err := d.IndexGet(Str("missing"))
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, d.Set(NewArray(), Nil), ErrNotHashable)
	_, err = d.IndexGet(NewDict())
	require.ErrorIs(t, err, ErrNotHashable)
	require.Panics(t, func() { NewDict(NewArray(), Nil) })
	require.Panics(t, func() { NewDict(Int(1)) })

	require.NoError(t, d.IndexDelete(Int(4)))
	require.NoError(t, d.IndexDelete(Int(4)))
	require.Equal(t, []Object{Str("a"), Float(4)}, d.Keys())

	cp := d.Copy().(*Dict)
	require.NoError(t, cp.Set(Str("b"), Nil))
	require.Equal(t, 2, d.Length())
	require.Equal(t, 3, cp.Length())

	var zero Dict
	require.NoError(t, zero.Set(Int(1), Int(1)))
	v, ok := zero.Get(Int(1))
	require.True(t, ok)
	require.Equal(t, Int(1), v)
}

func TestError_Object(t *testing.T) {
	err := NewArgumentTypeError(1, "int", "str")
	require.Equal(t, "TypeError: invalid type for 2nd argument: expected int, found str", err.Error())
	require.ErrorIs(t, err, ErrType)
	require.NotErrorIs(t, err, ErrNotFound)

	v, _ := err.IndexGet(Str("Name"))
	require.Equal(t, Str("TypeError"), v)
	v, _ = err.IndexGet(Str("Message"))
	require.Equal(t, Str("invalid type for 2nd argument: expected int, found str"), v)
	v, _ = err.IndexGet(Str("Other"))
	require.Equal(t, Nil, v)

	inner := ErrNotFound.NewError("x")
	wrapped := NewArgumentError(0, inner)
	require.ErrorIs(t, wrapped, ErrType)
	require.ErrorIs(t, wrapped, ErrNotFound)
	require.Equal(t, "TypeError: 1st argument: NotFoundError: x", wrapped.Error())
}

func TestArgs(t *testing.T) {
	args := Args{Int(1), Str("a")}
	require.Equal(t, []string{"int", "str"}, args.Types())
	require.Equal(t, Nil, args.GetDefault(5, Nil))
	require.Panics(t, func() { args.Get(2) })
	require.ErrorIs(t, args.CheckLen(1), ErrWrongNumArguments)

	v := args.Walk(func(i int, arg Object) any {
		if arg.Type() == TStr {
			return i
		}
		return nil
	})
	require.Equal(t, 1, v)

	require.Equal(t, Int(1), args.Shift())
	require.Equal(t, Str("a"), args.Shift())
	_, ok := args.ShiftOk()
	require.False(t, ok)

	_, err := MustCall(Int(1))
	require.ErrorIs(t, err, ErrNotCallable)
}
