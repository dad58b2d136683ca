package funcwrap

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToObject(t *testing.T) {
	d := NewDict()
	tests := []struct {
		v       any
		want    Object
		wantErr error
	}{
		{nil, Nil, nil},
		{true, True, nil},
		{int8(-1), Int(-1), nil},
		{uint32(7), Int(7), nil},
		{uint64(math.MaxUint64), nil, ErrType},
		{float32(0.5), Float(0.5), nil},
		{decimal.NewFromInt(2), MustDecimalFromString("2"), nil},
		{"s", Str("s"), nil},
		{[]byte("b"), Str("b"), nil},
		{d, d, nil},
		{[]any{1, "a", nil}, NewArray(Int(1), Str("a"), Nil), nil},
		{map[string]any{"b": 2, "a": 1.5}, NewDict(Str("a"), Float(1.5), Str("b"), Int(2)), nil},
		{struct{}{}, nil, ErrUnsupportedType},
		{[]any{struct{}{}}, nil, ErrUnsupportedType},
	}
	for _, tt := range tests {
		got, err := ToObject(tt.v)
		if !checkError(t, fmt.Sprintf("%T", tt.v), tt.wantErr, err) {
			continue
		}
		assert.True(t, tt.want.Equal(got), "%#v: want %v, got %v", tt.v, tt.want, got)
	}

	got, err := ToObject(map[string]any{"z": 1, "y": 2})
	require.NoError(t, err)
	require.Equal(t, `{"y": 2, "z": 1}`, got.ToString())

	native := errors.New("x")
	got, err = ToObject(native)
	require.NoError(t, err)
	require.ErrorIs(t, got.(*Error), ErrNative)
	require.ErrorIs(t, got.(*Error), native)
}

func TestToObject_Func(t *testing.T) {
	got, err := ToObject(func(a, b int) int { return a * b })
	require.NoError(t, err)
	require.Equal(t, "<nativeFunction:func(int, int) int>", got.ToString())

	ret, err := MustCall(got, Int(6), Int(7))
	require.NoError(t, err)
	require.Equal(t, Int(42), ret)

	got, err = ToObject((func())(nil))
	require.NoError(t, err)
	require.Equal(t, Nil, got)

	_, err = ToObject(func(...int) {})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestToInterface(t *testing.T) {
	arr := NewArray()
	tests := []struct {
		o    Object
		want any
	}{
		{nil, nil},
		{Nil, nil},
		{False, false},
		{Int(3), int64(3)},
		{Float(3), 3.0},
		{Str("s"), "s"},
		{arr, arr},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInterface(tt.o))
	}
	assert.True(t, decimal.RequireFromString("1.5").Equal(ToInterface(MustDecimalFromString("1.5")).(decimal.Decimal)))
}

func TestObjectConverters(t *testing.T) {
	type celsius float64
	conv := NewObjectConverters().Register(
		TFloat, func(v Object) any { return celsius(v.(Float)) },
		reflect.TypeOf(celsius(0)), func(v any) (Object, error) { return Str("warm"), nil },
	)

	require.Equal(t, celsius(20), conv.ToInterface(Float(20)))
	require.Equal(t, int64(1), conv.ToInterface(Int(1)))
	require.Nil(t, conv.ToInterface(Nil))

	got, err := conv.ToObject(celsius(20))
	require.NoError(t, err)
	require.Equal(t, Str("warm"), got)

	c := celsius(30)
	got, err = conv.ToObject(&c)
	require.NoError(t, err)
	require.Equal(t, Str("warm"), got)

	w, err := conv.Wrap("feel", func(v any) any { return v })
	require.NoError(t, err)
	got, err = w.Invoke(Float(25))
	require.NoError(t, err)
	require.Equal(t, Str("warm"), got)

	got, err = conv.ToObject(func() any { return celsius(1) })
	require.NoError(t, err)
	ret, err := MustCall(got)
	require.NoError(t, err)
	require.Equal(t, Str("warm"), ret)
}

func TestObjectConverters_WrapCopy(t *testing.T) {
	w := MustWrap("a", func() {})
	cp, err := NewObjectConverters().Wrap("b", w)
	require.NoError(t, err)
	require.NotSame(t, w, cp)
	require.Equal(t, "b()", cp.Signature())
	require.Equal(t, "a()", w.Signature())
}
