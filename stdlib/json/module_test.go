package json_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/gad-lang/funcwrap"
	"github.com/gad-lang/funcwrap/stdlib/json"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		in   Object
		want string
	}{
		{Nil, "null"},
		{True, "true"},
		{Int(-1), "-1"},
		{Float(1.5), "1.5"},
		{MustDecimalFromString("0.10"), "0.1"},
		{Str("a\"b"), `"a\"b"`},
		{NewArray(Int(1), Str("x"), NewArray()), `[1,"x",[]]`},
		{NewDict(Str("b"), Int(2), Str("a"), NewDict()), `{"a":{},"b":2}`},
	}
	for _, tt := range tests {
		got, err := json.Module.Call("Marshal", tt.in)
		require.NoError(t, err)
		require.EqualValues(t, tt.want, got)
	}

	_, err := json.Module.Call("Marshal", NewDict(Int(1), Int(2)))
	require.ErrorIs(t, err, ErrType)
	_, err = json.Module.Call("Marshal", NewArray(&Function{}))
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = json.Module.Call("Marshal")
	require.ErrorIs(t, err, ErrArgumentTypes)

	got, err := json.Module.Call("MarshalIndent", NewArray(Int(1)), Str(""), Str("  "))
	require.NoError(t, err)
	require.EqualValues(t, "[\n  1\n]", got)
}

func TestUnmarshal(t *testing.T) {
	got, err := json.Module.Call("Unmarshal", Str(`{"b": [1, 2.5, "s", null, true], "a": {}}`))
	require.NoError(t, err)
	require.Equal(t, `{"a": {}, "b": [1, 2.5, "s", nil, true]}`, got.ToString())

	d := got.(*Dict)
	b, _ := d.Get(Str("b"))
	first, _ := b.(*Array).IndexGet(Int(0))
	require.Equal(t, TInt, first.Type())

	_, err = json.Module.Call("Unmarshal", Str(`{`))
	require.ErrorIs(t, err, ErrNative)

	v, err := json.Unmarshal(`1e400`)
	require.Error(t, err)
	require.Nil(t, v)
}

func TestUnmarshal_TrailingData(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{`{"a":1}xyz`, false},
		{`1 2`, false},
		{`[1]]`, false},
		{`{} {}`, false},
		{" [1] \n", true},
	}
	for _, tt := range tests {
		valid, err := json.Module.Call("Valid", Str(tt.in))
		require.NoError(t, err, tt.in)
		require.Equal(t, Bool(tt.valid), valid, tt.in)

		_, err = json.Module.Call("Unmarshal", Str(tt.in))
		if tt.valid {
			require.NoError(t, err, tt.in)
		} else {
			require.ErrorIs(t, err, ErrNative, tt.in)
		}
	}
}

func TestMarshal_Cycle(t *testing.T) {
	d := NewDict()
	require.NoError(t, d.Set(Str("self"), d))
	_, err := json.Module.Call("Marshal", d)
	require.ErrorIs(t, err, ErrType)

	a := NewArray()
	a.Append(NewArray(a))
	_, err = json.ToGo(a)
	require.ErrorIs(t, err, ErrType)

	shared := NewArray(Int(1))
	got, err := json.Module.Call("Marshal", NewArray(shared, shared))
	require.NoError(t, err)
	require.EqualValues(t, "[[1],[1]]", got)
}

func TestRoundTrip(t *testing.T) {
	in := NewDict(Str("n"), Int(3), Str("l"), NewArray(Float(0.5), Str("x")))
	s, err := json.Module.Call("Marshal", in)
	require.NoError(t, err)
	out, err := json.Module.Call("Unmarshal", s)
	require.NoError(t, err)
	require.True(t, in.Equal(out))
}

func TestCompactIndentValid(t *testing.T) {
	got, err := json.Module.Call("Compact", Str("{ \"a\" : [ 1 ] }"))
	require.NoError(t, err)
	require.EqualValues(t, `{"a":[1]}`, got)

	got, err = json.Module.Call("Indent", Str(`{"a":1}`), Str(""), Str("\t"))
	require.NoError(t, err)
	require.EqualValues(t, "{\n\t\"a\": 1\n}", got)

	_, err = json.Module.Call("Compact", Str("{"))
	require.ErrorIs(t, err, ErrNative)

	got, err = json.Module.Call("Valid", Str("[]"))
	require.NoError(t, err)
	require.Equal(t, True, got)
}
