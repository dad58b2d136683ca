package strings_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/gad-lang/funcwrap"
	"github.com/gad-lang/funcwrap/stdlib/strings"
)

func call(t *testing.T, name string, args ...Object) Object {
	t.Helper()
	ret, err := strings.Module.Call(name, args...)
	require.NoError(t, err, name)
	return ret
}

func isSpace(c Call) (Object, error) {
	return Bool(c.Args.Get(0) == Int(' ')), nil
}

func TestModuleStrings(t *testing.T) {
	require.EqualValues(t, true, call(t, "Contains", Str("abc"), Str("b")))
	require.EqualValues(t, false, call(t, "Contains", Str("abc"), Str("d")))
	_, err := strings.Module.Call("Contains", Str("abc"), Str("d"), Str("x"))
	require.ErrorIs(t, err, ErrArgumentTypes)
	_, err = strings.Module.Call("Contains", Str("abc"))
	require.ErrorIs(t, err, ErrArgumentTypes)

	require.EqualValues(t, true, call(t, "ContainsAny", Str("abc"), Str("ax")))
	require.EqualValues(t, 3, call(t, "Count", Str("cheese"), Str("e")))
	require.EqualValues(t, true, call(t, "EqualFold", Str("GAD"), Str("gad")))
	require.EqualValues(t, true, call(t, "HasPrefix", Str("foobarbaz"), Str("foo")))
	require.EqualValues(t, false, call(t, "HasSuffix", Str("foobarbaz"), Str("foo")))
	require.EqualValues(t, 1, call(t, "IndexAny", Str("abc"), Str("cb")))
	require.EqualValues(t, "ABC", call(t, "ToUpper", Str("abc")))
	require.EqualValues(t, "abc", call(t, "ToLower", Str("ABC")))
	require.EqualValues(t, "abc", call(t, "TrimSpace", Str(" abc\n")))
	require.EqualValues(t, "bc", call(t, "TrimPrefix", Str("abc"), Str("a")))
	require.EqualValues(t, "ab", call(t, "TrimSuffix", Str("abc"), Str("c")))
}

func TestFields(t *testing.T) {
	require.Equal(t, `["foo", "bar", "baz"]`, call(t, "Fields", Str("\tfoo bar\nbaz")).ToString())

	byComma := &Function{
		Name: "byComma",
		Value: func(c Call) (Object, error) {
			return Bool(c.Args.Get(0) == Int(',')), nil
		},
	}
	require.Equal(t, `["a", "b"]`, call(t, "Fields", Str("a,,b,"), byComma).ToString())
}

func TestIndexOverloads(t *testing.T) {
	require.EqualValues(t, 3, call(t, "Index", Str("abc def"), Str(" d")))
	require.EqualValues(t, -1, call(t, "Index", Str("abc"), Str("x")))

	space := &Function{Name: "isSpace", Value: isSpace}
	require.EqualValues(t, 1, call(t, "Index", Str("a b c"), space))
	require.EqualValues(t, 3, call(t, "LastIndex", Str("a b c"), space))
	require.EqualValues(t, 2, call(t, "LastIndex", Str("abab"), Str("ab")))

	_, err := strings.Module.Call("Index", Str("abc"), Int(1))
	require.ErrorIs(t, err, ErrArgumentTypes)
	require.Contains(t, err.Error(), `strings.Index(str, int)
did not match native signatures:
    Index(string, string) int
    Index(string, func(int) bool) int`)
}

func TestCallbackFailure(t *testing.T) {
	notBool := &Function{
		Name: "notBool",
		Value: func(Call) (Object, error) {
			return Int(1), nil
		},
	}
	_, err := strings.Module.Call("Trim", Str(" a "), notBool)
	require.ErrorIs(t, err, ErrType)
	require.Contains(t, err.Error(), "expected bool, found int")

	failing := &Function{
		Name: "failing",
		Value: func(Call) (Object, error) {
			return nil, ErrNotImplemented.NewError("predicate")
		},
	}
	_, err = strings.Module.Call("Fields", Str("a b"), failing)
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestMap(t *testing.T) {
	rot13 := &Function{
		Name: "rot13",
		Value: func(c Call) (Object, error) {
			r := c.Args.Get(0).(Int)
			switch {
			case r >= 'a' && r <= 'z':
				return 'a' + (r-'a'+13)%26, nil
			case r == '-':
				return Int(-1), nil
			}
			return r, nil
		},
	}
	require.EqualValues(t, "nopq!", call(t, "Map", rot13, Str("ab-cd!")))
}

func TestJoinSplit(t *testing.T) {
	arr := call(t, "Split", Str("a,b,c"), Str(","))
	require.Equal(t, `["a", "b", "c"]`, arr.ToString())
	require.Equal(t, `["a", "b,c"]`, call(t, "Split", Str("a,b,c"), Str(","), Int(2)).ToString())

	require.EqualValues(t, "a-b-c", call(t, "Join", arr, Str("-")))
	_, err := strings.Module.Call("Join", NewArray(Str("a"), Int(1)), Str("-"))
	require.ErrorIs(t, err, ErrType)
	_, err = strings.Module.Call("Join", Str("abc"), Str("-"))
	require.ErrorIs(t, err, ErrArgumentTypes)
}

func TestPadRepeatReplace(t *testing.T) {
	require.EqualValues(t, "  ab", call(t, "PadLeft", Str("ab"), Int(4)))
	require.EqualValues(t, "xyxab", call(t, "PadLeft", Str("ab"), Int(5), Str("xy")))
	require.EqualValues(t, "ab..", call(t, "PadRight", Str("ab"), Int(4), Str(".")))
	require.EqualValues(t, "abc", call(t, "PadRight", Str("abc"), Int(2)))

	require.EqualValues(t, "ababab", call(t, "Repeat", Str("ab"), Int(3)))
	require.EqualValues(t, "", call(t, "Repeat", Str("ab"), Int(-1)))

	require.EqualValues(t, "xbxb", call(t, "Replace", Str("abab"), Str("a"), Str("x")))
	require.EqualValues(t, "xbab", call(t, "Replace", Str("abab"), Str("a"), Str("x"), Int(1)))
}
