package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/gad-lang/funcwrap"
)

// ToGo converts o to a value encoding/json can marshal. A container holding
// itself is an ErrType.
func ToGo(o funcwrap.Object) (any, error) {
	return toGo(o, map[funcwrap.Object]struct{}{})
}

func toGo(o funcwrap.Object, seen map[funcwrap.Object]struct{}) (any, error) {
	switch v := o.(type) {
	case nil, *funcwrap.NilType:
		return nil, nil
	case funcwrap.Bool:
		return bool(v), nil
	case funcwrap.Int:
		return int64(v), nil
	case funcwrap.Float:
		return float64(v), nil
	case funcwrap.Decimal:
		return json.Number(v.ToString()), nil
	case funcwrap.Str:
		return string(v), nil
	case *funcwrap.Array:
		if err := enter(v, seen); err != nil {
			return nil, err
		}
		defer delete(seen, v)
		arr := make([]any, v.Length())
		for i, item := range v.Items() {
			x, err := toGo(item, seen)
			if err != nil {
				return nil, err
			}
			arr[i] = x
		}
		return arr, nil
	case *funcwrap.Dict:
		if err := enter(v, seen); err != nil {
			return nil, err
		}
		defer delete(seen, v)
		m := make(map[string]any, v.Length())
		for _, k := range v.Keys() {
			ks, ok := k.(funcwrap.Str)
			if !ok {
				return nil, funcwrap.ErrType.NewError(fmt.Sprintf("json object key must be str, found %s", k.Type().Name()))
			}
			val, _ := v.Get(k)
			x, err := toGo(val, seen)
			if err != nil {
				return nil, err
			}
			m[string(ks)] = x
		}
		return m, nil
	}
	return nil, funcwrap.ErrUnsupportedType.NewError("json: " + o.Type().Name())
}

func enter(o funcwrap.Object, seen map[funcwrap.Object]struct{}) error {
	if _, ok := seen[o]; ok {
		return funcwrap.ErrType.NewError("json: cycle through " + o.Type().Name())
	}
	seen[o] = struct{}{}
	return nil
}

// Unmarshal decodes data to an object.
func Unmarshal(data string) (funcwrap.Object, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("invalid data after top-level value at offset %d", dec.InputOffset())
	}
	return fromGo(v)
}

func fromGo(v any) (funcwrap.Object, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return funcwrap.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return funcwrap.Float(f), nil
	case []any:
		items := make([]funcwrap.Object, len(t))
		for i, x := range t {
			o, err := fromGo(x)
			if err != nil {
				return nil, err
			}
			items[i] = o
		}
		return funcwrap.NewArray(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := funcwrap.NewDict()
		for _, k := range keys {
			o, err := fromGo(t[k])
			if err != nil {
				return nil, err
			}
			_ = d.Set(funcwrap.Str(k), o)
		}
		return d, nil
	}
	return funcwrap.ToObject(v)
}
