// Copyright (c) 2022-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package json provides the json module encoding objects to JSON and
// decoding JSON to objects.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/gad-lang/funcwrap"
)

// Name is the module name.
const Name = "json"

// Module is the json module.
var Module = New()

// New returns a new json module.
func New(opts ...funcwrap.ModuleOpt) *funcwrap.Module {
	return funcwrap.NewModule(Name, opts...).
		// Marshal(v any) -> string
		// Returns the JSON encoding of v. Dict keys must be strings.
		MustDef("Marshal", marshal).
		// MarshalIndent(v any, prefix string, indent string) -> string
		MustDef("MarshalIndent", marshalIndent).
		// Unmarshal(data string) -> any
		// Integral numbers decode to int, other numbers to float.
		MustDef("Unmarshal", Unmarshal).
		// Valid(data string) -> bool
		MustDef("Valid", func(data string) bool { return json.Valid([]byte(data)) }).
		// Compact(data string) -> string
		// Returns data without insignificant space characters.
		MustDef("Compact", compact).
		// Indent(data string, prefix string, indent string) -> string
		MustDef("Indent", indent)
}

func marshal(o funcwrap.Object) (string, error) {
	v, err := ToGo(o)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(v)
	return string(b), err
}

func marshalIndent(o funcwrap.Object, prefix, indent string) (string, error) {
	v, err := ToGo(o)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(v, prefix, indent)
	return string(b), err
}

func compact(data string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(data)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func indent(data, prefix, indent string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(data), prefix, indent); err != nil {
		return "", err
	}
	return buf.String(), nil
}
