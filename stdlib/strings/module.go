// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package strings provides the strings module wrapping functions of Go's
// strings package. Optional arguments are expressed as overloads and
// character predicates and mappers are script callables.
package strings

import (
	"strings"
	"unicode/utf8"

	"github.com/gad-lang/funcwrap"
)

// Name is the module name.
const Name = "strings"

// Module is the strings module.
var Module = New()

// New returns a new strings module.
func New(opts ...funcwrap.ModuleOpt) *funcwrap.Module {
	return funcwrap.NewModule(Name, opts...).
		// Contains(s string, substr string) -> bool
		// Reports whether substr is within s.
		MustDef("Contains", strings.Contains).
		// ContainsAny(s string, chars string) -> bool
		MustDef("ContainsAny", strings.ContainsAny).
		// Count(s string, substr string) -> int
		// Counts the number of non-overlapping instances of substr in s.
		MustDef("Count", strings.Count).
		MustDef("EqualFold", strings.EqualFold).
		// Fields(s string) -> array
		// Fields(s string, f func(char int) bool) -> array
		// Splits s around runs of white space, or of chars satisfying f.
		MustDef("Fields", fields).
		MustDef("Fields", fieldsFunc).
		MustDef("HasPrefix", strings.HasPrefix).
		MustDef("HasSuffix", strings.HasSuffix).
		// Index(s string, substr string) -> int
		// Index(s string, f func(char int) bool) -> int
		// Returns the index of the first instance of substr, or of the first
		// char satisfying f, in s. -1 if there is none.
		MustDef("Index", strings.Index).
		MustDef("Index", indexFunc).
		MustDef("IndexAny", strings.IndexAny).
		// Join(arr array, sep string) -> string
		// Concatenates the elements of arr, which must be strings.
		MustDef("Join", join).
		MustDef("LastIndex", strings.LastIndex).
		MustDef("LastIndex", lastIndexFunc).
		// Map(f func(char int) int, s string) -> string
		// Returns a copy of s with all its chars mapped by f. Chars mapped to
		// a negative value are dropped.
		MustDef("Map", mapFunc).
		// PadLeft(s string, padLen int[, padWith string]) -> string
		// Pads s on the left with padWith, a white space by default, until
		// padLen chars are reached.
		MustDef("PadLeft", func(s string, n int) string { return pad(s, n, " ", true) }).
		MustDef("PadLeft", func(s string, n int, with string) string { return pad(s, n, with, true) }).
		// PadRight(s string, padLen int[, padWith string]) -> string
		MustDef("PadRight", func(s string, n int) string { return pad(s, n, " ", false) }).
		MustDef("PadRight", func(s string, n int, with string) string { return pad(s, n, with, false) }).
		// Repeat(s string, count int) -> string
		// A negative count returns an empty string.
		MustDef("Repeat", repeat).
		// Replace(s string, old string, new string[, n int]) -> string
		// Replaces the first n, all by default, instances of old by new.
		MustDef("Replace", strings.ReplaceAll).
		MustDef("Replace", strings.Replace).
		// Split(s string, sep string[, n int]) -> array
		MustDef("Split", func(s, sep string) *funcwrap.Array { return toArray(strings.Split(s, sep)) }).
		MustDef("Split", func(s, sep string, n int) *funcwrap.Array { return toArray(strings.SplitN(s, sep, n)) }).
		MustDef("ToLower", strings.ToLower).
		MustDef("ToUpper", strings.ToUpper).
		// Trim(s string, cutset string) -> string
		// Trim(s string, f func(char int) bool) -> string
		MustDef("Trim", strings.Trim).
		MustDef("Trim", trimFunc).
		MustDef("TrimPrefix", strings.TrimPrefix).
		MustDef("TrimSuffix", strings.TrimSuffix).
		MustDef("TrimSpace", strings.TrimSpace)
}

// predicate adapts a char predicate to the signature of Go's strings
// functions. Chars cross the bridge as ints.
func predicate(f func(int) bool) func(rune) bool {
	return func(r rune) bool { return f(int(r)) }
}

func fields(s string) *funcwrap.Array {
	return toArray(strings.Fields(s))
}

func fieldsFunc(s string, f func(int) bool) *funcwrap.Array {
	return toArray(strings.FieldsFunc(s, predicate(f)))
}

func indexFunc(s string, f func(int) bool) int {
	return strings.IndexFunc(s, predicate(f))
}

func lastIndexFunc(s string, f func(int) bool) int {
	return strings.LastIndexFunc(s, predicate(f))
}

func trimFunc(s string, f func(int) bool) string {
	return strings.TrimFunc(s, predicate(f))
}

func mapFunc(f func(int) int, s string) string {
	return strings.Map(func(r rune) rune {
		m := f(int(r))
		if m > utf8.MaxRune {
			return utf8.RuneError
		}
		return rune(m)
	}, s)
}

func join(arr *funcwrap.Array, sep string) (string, error) {
	elems := make([]string, arr.Length())
	for i, item := range arr.Items() {
		s, ok := item.(funcwrap.Str)
		if !ok {
			return "", funcwrap.NewArgumentTypeError(0, "array of str", "array of "+item.Type().Name())
		}
		elems[i] = string(s)
	}
	return strings.Join(elems, sep), nil
}

func repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

func pad(s string, n int, with string, left bool) string {
	l := utf8.RuneCountInString(s)
	wl := utf8.RuneCountInString(with)
	if n <= l || wl == 0 {
		return s
	}
	padding := []rune(strings.Repeat(with, (n-l)/wl+1))[:n-l]
	if left {
		return string(padding) + s
	}
	return s + string(padding)
}

func toArray(elems []string) *funcwrap.Array {
	items := make([]funcwrap.Object, len(elems))
	for i, s := range elems {
		items[i] = funcwrap.Str(s)
	}
	return funcwrap.NewArray(items...)
}
