// Package stdlib lists the modules available to the funcwrap command.
package stdlib

import (
	"sort"

	"github.com/gad-lang/funcwrap"
	"github.com/gad-lang/funcwrap/stdlib/fnexample"
	"github.com/gad-lang/funcwrap/stdlib/json"
	"github.com/gad-lang/funcwrap/stdlib/strings"
)

// Modules maps module names to their constructors.
var Modules = map[string]func(opts ...funcwrap.ModuleOpt) *funcwrap.Module{
	fnexample.Name: fnexample.New,
	json.Name:      json.New,
	strings.Name:   strings.New,
}

// Names returns the module names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Modules))
	for name := range Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a new instance of the module name.
func New(name string, opts ...funcwrap.ModuleOpt) (*funcwrap.Module, error) {
	f, ok := Modules[name]
	if !ok {
		return nil, funcwrap.ErrNotFound.NewError("module " + name)
	}
	return f(opts...), nil
}
