package funcwrap

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xlab/treeprint"
	"go.uber.org/zap"
)

// ModuleOpts configures a Module.
type ModuleOpts struct {
	// Logger receives definition and dispatch logs. Logger() is used if nil.
	Logger *zap.Logger
	// Converters convert `any` typed parameters and results.
	Converters *ObjectConverters
}

type ModuleOpt func(o *ModuleOpts)

func WithLogger(l *zap.Logger) ModuleOpt {
	return func(o *ModuleOpts) {
		o.Logger = l
	}
}

func WithConverters(c *ObjectConverters) ModuleOpt {
	return func(o *ModuleOpts) {
		o.Converters = c
	}
}

// Module is a named set of native functions exposed to the script side.
// Defining a name twice adds an overload.
type Module struct {
	ObjectImpl
	Name  string
	opts  ModuleOpts
	mu    sync.RWMutex
	sets  map[string]*OverloadSet
	order []string
}

var _ IndexGetter = (*Module)(nil)

func NewModule(name string, opts ...ModuleOpt) *Module {
	m := &Module{
		Name: name,
		sets: map[string]*OverloadSet{},
	}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

func (m *Module) log() *zap.Logger {
	if m.opts.Logger != nil {
		return m.opts.Logger
	}
	return Logger()
}

// Def wraps fn and appends it to the overloads of name.
func (m *Module) Def(name string, fn any) error {
	w, err := m.opts.Converters.Wrap(name, fn)
	if err != nil {
		return fmt.Errorf("define %s.%s: %w", m.Name, name, err)
	}

	m.mu.Lock()
	set, ok := m.sets[name]
	if !ok {
		set = &OverloadSet{Name: name, Module: m.Name, logger: m.opts.Logger}
		m.sets[name] = set
		m.order = append(m.order, name)
	}
	shadowedBy := set.Add(w)
	m.mu.Unlock()

	log := m.log()
	log.Debug("function defined",
		zap.String("module", m.Name),
		zap.String("signature", w.Signature()))
	if shadowedBy != nil {
		log.Warn("overload is shadowed by an earlier overload",
			zap.String("module", m.Name),
			zap.String("overload", w.Signature()),
			zap.String("shadowed_by", shadowedBy.Signature()))
	}
	return nil
}

// MustDef is like Def but panics on error.
func (m *Module) MustDef(name string, fn any) *Module {
	if err := m.Def(name, fn); err != nil {
		panic(err)
	}
	return m
}

// Get returns the overloads of name.
func (m *Module) Get(name string) (*OverloadSet, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.sets[name]
	return set, ok
}

// Names returns the defined names in definition order.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Call calls name with args. The returned error, if any, is an *Error.
func (m *Module) Call(name string, args ...Object) (Object, error) {
	set, ok := m.Get(name)
	if !ok {
		return nil, ErrNotFound.NewError(m.Name + "." + name)
	}
	return set.Call(NewCall(WithArgs(args...)))
}

// Dict returns a Dict of the defined names to their overloads.
func (m *Module) Dict() *Dict {
	d := NewDict()
	for _, name := range m.Names() {
		set, _ := m.Get(name)
		_ = d.Set(Str(name), set)
	}
	return d
}

// Tree renders the module signatures as a tree.
func (m *Module) Tree() string {
	tree := treeprint.NewWithRoot(m.Name)
	for _, name := range m.Names() {
		set, _ := m.Get(name)
		set.addTo(tree.AddBranch(name))
	}
	return strings.TrimRight(tree.String(), "\n")
}

func (*Module) Type() ObjectType {
	return TModule
}

func (m *Module) ToString() string {
	return fmt.Sprintf("<module:%s>", m.Name)
}

// Equal implements Object interface.
func (m *Module) Equal(right Object) bool {
	v, ok := right.(*Module)
	return ok && v == m
}

// IsFalsy implements Object interface.
func (*Module) IsFalsy() bool { return false }

// IndexGet implements IndexGetter interface.
func (m *Module) IndexGet(index Object) (Object, error) {
	name, ok := index.(Str)
	if !ok {
		return nil, NewIndexTypeError(TStr.Name(), index.Type().Name())
	}
	if set, ok := m.Get(string(name)); ok {
		return set, nil
	}
	return nil, ErrNotFound.NewError(m.Name + "." + string(name))
}
