package funcwrap

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xlab/treeprint"
	"go.uber.org/zap"
)

// OverloadSet is a callable made of native candidates sharing a name. A call
// is dispatched to the first candidate, in registration order, accepting the
// runtime types of the arguments.
type OverloadSet struct {
	ObjectImpl
	Name       string
	Module     string
	mu         sync.RWMutex
	candidates []*Wrapper
	logger     *zap.Logger
}

var _ CallerObject = (*OverloadSet)(nil)

// NewOverloadSet returns an OverloadSet with candidates.
func NewOverloadSet(name string, candidates ...*Wrapper) *OverloadSet {
	o := &OverloadSet{Name: name}
	for _, c := range candidates {
		o.Add(c)
	}
	return o
}

// Add appends w to the candidates. It returns the earlier candidate that
// accepts every argument list w accepts, if any: w can then never be
// selected. Add may be called while the set is being called.
func (o *OverloadSet) Add(w *Wrapper) (shadowedBy *Wrapper) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, c := range o.candidates {
		if c.Covers(w) {
			shadowedBy = c
			break
		}
	}
	o.candidates = append(o.candidates, w)
	return
}

// Candidates returns the candidates in registration order.
func (o *OverloadSet) Candidates() []*Wrapper {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]*Wrapper(nil), o.candidates...)
}

// QualifiedName returns the name prefixed with the module name.
func (o *OverloadSet) QualifiedName() string {
	if o.Module == "" {
		return o.Name
	}
	return o.Module + "." + o.Name
}

// Signatures returns the candidate signatures in registration order.
func (o *OverloadSet) Signatures() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.signatures()
}

func (o *OverloadSet) signatures() []string {
	sigs := make([]string, len(o.candidates))
	for i, c := range o.candidates {
		sigs[i] = c.Signature()
	}
	return sigs
}

// Resolve returns the candidate to call with args.
func (o *OverloadSet) Resolve(args Args) (*Wrapper, error) {
	args = normalizeArgs(args)
	o.mu.RLock()
	defer o.mu.RUnlock()
	for i, c := range o.candidates {
		if c.Accepts(args) {
			o.log().Debug("overload selected",
				zap.String("func", o.QualifiedName()),
				zap.Int("index", i),
				zap.String("signature", c.Signature()))
			return c, nil
		}
	}
	return nil, &MismatchError{
		Name:       o.QualifiedName(),
		ArgTypes:   args.Types(),
		Signatures: o.signatures(),
	}
}

// Invoke resolves and calls the candidate accepting args. Errors are not
// translated.
func (o *OverloadSet) Invoke(args ...Object) (Object, error) {
	c, err := o.Resolve(args)
	if err != nil {
		return nil, err
	}
	return c.invoke(args)
}

// Call implements CallerObject interface.
func (o *OverloadSet) Call(c Call) (Object, error) {
	ret, err := o.Invoke(c.Args...)
	if err != nil {
		return nil, Translate(err)
	}
	return ret, nil
}

func (*OverloadSet) Type() ObjectType {
	return TNativeFunction
}

func (o *OverloadSet) ToString() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if len(o.candidates) == 1 {
		return fmt.Sprintf("<nativeFunction:%s>", o.candidates[0].Signature())
	}
	return fmt.Sprintf("<nativeFunction:%s with %d overloads>", o.QualifiedName(), len(o.candidates))
}

// Equal implements Object interface.
func (o *OverloadSet) Equal(right Object) bool {
	v, ok := right.(*OverloadSet)
	return ok && v == o
}

// IsFalsy implements Object interface.
func (*OverloadSet) IsFalsy() bool { return false }

// Tree renders the candidates as a tree.
func (o *OverloadSet) Tree() string {
	tree := treeprint.NewWithRoot(o.QualifiedName())
	o.addTo(tree)
	return strings.TrimRight(tree.String(), "\n")
}

func (o *OverloadSet) addTo(tree treeprint.Tree) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for i, c := range o.candidates {
		tree.AddNode(fmt.Sprintf("%d. %s", i+1, c.Signature()))
	}
}

func (o *OverloadSet) log() *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
