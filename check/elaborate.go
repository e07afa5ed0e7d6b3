package check

import (
	"github.com/pkg/errors"

	. "github.com/garciat/negcoh/common"
	"github.com/garciat/negcoh/tree"
)

// ResolveType turns a surface type into a concrete one. Names bound in scope win;
// anything else must be a declared struct applied to the declared number of arguments.
func (c *DeclContext) ResolveType(scope *Scope, te *tree.TypeExpr) (Type, error) {
	if ty, ok := scope.Lookup(te.Name); ok {
		if len(te.Args) != 0 {
			return nil, &ArityError{Name: te.Name, Want: 0, Got: len(te.Args)}
		}
		return ty, nil
	}

	decl, ok := c.Structs.Lookup(te.Name)
	if !ok {
		return nil, &UndefinedSymbolError{Name: te.Name}
	}
	if decl.Arity() != len(te.Args) {
		return nil, &ArityError{Name: te.Name, Want: decl.Arity(), Got: len(te.Args)}
	}

	args, err := c.resolveArgs(scope, te.Args)
	if err != nil {
		return nil, err
	}
	return &TypeCon{Name: te.Name, Args: args}, nil
}

// ResolveTrait resolves the arguments of a trait application. The trait name is
// taken as written.
func (c *DeclContext) ResolveTrait(scope *Scope, te *tree.TypeExpr) (Trait, error) {
	args, err := c.resolveArgs(scope, te.Args)
	if err != nil {
		return Trait{}, err
	}
	return Trait{Name: te.Name, Args: args}, nil
}

func (c *DeclContext) resolveArgs(scope *Scope, exprs []*tree.TypeExpr) ([]Type, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	args := make([]Type, 0, len(exprs))
	for _, expr := range exprs {
		arg, err := c.ResolveType(scope, expr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (c *DeclContext) ResolveBound(scope *Scope, b *tree.Bound) (*Bound, error) {
	bound := NewBound()
	for _, te := range b.Positive {
		t, err := c.ResolveTrait(scope, te)
		if err != nil {
			return nil, err
		}
		bound.Positive.Insert(t)
	}
	for _, te := range b.Negative {
		t, err := c.ResolveTrait(scope, te)
		if err != nil {
			return nil, err
		}
		bound.Negative.Insert(t)
	}
	return bound, nil
}

// ========================

type ConcreteImpl struct {
	Decl   *tree.ImplDecl
	Params []*TypeVar
	Trait  Trait
	Target Type
}

// Elaborator hands out variable ids for the impls of one pairwise check and
// remembers the bound of every variable it created.
type Elaborator struct {
	Decls  *DeclContext
	Fresh  int
	Vars   map[VarID]*TypeVar
	Bounds map[VarID]*Bound
}

func NewElaborator(decls *DeclContext) *Elaborator {
	return &Elaborator{
		Decls:  decls,
		Vars:   map[VarID]*TypeVar{},
		Bounds: map[VarID]*Bound{},
	}
}

func (e *Elaborator) FreshVar(name Identifier) *TypeVar {
	v := &TypeVar{ID: VarID(e.Fresh), Name: name}
	e.Fresh++
	e.Vars[v.ID] = v
	return v
}

func (e *Elaborator) HasBound(id VarID) bool {
	_, ok := e.Bounds[id]
	return ok
}

// BoundOf returns the declared bound of a variable; unbounded variables get the
// empty bound.
func (e *Elaborator) BoundOf(id VarID) *Bound {
	if b, ok := e.Bounds[id]; ok {
		return b
	}
	return NewBound()
}

// ElaborateImpl gives each impl parameter a fresh variable in declaration order.
// A parameter's bound sees the parameters declared before it, not itself. Each
// parameter opens a nested scope, so a repeated name shadows the earlier one.
func (e *Elaborator) ElaborateImpl(impl *tree.ImplDecl) (*ConcreteImpl, error) {
	scope := NewScope()
	cimpl := &ConcreteImpl{Decl: impl}

	for _, p := range impl.Params {
		v := e.FreshVar(p.Name)
		if p.Bound != nil {
			bound, err := e.Decls.ResolveBound(scope, p.Bound)
			if err != nil {
				return nil, errors.Wrapf(err, "bound of %v", p.Name)
			}
			e.Bounds[v.ID] = bound
		}
		scope = scope.Fork()
		scope.Def(p.Name, v)
		cimpl.Params = append(cimpl.Params, v)
	}

	var err error
	cimpl.Trait, err = e.Decls.ResolveTrait(scope, impl.Trait)
	if err != nil {
		return nil, errors.Wrapf(err, "trait %v", impl.Trait)
	}
	cimpl.Target, err = e.Decls.ResolveType(scope, impl.Target)
	if err != nil {
		return nil, errors.Wrapf(err, "target %v", impl.Target)
	}

	Assert(len(cimpl.Params) == len(impl.Params), "every param elaborated")
	return cimpl, nil
}
