package check

import (
	"slices"

	"github.com/pkg/errors"
)

// Supertraits instantiates the positive supertraits declared for t.Name with t's
// arguments. Names that are not trait parameters resolve as plain structs.
func (c *DeclContext) Supertraits(t Trait) ([]Trait, error) {
	decl, ok := c.Traits.Lookup(t.Name)
	if !ok {
		return nil, &UndeclaredTraitError{Name: t.Name}
	}
	if decl.Supertraits == nil {
		return nil, nil
	}

	scope := NewScope()
	for i, p := range decl.Params {
		if i < len(t.Args) {
			scope.Def(p.Name, t.Args[i])
		}
	}

	sups := make([]Trait, 0, len(decl.Supertraits.Positive))
	for _, te := range decl.Supertraits.Positive {
		sup, err := c.ResolveTrait(scope, te)
		if err != nil {
			return nil, errors.Wrapf(err, "supertrait %v of %v", te, decl.Name)
		}
		sups = append(sups, sup)
	}
	return sups, nil
}

// TransitiveClosure is t together with everything its supertraits oblige,
// recursively. Supertrait cycles are rejected when the DeclContext is built.
func (c *DeclContext) TransitiveClosure(t Trait) (*TraitSet, error) {
	closure := NewTraitSet(t)
	sups, err := c.Supertraits(t)
	if err != nil {
		return nil, err
	}
	for _, sup := range sups {
		sub, err := c.TransitiveClosure(sup)
		if err != nil {
			return nil, err
		}
		insertAll(closure, sub)
	}
	return closure, nil
}

// Entailed is the union of the closures of every positive trait in b.
func (c *DeclContext) Entailed(b *Bound) (*TraitSet, error) {
	entailed := NewTraitSet()
	for _, t := range SortedTraits(b.Positive) {
		closure, err := c.TransitiveClosure(t)
		if err != nil {
			return nil, err
		}
		insertAll(entailed, closure)
	}
	return entailed, nil
}

// Contradiction returns a trait that b both entails and excludes, or nil when b
// may be satisfiable.
func (c *DeclContext) Contradiction(b *Bound) (*Trait, error) {
	entailed, err := c.Entailed(b)
	if err != nil {
		return nil, err
	}
	implied := SortedTraits(entailed)
	for _, t := range SortedTraits(b.Negative) {
		if slices.ContainsFunc(implied, func(u Trait) bool { return TraitIdentical(t, u) }) {
			return &t, nil
		}
	}
	return nil, nil
}
