package check

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/garciat/negcoh/tree"
)

type Verdict int

const (
	// Overlap means both impls may apply to some instantiation.
	Overlap Verdict = iota
	// Disjoint means no instantiation satisfies both impls.
	Disjoint
)

func (v Verdict) String() string {
	switch v {
	case Overlap:
		return "Overlap"
	case Disjoint:
		return "Disjoint"
	default:
		panic("unreachable")
	}
}

type Result struct {
	Verdict Verdict
	Left    *tree.ImplDecl
	Right   *tree.ImplDecl
	Reason  Reason
}

// CheckPair decides whether two impls can apply to the same instantiation.
func (c *Checker) CheckPair(left, right *tree.ImplDecl) (Result, error) {
	CheckerPrintf("=== CheckPair(%v, %v) ===\n", left, right)

	e := NewElaborator(c.Decls)
	l, err := e.ElaborateImpl(left)
	if err != nil {
		return Result{}, errors.Wrapf(err, "elaborate %v", left)
	}
	r, err := e.ElaborateImpl(right)
	if err != nil {
		return Result{}, errors.Wrapf(err, "elaborate %v", right)
	}
	DebugDumpValues(l, r)

	result := Result{Left: left, Right: right}

	u := NewUnifier()
	if m := u.UnifyTraits(l.Trait, r.Trait); m != nil {
		CheckerPrintf("heads differ: %v\n", m)
		result.Verdict, result.Reason = Disjoint, ReasonHeadMismatch{Mismatch: m}
		return result, nil
	}
	if m := u.UnifyTypes(l.Target, r.Target); m != nil {
		CheckerPrintf("targets differ: %v\n", m)
		result.Verdict, result.Reason = Disjoint, ReasonTargetMismatch{Mismatch: m}
		return result, nil
	}

	classes := u.EquivalenceClasses()
	anchored, unbounded := 0, 0
	for _, class := range classes {
		if class.Anchor != nil {
			// TODO: an orphan/specificity rule would decide anchored classes instead of assuming overlap.
			CheckerPrintf("class %v anchored to %v\n", class.Members, class.Anchor)
			anchored++
			continue
		}
		if slices.ContainsFunc(class.Members, func(id VarID) bool { return !e.HasBound(id) }) {
			// An unbounded member can be instantiated with anything.
			CheckerPrintf("class %v has an unbounded member\n", class.Members)
			unbounded++
			continue
		}

		bound := NewBound()
		vars := make([]*TypeVar, 0, len(class.Members))
		for _, id := range class.Members {
			bound = bound.Join(e.BoundOf(id))
			vars = append(vars, e.Vars[id])
		}
		CheckerPrintf("class %v joined bound: %v\n", class.Members, bound)

		witness, err := c.Decls.Contradiction(bound)
		if err != nil {
			return Result{}, errors.Wrapf(err, "bound %v", bound)
		}
		if witness != nil {
			result.Verdict = Disjoint
			result.Reason = ReasonContradiction{Vars: vars, Bound: bound, Trait: *witness}
			return result, nil
		}
	}

	result.Verdict = Overlap
	result.Reason = ReasonSatisfiable{Classes: len(classes), Anchored: anchored, Unbounded: unbounded}
	return result, nil
}
