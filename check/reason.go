package check

import (
	"fmt"
	"strings"
)

// Reason explains a verdict.
type Reason interface {
	_Reason()
	String() string
}

type ReasonBase struct{}

func (ReasonBase) _Reason() {}

type ReasonHeadMismatch struct {
	ReasonBase
	Mismatch *Mismatch
}

func (r ReasonHeadMismatch) String() string {
	return fmt.Sprintf("trait heads do not unify: %v", r.Mismatch)
}

type ReasonTargetMismatch struct {
	ReasonBase
	Mismatch *Mismatch
}

func (r ReasonTargetMismatch) String() string {
	return fmt.Sprintf("targets do not unify: %v", r.Mismatch)
}

type ReasonContradiction struct {
	ReasonBase
	Vars  []*TypeVar
	Bound *Bound
	Trait Trait
}

func (r ReasonContradiction) String() string {
	names := make([]string, 0, len(r.Vars))
	for _, v := range r.Vars {
		names = append(names, v.String())
	}
	return fmt.Sprintf("%v: %v is unsatisfiable, %v is both implied and excluded",
		strings.Join(names, " = "), r.Bound, r.Trait)
}

type ReasonSatisfiable struct {
	ReasonBase
	Classes   int
	Anchored  int
	Unbounded int
}

func (r ReasonSatisfiable) String() string {
	return fmt.Sprintf("%d linked classes (%d anchored to a concrete type, %d with an unbounded member), none unsatisfiable",
		r.Classes, r.Anchored, r.Unbounded)
}
