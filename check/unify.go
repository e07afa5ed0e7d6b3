package check

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"

	"github.com/garciat/negcoh/algos"
	. "github.com/garciat/negcoh/common"
)

// Mismatch describes why two types or traits did not unify.
type Mismatch struct {
	Left  string
	Right string
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("cannot unify %v with %v", m.Left, m.Right)
}

// Unifier solves type equations into a substitution. Bindings are recorded
// without an occurs check, so the substitution may describe cyclic types.
type Unifier struct {
	Subst Subst
	// pairs already being unified, keyed by both sides
	seen map[string]bool
}

func NewUnifier() *Unifier {
	return &Unifier{Subst: Subst{}, seen: map[string]bool{}}
}

func (u *Unifier) Resolve(ty Type) Type {
	return u.Subst.Resolve(ty)
}

// UnifyTypes returns nil on success. Constructor arguments are unified up to the
// shorter of the two lists; extra trailing arguments are ignored.
// Revisiting a pair of cyclic types assumes it unifies.
func (u *Unifier) UnifyTypes(left, right Type) *Mismatch {
	left = u.Subst.Walk(left)
	right = u.Subst.Walk(right)

	UnifyPrintf("? %v = %v %v\n", left.Key(), right.Key(), u.Subst)

	if Identical(left, right) {
		return nil
	}

	switch left := left.(type) {
	case *TypeCon:
		switch right := right.(type) {
		case *TypeCon:
			if left.Name != right.Name {
				return &Mismatch{Left: u.Resolve(left).String(), Right: u.Resolve(right).String()}
			}
			key := left.Key() + " = " + right.Key()
			if u.seen[key] {
				return nil
			}
			u.seen[key] = true
			for i := 0; i < min(len(left.Args), len(right.Args)); i++ {
				if m := u.UnifyTypes(left.Args[i], right.Args[i]); m != nil {
					return m
				}
			}
			return nil
		case *TypeVar:
			u.Subst[right.ID] = left
			return nil
		}
	case *TypeVar:
		switch right.(type) {
		case *TypeCon, *TypeVar:
			u.Subst[left.ID] = right
			return nil
		}
	}

	spew.Dump(left, right)
	panic("unreachable")
}

func (u *Unifier) UnifyTraits(left, right Trait) *Mismatch {
	if left.Name != right.Name {
		return &Mismatch{Left: left.String(), Right: right.String()}
	}
	for i := 0; i < min(len(left.Args), len(right.Args)); i++ {
		if m := u.UnifyTypes(left.Args[i], right.Args[i]); m != nil {
			return m
		}
	}
	return nil
}

// ========================

// Class is a set of variables linked through the substitution. Anchor is the
// constructor a member was bound to, if any. A cyclic anchor resolves only as
// far as the first repeated variable.
type Class struct {
	Members []VarID
	Anchor  Type
}

// EquivalenceClasses groups every variable mentioned by the substitution. Classes
// are ordered by their smallest member.
func (u *Unifier) EquivalenceClasses() []Class {
	sets := algos.NewDisjointSets[VarID]()
	anchors := map[VarID]Type{}

	for _, id := range u.Subst.Keys() {
		sets.Add(id)
		switch ty := u.Subst[id].(type) {
		case *TypeVar:
			sets.Union(id, ty.ID)
		case *TypeCon:
			anchors[id] = ty
		default:
			spew.Dump(ty)
			panic("unreachable")
		}
	}

	var classes []Class
	for _, group := range sets.Groups() {
		slices.Sort(group)
		class := Class{Members: group}
		for _, id := range group {
			if anchor, ok := anchors[id]; ok {
				class.Anchor = u.Resolve(anchor)
				break
			}
		}
		classes = append(classes, class)
	}
	slices.SortFunc(classes, func(a, b Class) int {
		return int(a.Members[0]) - int(b.Members[0])
	})

	Assert(len(classes) <= len(u.Subst), "more classes than bindings")
	return classes
}
