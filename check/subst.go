package check

import (
	"fmt"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Subst maps variable ids to what they were unified with. Values may be other
// variables, so lookups follow chains.
type Subst map[VarID]Type

func (s Subst) String() string {
	parts := make([]string, 0, len(s))
	for _, id := range s.Keys() {
		parts = append(parts, fmt.Sprintf("?%d -> %v", id, s[id].Key()))
	}
	return fmt.Sprintf("{{ %v }}", strings.Join(parts, " ; "))
}

func (s Subst) Keys() []VarID {
	keys := make([]VarID, 0, len(s))
	for id := range s {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

// Walk follows variable-to-variable bindings until it reaches a constructor or
// an unbound variable.
func (s Subst) Walk(ty Type) Type {
	for {
		v, ok := ty.(*TypeVar)
		if !ok {
			return ty
		}
		bound, ok := s[v.ID]
		if !ok {
			return ty
		}
		ty = bound
	}
}

// Resolve follows bindings to a fixed point, rebuilding constructor arguments.
// A variable met again while resolving its own binding is left as is.
func (s Subst) Resolve(ty Type) Type {
	return s.resolve(ty, map[VarID]bool{})
}

func (s Subst) resolve(ty Type, visiting map[VarID]bool) Type {
	switch ty := ty.(type) {
	case *TypeCon:
		if len(ty.Args) == 0 {
			return ty
		}
		args := make([]Type, len(ty.Args))
		for i, arg := range ty.Args {
			args[i] = s.resolve(arg, visiting)
		}
		return &TypeCon{Name: ty.Name, Args: args}
	case *TypeVar:
		bound, ok := s[ty.ID]
		if !ok || visiting[ty.ID] {
			return ty
		}
		visiting[ty.ID] = true
		defer delete(visiting, ty.ID)
		return s.resolve(bound, visiting)
	default:
		spew.Dump(ty)
		panic("unreachable")
	}
}
