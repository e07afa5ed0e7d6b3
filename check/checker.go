package check

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/garciat/negcoh/tree"
)

type Checker struct {
	Decls *DeclContext

	// Workers bounds how many pairs are checked at once; 1 or less checks them in order.
	Workers int
}

func NewChecker(program *tree.Program) (*Checker, error) {
	decls, err := NewDeclContext(program)
	if err != nil {
		return nil, err
	}
	return &Checker{Decls: decls, Workers: 1}, nil
}

// Check returns one result per unordered pair of impls, ordered by (i, j) with
// i < j in declaration order. Any failure discards all results.
func Check(ctx context.Context, program *tree.Program) ([]Result, error) {
	c, err := NewChecker(program)
	if err != nil {
		return nil, err
	}
	return c.Check(ctx)
}

type implPair struct {
	i, j int
}

func (c *Checker) pairs() []implPair {
	n := len(c.Decls.Impls)
	pairs := make([]implPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, implPair{i, j})
		}
	}
	return pairs
}

// Validate elaborates every impl on its own, so malformed impls are reported even
// when they take part in no pair.
func (c *Checker) Validate() error {
	for _, impl := range c.Decls.Impls {
		if _, err := NewElaborator(c.Decls).ElaborateImpl(impl); err != nil {
			return errors.Wrapf(err, "impl %q (%v)", impl, impl.Pos)
		}
	}
	return nil
}

func (c *Checker) Check(ctx context.Context) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pairs := c.pairs()
	results := make([]Result, len(pairs))

	checkOne := func(k int) error {
		left, right := c.Decls.Impls[pairs[k].i], c.Decls.Impls[pairs[k].j]
		result, err := c.CheckPair(left, right)
		if err != nil {
			return errors.Wrapf(err, "impls %q (%v) and %q (%v)", left, left.Pos, right, right.Pos)
		}
		results[k] = result
		return nil
	}

	if c.Workers <= 1 {
		for k := range pairs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := checkOne(k); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	// A failing pair does not cancel the others, so the reported error is always
	// the one of the earliest failing pair.
	var g errgroup.Group
	g.SetLimit(c.Workers)
	errs := make([]error, len(pairs))
	for k := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errs[k] = checkOne(k)
			return errs[k]
		})
	}
	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	return results, nil
}
