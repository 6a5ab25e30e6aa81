package dynarr_test

import (
	"errors"

	"github.com/katalvlaran/dynarr"
)

// errCopyBudget is injected by budgetCopyFuncs when its budget runs out.
var errCopyBudget = errors.New("copy budget exhausted")

// errNewBudget is injected by budgetNewFuncs when its budget runs out.
var errNewBudget = errors.New("construction budget exhausted")

// opCounts tallies element lifetime traffic during a test.
type opCounts struct {
	news, copies, moves, destroys int
}

func (c *opCounts) reset() { *c = opCounts{} }

// countingFuncs returns a Funcs table over int that records every hook
// invocation in c. copyable toggles the Copy hook (its absence marks the
// type not copyable); moveSafe declares relocation failure-free.
func countingFuncs(c *opCounts, moveSafe, copyable bool) dynarr.Funcs[int] {
	fn := dynarr.Funcs[int]{
		New:      func() (int, error) { c.news++; return 0, nil },
		Move:     func(src *int) int { c.moves++; return *src },
		MoveSafe: moveSafe,
		Destroy:  func(p *int) { c.destroys++ },
	}
	if copyable {
		fn.Copy = func(src *int) (int, error) { c.copies++; return *src, nil }
	}
	return fn
}

// budgetCopyFuncs returns a copy-preferring table (relocation not declared
// safe) whose Copy succeeds budget times and then fails with errCopyBudget.
func budgetCopyFuncs(c *opCounts, budget int) dynarr.Funcs[int] {
	remaining := budget
	fn := countingFuncs(c, false, true)
	fn.Copy = func(src *int) (int, error) {
		if remaining == 0 {
			return 0, errCopyBudget
		}
		remaining--
		c.copies++
		return *src, nil
	}
	return fn
}

// budgetNewFuncs returns a trivial-style table whose New succeeds budget
// times and then fails with errNewBudget.
func budgetNewFuncs(c *opCounts, budget int) dynarr.Funcs[int] {
	remaining := budget
	fn := countingFuncs(c, true, true)
	fn.New = func() (int, error) {
		if remaining == 0 {
			return 0, errNewBudget
		}
		remaining--
		c.news++
		return 0, nil
	}
	return fn
}

// values snapshots the live prefix through the All traversal.
func values(a *dynarr.Array[int]) []int {
	out := make([]int, 0, a.Len())
	for _, p := range a.All() {
		out = append(out, *p)
	}
	return out
}

// appendAll appends vs in order, failing the test on any error.
func appendAll(a *dynarr.Array[int], vs ...int) error {
	for _, v := range vs {
		if err := a.Append(v); err != nil {
			return err
		}
	}
	return nil
}
