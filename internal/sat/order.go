package sat

import (
	"github.com/rhartert/yagh"
)

// varOrder is the pool of currently-unassigned variables used by the
// decision heuristic (§4.5). Policy in this core is deliberately minimal
// and deterministic: always hand out the smallest-indexed unassigned
// variable. No activity bumping, decay, or phase saving — those are
// explicitly out of scope as "activity-based heuristics". Invariant I6
// requires the pool to contain exactly the unassigned variables at all
// times, so unlike the teacher's lazy-skip NextDecision (which leaves
// propagated assignments sitting in the heap to be discovered and skipped
// later), every assignment here — decision or propagated — is removed from
// the pool immediately, and every unassignment on backtrack reinserts it.
//
// The teacher's VarOrder keyed github.com/rhartert/yagh's generic indexed
// heap by a decaying float64 activity score, bumped on every conflict
// analysis step. That scoring discipline has no place in a skeleton
// without conflict analysis, but the heap it sits on is exactly the "set
// over which the heuristic picks the smallest element" this component
// needs: here the heap is keyed by the variable index itself, so popping
// always surfaces the smallest remaining index and Put/Remove keep the
// pool's membership in lockstep with the assignment array, as I6 requires.
type varOrder struct {
	pool *yagh.IntMap[int]
}

func newVarOrder() *varOrder {
	return &varOrder{pool: yagh.New[int](0)}
}

// addVar registers one freshly-created variable as a candidate.
func (o *varOrder) addVar(v Var) {
	o.pool.GrowBy(1)
	o.pool.Put(int(v), int(v))
}

// reinsert puts variable v back into the pool of candidates. Must be
// called whenever v becomes unassigned (e.g. on backtrack), restoring
// invariant I6.
func (o *varOrder) reinsert(v Var) {
	o.pool.Put(int(v), int(v))
}

// remove takes v out of the pool of candidates. Must be called whenever v
// becomes assigned, whether by a decision or by propagation, restoring
// invariant I6.
func (o *varOrder) remove(v Var) {
	if o.pool.Contains(int(v)) {
		o.pool.Remove(int(v))
	}
}

// popNext removes and returns the smallest-indexed variable in the pool.
// ok is false if every variable is currently assigned.
func (o *varOrder) popNext() (Var, bool) {
	item, ok := o.pool.Pop()
	if !ok {
		return 0, false
	}
	return Var(item.Elem), true
}
