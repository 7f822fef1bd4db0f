package sat

// Watcher is a (clause, blocker) pair recorded on a literal's watch list.
// Blocker is a literal from the same clause, distinct from the one this
// watcher is attached to; when it is already True the clause does not need
// to be examined at all during propagation.
type Watcher struct {
	Ref     CRef
	Blocker Literal
}

// watchLists maps each literal to the ordered sequence of watchers that
// must be re-examined when that literal becomes true. Binary-clause
// watchers (clauses of exactly two literals) are kept at the front of each
// list, and nBin records how many leading entries are binary, so the
// propagator can take the cheap binary-only fast path described in §4.6
// without touching the clause arena at all.
type watchLists struct {
	lists [][]Watcher
	nBin  []int
}

// grow appends watch lists for one freshly-created literal pair (i.e. one
// new variable): list 2v for the positive literal, list 2v+1 for the
// negative one.
func (w *watchLists) grow() {
	w.lists = append(w.lists, nil, nil)
	w.nBin = append(w.nBin, 0, 0)
}

// attach records watcher wr on literal l's list. Binary clauses are filed at
// the front so the propagator's fast path can find them without scanning.
func (w *watchLists) attach(l Literal, wr Watcher, binary bool) {
	if binary {
		w.lists[l] = append(w.lists[l], Watcher{})
		copy(w.lists[l][1:], w.lists[l][:len(w.lists[l])-1])
		w.lists[l][0] = wr
		w.nBin[l]++
		return
	}
	w.lists[l] = append(w.lists[l], wr)
}
