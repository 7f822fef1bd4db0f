package occurrence

import sat "github.com/mpalmier/cnfsat/internal/sat"

// indexOfLive returns the position of lit within c.lits[:c.size], or -1 if
// it is not (or no longer) there.
func indexOfLive(c *clause, lit int32) int {
	for i := 0; i < c.size; i++ {
		if c.lits[i] == lit {
			return i
		}
	}
	return -1
}

// propagate drains the trail's propagation queue. For each newly-true
// literal it marks every clause mentioning it as satisfied, and shrinks
// every clause mentioning its negation by swapping the falsified literal
// past the clause's live/dead boundary.
//
// Open question, resolved here: the naive version of this algorithm breaks
// out of the shrink loop as soon as one clause's live count reaches zero,
// which leaves the clauses *later* in the same occurrence list unshrunk —
// and backtrack's undo, which blindly re-grows every clause in
// occ[lit.Opposite()] for each unassigned trail literal, would then restore
// clauses that were never actually shrunk, corrupting their live count.
// Re-deriving this from scratch rather than patching the original
// increment/decrement dance: finish shrinking the *entire* occurrence list
// for the current literal before reporting a conflict, so backtrack's
// undo is always exactly symmetric with what propagate did, regardless of
// where in the list the conflict was found. Each clause records the trail
// position of the literal that first satisfied it, so backtrack can tell,
// literal by literal, which clauses were still unsatisfied (and therefore
// shrunk) when that literal was propagated.
func (s *Solver) propagate() (conflict int, ok bool) {
	conflict = -1

	for s.qhead < len(s.trail) {
		lit := s.trail[s.qhead]
		s.qhead++

		at := s.qhead - 1
		for _, ci := range s.occ[lit] {
			if s.satLevel[ci] == -1 {
				s.satLevel[ci] = at
			}
		}

		notLit := lit ^ 1
		for _, ci := range s.occ[notLit] {
			if s.satLevel[ci] != -1 {
				continue
			}
			c := &s.clauses[ci]
			pos := indexOfLive(c, notLit)
			if pos < 0 {
				continue
			}
			c.size--
			c.lits[pos], c.lits[c.size] = c.lits[c.size], c.lits[pos]
			if c.size == 0 && conflict == -1 {
				conflict = ci
			}
		}
		if conflict != -1 {
			return conflict, false
		}

		for _, ci := range s.occ[notLit] {
			if s.satLevel[ci] == -1 && s.clauses[ci].size == 1 {
				unit := s.clauses[ci].lits[0]
				if s.litValue(unit) == sat.Unknown {
					s.enqueue(unit)
				}
			}
		}
	}
	return -1, true
}

// newDecision opens a new decision level and enqueues lit as its decision
// literal.
func (s *Solver) newDecision(lit int32) {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.enqueue(lit)
}

// lastDecision returns the decision literal that opened the current
// (deepest) decision level.
func (s *Solver) lastDecision() int32 {
	return s.trail[s.trailLim[len(s.trailLim)-1]]
}

// backtrackOneLevel undoes every assignment made since the deepest decision
// level was opened: variables are unassigned, clauses whose live count was
// shrunk on the way down are grown back, and clauses marked satisfied
// during this level are unmarked.
func (s *Solver) backtrackOneLevel() {
	k := len(s.trailLim) - 1
	cut := s.trailLim[k]

	for i := len(s.trail) - 1; i >= cut; i-- {
		lit := s.trail[i]
		v := lit >> 1
		s.assigns[v] = unassigned

		// Literals at or past qhead were enqueued but never propagated, so
		// they shrank nothing.
		if i < s.qhead {
			notLit := lit ^ 1
			for _, ci := range s.occ[notLit] {
				if s.satLevel[ci] == -1 {
					s.clauses[ci].size++
				}
			}
		}
		for _, ci := range s.occ[lit] {
			if s.satLevel[ci] == i {
				s.satLevel[ci] = -1
			}
		}
	}

	s.trail = s.trail[:cut]
	s.trailLim = s.trailLim[:k]
	s.qhead = cut
}

// decide returns the next decision literal: the smallest-indexed
// unassigned variable, false polarity first, matching the canonical
// package's heuristic.
func (s *Solver) decide() (lit int32, ok bool) {
	for v := 0; v < s.nVars; v++ {
		if s.assigns[v] == unassigned {
			return int32(v)<<1 | 1, true
		}
	}
	return 0, false
}

// search is the top-level DPLL loop: propagate, then either decide or flip
// the last decision and backtrack, until a terminal status is reached. Its
// shape matches the canonical package's search driver; only the propagator
// underneath differs.
func (s *Solver) search() sat.Status {
	if s.unsat {
		return sat.StatusUnsat
	}

	for {
		if _, ok := s.propagate(); !ok {
			if s.decisionLevel() == 0 {
				return sat.StatusUnsat
			}
			last := s.lastDecision()
			s.backtrackOneLevel()
			s.enqueue(last ^ 1)
			continue
		}

		lit, ok := s.decide()
		if !ok {
			return sat.StatusSat
		}
		s.newDecision(lit)
	}
}
