package sat

import (
	"sort"
	"time"
)

// Solver is a watched-literal, chronologically-backtracking SAT search
// engine. It owns every piece of state described in the data model: the
// clause arena, watch lists, trail and decision stack, assignment array,
// and the variable-order pool. There is no clause learning, no restarts,
// and no activity-based heuristics; backtracking is purely chronological.
//
// A Solver is not safe for concurrent use; two independent instances share
// no state and may be driven in parallel by different goroutines.
type Solver struct {
	arena   ClauseArena
	watches watchLists
	order   *varOrder

	assigns []LBool // indexed by Literal; assigns[l] and assigns[l.Opposite()] are always complementary once l's variable is assigned.

	trail    []Literal
	trailLim []int
	qhead    int

	clauses []CRef // CRefs of every clause of size >= 2 ever added, for readback/verification.
	nVars   int

	// unsat latches a root-level contradiction discovered during ingestion
	// (an empty clause, or a root-level propagation conflict). Once set,
	// Solve always reports StatusUnsat.
	unsat bool

	solved bool
	result Status

	stats Stats

	tmpLits []Literal // scratch buffer reused by AddClause to avoid an allocation per call.
}

// NewSolver returns a solver with zero variables and zero clauses.
func NewSolver() *Solver {
	return &Solver{
		order: newVarOrder(),
		stats: newStats(),
	}
}

// NumVariables returns the number of variables registered so far.
func (s *Solver) NumVariables() int {
	return s.nVars
}

// NumClauses returns the number of clauses of size >= 2 stored in the
// arena. It does not count unit clauses, which are applied directly as
// root-level assignments and never allocated.
func (s *Solver) NumClauses() int {
	return len(s.clauses)
}

// Stats returns a copy of the solver's search statistics.
func (s *Solver) Stats() Stats {
	return s.stats
}

// LitValue returns the current value of literal l under the assignment.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// VarValue returns the current value of variable v's positive literal.
func (s *Solver) VarValue(v Var) LBool {
	return s.assigns[PositiveLiteral(v)]
}

// AddVariable appends one fresh, initially-unassigned variable and returns
// its index.
func (s *Solver) AddVariable() Var {
	v := Var(s.nVars)
	s.nVars++

	s.assigns = append(s.assigns, Unknown, Unknown)
	s.watches.grow()
	s.order.addVar(v)
	s.stats.Variables++

	return v
}

// growToVar ensures that variable v exists, creating every variable up to
// and including it if necessary.
func (s *Solver) growToVar(v Var) {
	for Var(s.nVars) <= v {
		s.AddVariable()
	}
}

// AddClause adds a clause (disjunction of lits) to the formula. It reports
// true (OK) unless the clause is structurally empty after simplification or
// a root-level unit propagation it triggers finds a contradiction — in
// either case the formula is now known to be unsatisfiable and the caller
// should treat it as such without calling Solve.
//
// AddClause may only be called at decision level 0 (i.e. never from inside
// Solve); calling it otherwise is a programming error.
func (s *Solver) AddClause(lits []Literal) bool {
	if s.decisionLevel() != 0 {
		panic("sat: AddClause called below the root decision level")
	}

	maxVar := Var(-1)
	for _, l := range lits {
		if v := l.Var(); v > maxVar {
			maxVar = v
		}
	}
	if maxVar >= 0 {
		s.growToVar(maxVar)
	}

	buf := append(s.tmpLits[:0], lits...)
	sort.Slice(buf, func(i, j int) bool { return buf[i] > buf[j] })

	k := 0
	for _, l := range buf {
		if k > 0 && l == buf[k-1] {
			continue // duplicate literal
		}
		if k > 0 && l == buf[k-1].Opposite() {
			return true // tautology: clause is trivially satisfied
		}
		switch s.LitValue(l) {
		case True:
			return true // already satisfied at the root level
		case False:
			continue // falsified at the root level, drop it
		}
		buf[k] = l
		k++
	}
	buf = buf[:k]
	s.tmpLits = buf[:0]

	switch len(buf) {
	case 0:
		s.unsat = true
		return false
	case 1:
		s.enqueue(buf[0])
		s.stats.Clauses++
		if conflict := s.Propagate(); conflict != CRefNone {
			s.unsat = true
			return false
		}
		return true
	default:
		ref := s.arena.Append(buf)
		s.clauses = append(s.clauses, ref)
		s.stats.Clauses++

		binary := len(buf) == 2
		s.watches.attach(buf[0].Opposite(), Watcher{Ref: ref, Blocker: buf[1]}, binary)
		s.watches.attach(buf[1].Opposite(), Watcher{Ref: ref, Blocker: buf[0]}, binary)
		return true
	}
}

// decide returns the next decision literal (smallest-indexed unassigned
// variable, false polarity first), or ok=false if every variable is
// assigned. Every variable in the pool is unassigned by construction (I6),
// so the first pop is always a valid decision.
func (s *Solver) decide() (lit Literal, ok bool) {
	v, ok := s.order.popNext()
	if !ok {
		return 0, false
	}
	return NegativeLiteral(v), true
}

// Solve runs the search driver to completion and returns the terminal
// status. Solve is single-shot: a solver that has already produced a
// terminal result returns that cached result again on any subsequent call,
// rather than re-entering the search loop. Adding more clauses after a
// result has been produced does not un-stick this cache; build the whole
// formula with AddClause calls before the first Solve.
func (s *Solver) Solve() Status {
	if s.solved {
		return s.result
	}

	start := time.Now()
	s.result = s.search()
	s.stats.Elapsed = time.Since(start)
	s.solved = true

	return s.result
}

// search is the top-level loop: propagate, then either decide or
// backtrack, until a terminal status is reached.
func (s *Solver) search() Status {
	if s.unsat {
		return StatusUnsat
	}

	for {
		if conflict := s.Propagate(); conflict != CRefNone {
			s.stats.recordConflict()

			if s.decisionLevel() == 0 {
				s.unsat = true
				return StatusUnsat
			}

			last := s.lastDecision()
			s.backtrackOneLevel()
			s.enqueue(last.Opposite())
			continue
		}

		lit, ok := s.decide()
		if !ok {
			return StatusSat
		}
		s.stats.recordDecision()
		s.newDecision(lit)
	}
}

// Model returns the satisfying assignment found by the most recent Solve
// call. It panics if Solve has not been called or did not return
// StatusSat.
func (s *Solver) Model() []bool {
	if !s.solved || s.result != StatusSat {
		panic("sat: Model called without a satisfiable Solve result")
	}
	model := make([]bool, s.nVars)
	for v := 0; v < s.nVars; v++ {
		model[v] = s.VarValue(Var(v)) == True
	}
	return model
}
