// Package occurrence implements the naive, occurrence-list DPLL baseline
// noted as an alternative in the design notes: per-literal occurrence
// lists, explicit clause-size bookkeeping, and a decision stack with
// chronological backtracking. It is quadratic in the worst case (a literal
// assignment touches every clause mentioning it, and nothing prunes that
// work the way watched literals do) and is not used by the canonical
// Solver, the command-line main package, or the parsers package; it exists purely as a
// teaching baseline against which the watched-literal design's payoff can
// be measured.
//
// Literals use the same encoding as the canonical package: lit = 2*v+p,
// polarity 0 positive, 1 negative. Unlike the canonical package (which
// stores one LBool per literal, indexed directly), this baseline stores one
// value per *variable*: assigns[v] holds the polarity bit that would make
// v's literal false, or -1 if v is unassigned — the variable-centric
// convention described directly in the encoding section, shown here since
// the canonical package demonstrates the equivalent literal-centric one.
package occurrence

import sat "github.com/mpalmier/cnfsat/internal/sat"

const unassigned int8 = -1

// clause is a disjunction whose literals are partitioned in place: lits[:size]
// are the literals not yet known false ("live"), lits[size:] are literals
// driven false during the search, parked there so they can be restored by
// incrementing size back on backtrack without re-scanning anything.
type clause struct {
	lits []int32
	size int
}

// Solver is the occurrence-list baseline solver.
type Solver struct {
	nVars int

	clauses  []clause
	occ      [][]int // occ[lit] -> indices of clauses mentioning lit
	satLevel []int   // per-clause trail position of the literal that first satisfied it, or -1

	assigns []int8 // per-variable: unassigned, or the polarity that is false

	trail    []int32
	trailLim []int
	qhead    int

	unsat  bool
	solved bool
	result sat.Status
}

// NewSolver returns a solver with zero variables and zero clauses.
func NewSolver() *Solver {
	return &Solver{}
}

// NumVariables returns the number of variables registered so far.
func (s *Solver) NumVariables() int {
	return s.nVars
}

// AddVariable appends one fresh, unassigned variable and returns its index.
func (s *Solver) AddVariable() int {
	v := s.nVars
	s.nVars++
	s.assigns = append(s.assigns, unassigned)
	s.occ = append(s.occ, nil, nil)
	return v
}

func (s *Solver) growTo(v int) {
	for s.nVars <= v {
		s.AddVariable()
	}
}

// litValue reports the current truth value of literal lit.
func (s *Solver) litValue(lit int32) sat.LBool {
	a := s.assigns[lit>>1]
	if a == unassigned {
		return sat.Unknown
	}
	if a == int8(lit&1) {
		return sat.False
	}
	return sat.True
}

// enqueue assigns lit's variable so that lit becomes true and appends it to
// the trail.
func (s *Solver) enqueue(lit int32) {
	v := lit >> 1
	if s.assigns[v] != unassigned {
		panic("occurrence: enqueue of an already-assigned literal")
	}
	s.assigns[v] = int8((lit ^ 1) & 1)
	s.trail = append(s.trail, lit)
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// AddClause adds a clause given as spec-encoded literal ints (lit =
// 2*v+polarity). It returns false (ERR) if the clause is empty after
// simplification or a root-level unit propagation it triggers conflicts.
func (s *Solver) AddClause(lits []int32) bool {
	if s.decisionLevel() != 0 {
		panic("occurrence: AddClause called below the root decision level")
	}

	maxVar := -1
	for _, l := range lits {
		if v := int(l >> 1); v > maxVar {
			maxVar = v
		}
	}
	if maxVar >= 0 {
		s.growTo(maxVar)
	}

	seen := make(map[int32]bool, len(lits))
	out := make([]int32, 0, len(lits))
	for _, l := range lits {
		if seen[l^1] {
			return true // tautology
		}
		if seen[l] {
			continue // duplicate literal
		}
		seen[l] = true

		switch s.litValue(l) {
		case sat.True:
			return true // already satisfied at the root level
		case sat.False:
			continue // falsified at the root level, drop it
		}
		out = append(out, l)
	}

	switch len(out) {
	case 0:
		s.unsat = true
		return false
	case 1:
		s.enqueue(out[0])
		if conflict, ok := s.propagate(); !ok {
			_ = conflict
			s.unsat = true
			return false
		}
		return true
	default:
		ci := len(s.clauses)
		s.clauses = append(s.clauses, clause{lits: out, size: len(out)})
		s.satLevel = append(s.satLevel, -1)
		for _, l := range out {
			s.occ[l] = append(s.occ[l], ci)
		}
		return true
	}
}

// Solve runs the DPLL loop to completion. Like the canonical Solver, it is
// single-shot: a second call returns the cached terminal result.
func (s *Solver) Solve() sat.Status {
	if s.solved {
		return s.result
	}
	s.result = s.search()
	s.solved = true
	return s.result
}

// Model returns the satisfying assignment found by the most recent Solve
// call. It panics if Solve has not been called or did not return
// sat.StatusSat.
func (s *Solver) Model() []bool {
	if !s.solved || s.result != sat.StatusSat {
		panic("occurrence: Model called without a satisfiable Solve result")
	}
	model := make([]bool, s.nVars)
	for v := 0; v < s.nVars; v++ {
		model[v] = s.assigns[v] == 1 // assigns[v]==1 means polarity 1 (negative) is false, i.e. the variable is true
	}
	return model
}
