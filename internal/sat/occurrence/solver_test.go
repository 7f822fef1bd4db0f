package occurrence

import (
	"testing"

	sat "github.com/mpalmier/cnfsat/internal/sat"
)

func pos(n int) int32 { return int32(n-1) << 1 }
func neg(n int) int32 { return int32(n-1)<<1 | 1 }

func TestSolve_emptyFormula(t *testing.T) {
	s := NewSolver()
	if got := s.Solve(); got != sat.StatusSat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusSat)
	}
}

func TestSolve_singleUnit(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	if !s.AddClause([]int32{pos(1)}) {
		t.Fatalf("AddClause([1]) = false, want true")
	}
	if got := s.Solve(); got != sat.StatusSat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusSat)
	}
	if model := s.Model(); !model[0] {
		t.Errorf("Model() = %v, want [true]", model)
	}
}

func TestAddClause_rootContradiction(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	s.AddClause([]int32{pos(1)})
	if ok := s.AddClause([]int32{neg(1)}); ok {
		t.Fatalf("AddClause([-1]) = true, want false")
	}
	if got := s.Solve(); got != sat.StatusUnsat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusUnsat)
	}
}

func TestSolve_twoVariableContradiction(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	s.AddVariable()
	for _, c := range [][]int32{
		{pos(1), pos(2)},
		{neg(1), pos(2)},
		{pos(1), neg(2)},
		{neg(1), neg(2)},
	} {
		s.AddClause(c)
	}
	if got := s.Solve(); got != sat.StatusUnsat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusUnsat)
	}
}

func TestSolve_uniqueModel(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	s.AddVariable()
	for _, c := range [][]int32{
		{pos(1), pos(2)},
		{neg(1), pos(2)},
		{pos(1), neg(2)},
	} {
		s.AddClause(c)
	}
	if got := s.Solve(); got != sat.StatusSat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusSat)
	}
	model := s.Model()
	if !model[0] || !model[1] {
		t.Errorf("Model() = %v, want [true true]", model)
	}
}

func TestSolve_pigeonhole3into2(t *testing.T) {
	s := NewSolver()
	for i := 0; i < 6; i++ {
		s.AddVariable()
	}
	for _, c := range [][]int32{
		{pos(1), pos(2)},
		{pos(3), pos(4)},
		{pos(5), pos(6)},
		{neg(1), neg(3)},
		{neg(1), neg(5)},
		{neg(3), neg(5)},
		{neg(2), neg(4)},
		{neg(2), neg(6)},
		{neg(4), neg(6)},
	} {
		s.AddClause(c)
	}
	if got := s.Solve(); got != sat.StatusUnsat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusUnsat)
	}
}

func TestAddClause_tautologyIsNoOp(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	before := len(s.clauses)
	if ok := s.AddClause([]int32{pos(1), neg(1)}); !ok {
		t.Fatalf("AddClause with tautology = false, want true")
	}
	if got := len(s.clauses); got != before {
		t.Errorf("len(clauses) after tautology = %d, want %d", got, before)
	}
}

func TestSolve_isSingleShot(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	s.AddClause([]int32{pos(1)})

	if first, second := s.Solve(), s.Solve(); first != second {
		t.Fatalf("Solve() not idempotent: %s then %s", first, second)
	}
}

// TestSolve_recoversFromConflictViaBacktrack exercises a decision that
// forces two clauses down to contradictory units ((x v y) and (x v -y)
// both shrink once -x is decided), producing a conflict at level 1 that
// must be undone exactly before the flipped decision (+x) is tried. If the
// occurrence-count or satisfied-clause bookkeeping were left corrupted by
// the conflict, this would come back UNSAT or panic instead of finding the
// x=true model.
func TestSolve_recoversFromConflictViaBacktrack(t *testing.T) {
	s := NewSolver()
	s.AddVariable()
	s.AddVariable()
	s.AddClause([]int32{pos(1), pos(2)})
	s.AddClause([]int32{pos(1), neg(2)})

	if got := s.Solve(); got != sat.StatusSat {
		t.Fatalf("Solve() = %s, want %s", got, sat.StatusSat)
	}
	if model := s.Model(); !model[0] {
		t.Errorf("Model() = %v, want variable 0 (x) true", model)
	}
}
