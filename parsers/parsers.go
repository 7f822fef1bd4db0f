// Package parsers loads DIMACS CNF instances and reference model files into
// a Solver-shaped destination. It is the repository's only dependency on an
// external CNF grammar, github.com/rhartert/dimacs, rather than a
// hand-rolled line scanner.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/mpalmier/cnfsat/internal/sat"
)

// SATSolver is the minimal surface LoadDIMACS needs from a destination
// solver, satisfied by *sat.Solver.
type SATSolver interface {
	AddVariable() sat.Var
	AddClause(lits []sat.Literal) bool
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename and loads its formula
// into solver. It returns an error wrapping any I/O or grammar failure; a
// structurally valid instance that turns out to be UNSAT during loading is
// not an error here (AddClause already reports that through its own bool
// return, observable via the solver afterward).
func LoadDIMACS(filename string, gzipped bool, solver SATSolver) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder adapts SATSolver to dimacs.Builder.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instances of type %q are not supported", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(sat.Var(-l - 1))
		} else {
			clause[i] = sat.PositiveLiteral(sat.Var(l - 1))
		}
	}
	b.solver.AddClause(clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models, if any, contained in the given
// file. Each model is one clause-shaped line in the file's DIMACS-like
// grammar, with literal sign giving the variable's truth value and
// magnitude giving its (1-based) index.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
