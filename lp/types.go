package lp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInfeasible indicates that the constraint system has no solution.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded indicates that the objective is unbounded.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrBadProblem indicates inconsistent shapes or bounds in a Problem.
	ErrBadProblem = errors.New("lp: malformed problem")

	// ErrSolver wraps any other failure reported by the underlying solver.
	ErrSolver = errors.New("lp: solver failure")
)

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize cᵀx.
	Minimize Sense = iota
	// Maximize cᵀx.
	Maximize
)

// Problem is a linear program in general form. G/H and A/B may be nil when
// there are no constraints of that kind. Nil Lower means all zeros; nil Upper
// means all +Inf.
type Problem struct {
	Sense Sense
	C     []float64

	G *mat.Dense
	H []float64

	A *mat.Dense
	B []float64

	Lower []float64
	Upper []float64
}

// Solution is an optimal point and its objective value in the caller's sense.
type Solution struct {
	X         []float64
	Objective float64
}

// Solver solves a Problem or reports why it cannot.
type Solver interface {
	Solve(p Problem) (Solution, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(p Problem) (Solution, error)

// Solve implements Solver.
func (f SolverFunc) Solve(p Problem) (Solution, error) { return f(p) }
