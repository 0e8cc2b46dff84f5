package lp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultTolerance is the simplex pivot tolerance used when Simplex.Tol is 0.
const DefaultTolerance = 1e-10

// Simplex solves problems with gonum's simplex method. The zero value is ready
// to use.
type Simplex struct {
	// Tol is the pivot tolerance; 0 selects DefaultTolerance.
	Tol float64
}

// stdForm is Problem rewritten as: minimize cᵀy, Ay = b, y ≥ 0.
type stdForm struct {
	c    []float64
	a    [][]float64
	b    []float64
	cols []int // standard column -> original variable, -1 for slacks
}

// Solve implements Solver.
//
// Complexity: dominated by the simplex iterations, each a dense solve over the
// current basis (rows = |G| + |A| + #finite upper bounds).
func (s Simplex) Solve(p Problem) (sol Solution, err error) {
	n := len(p.C)
	lower, upper, err := validate(p)
	if err != nil {
		return Solution{}, err
	}

	sf, err := standardize(p, lower, upper)
	if err != nil {
		return Solution{}, err
	}

	y := make([]float64, n)
	if len(sf.a) > 0 {
		tol := s.Tol
		if tol == 0 {
			tol = DefaultTolerance
		}
		if len(sf.a) > len(sf.c) {
			return Solution{}, fmt.Errorf("%w: %d rows exceed %d columns", ErrSolver, len(sf.a), len(sf.c))
		}
		dense := mat.NewDense(len(sf.a), len(sf.c), nil)
		for i, row := range sf.a {
			dense.SetRow(i, row)
		}

		defer func() {
			if r := recover(); r != nil {
				sol, err = Solution{}, fmt.Errorf("%w: %v", ErrSolver, r)
			}
		}()
		_, opt, serr := golp.Simplex(sf.c, dense, sf.b, tol, nil)
		switch {
		case errors.Is(serr, golp.ErrInfeasible):
			return Solution{}, ErrInfeasible
		case errors.Is(serr, golp.ErrUnbounded):
			return Solution{}, ErrUnbounded
		case serr != nil:
			return Solution{}, fmt.Errorf("%w: %v", ErrSolver, serr)
		}
		for j, v := range sf.cols {
			if v >= 0 {
				y[v] = opt[j]
			}
		}
	}

	x := make([]float64, n)
	for i := range x {
		v := y[i] + lower[i]
		// Snap simplex round-off back inside the box.
		if v < lower[i] {
			v = lower[i]
		}
		if v > upper[i] {
			v = upper[i]
		}
		x[i] = v
	}
	return Solution{X: x, Objective: floats.Dot(p.C, x)}, nil
}

func validate(p Problem) (lower, upper []float64, err error) {
	n := len(p.C)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: empty objective", ErrBadProblem)
	}
	if err = checkSystem(p.G, p.H, n, "G/H"); err != nil {
		return nil, nil, err
	}
	if err = checkSystem(p.A, p.B, n, "A/B"); err != nil {
		return nil, nil, err
	}

	lower = p.Lower
	if lower == nil {
		lower = make([]float64, n)
	}
	upper = p.Upper
	if upper == nil {
		upper = make([]float64, n)
		for i := range upper {
			upper[i] = math.Inf(1)
		}
	}
	if len(lower) != n || len(upper) != n {
		return nil, nil, fmt.Errorf("%w: bounds length", ErrBadProblem)
	}
	for i := range lower {
		if math.IsInf(lower[i], 0) || math.IsNaN(lower[i]) || math.IsNaN(upper[i]) {
			return nil, nil, fmt.Errorf("%w: bound %d not finite", ErrBadProblem, i)
		}
		if upper[i] < lower[i] {
			return nil, nil, ErrInfeasible
		}
	}
	return lower, upper, nil
}

func checkSystem(m *mat.Dense, rhs []float64, n int, name string) error {
	if m == nil {
		if len(rhs) != 0 {
			return fmt.Errorf("%w: %s has rhs without matrix", ErrBadProblem, name)
		}
		return nil
	}
	r, c := m.Dims()
	if c != n || r != len(rhs) {
		return fmt.Errorf("%w: %s is %dx%d with %d rhs, want %d columns", ErrBadProblem, name, r, c, len(rhs), n)
	}
	return nil
}

// standardize shifts by lower, adds slacks, drops zero rows and fixes
// variables that appear in no row at zero (or reports unboundedness).
func standardize(p Problem, lower, upper []float64) (stdForm, error) {
	n := len(p.C)
	sign := 1.0
	if p.Sense == Maximize {
		sign = -1
	}

	type row struct {
		coef  []float64
		rhs   float64
		slack bool
	}
	var rows []row
	if p.G != nil {
		r, _ := p.G.Dims()
		for i := 0; i < r; i++ {
			coef := mat.Row(nil, i, p.G)
			rows = append(rows, row{coef: coef, rhs: p.H[i] - floats.Dot(coef, lower), slack: true})
		}
	}
	if p.A != nil {
		r, _ := p.A.Dims()
		for i := 0; i < r; i++ {
			coef := mat.Row(nil, i, p.A)
			rows = append(rows, row{coef: coef, rhs: p.B[i] - floats.Dot(coef, lower)})
		}
	}
	for i := 0; i < n; i++ {
		if math.IsInf(upper[i], 1) {
			continue
		}
		coef := make([]float64, n)
		coef[i] = 1
		rows = append(rows, row{coef: coef, rhs: upper[i] - lower[i], slack: true})
	}

	// Drop structurally empty rows; an equality 0 = b≠0 or 0 ≤ b<0 is infeasible.
	kept := rows[:0]
	for _, r := range rows {
		if floats.Norm(r.coef, math.Inf(1)) != 0 {
			kept = append(kept, r)
			continue
		}
		if (r.slack && r.rhs < 0) || (!r.slack && r.rhs != 0) {
			return stdForm{}, ErrInfeasible
		}
	}
	rows = kept

	// Variables touching no row are free to sit at their lower bound unless
	// the objective pushes them towards +Inf.
	var cols []int
	for j := 0; j < n; j++ {
		used := false
		for _, r := range rows {
			if r.coef[j] != 0 {
				used = true
				break
			}
		}
		if used {
			cols = append(cols, j)
			continue
		}
		if sign*p.C[j] < 0 {
			return stdForm{}, ErrUnbounded
		}
	}

	slacks := 0
	for _, r := range rows {
		if r.slack {
			slacks++
		}
	}
	width := len(cols) + slacks
	sf := stdForm{
		c:    make([]float64, width),
		a:    make([][]float64, len(rows)),
		b:    make([]float64, len(rows)),
		cols: make([]int, width),
	}
	for k, j := range cols {
		sf.c[k] = sign * p.C[j]
		sf.cols[k] = j
	}
	next := len(cols)
	for i, r := range rows {
		line := make([]float64, width)
		for k, j := range cols {
			line[k] = r.coef[j]
		}
		if r.slack {
			line[next] = 1
			sf.cols[next] = -1
			next++
		}
		rhs := r.rhs
		if rhs < 0 {
			floats.Scale(-1, line)
			rhs = -rhs
		}
		sf.a[i] = line
		sf.b[i] = rhs
	}
	return sf, nil
}
