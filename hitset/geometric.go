package hitset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fairnet/epsnet"
	"github.com/katalvlaran/fairnet/geom"
	"github.com/katalvlaran/fairnet/lp"
	"github.com/katalvlaran/fairnet/rangespace"
)

// coverProblem is the fractional hitting-set LP over n point variables:
// minimize Σz subject to −Σ_{i∈r} z_i ≤ −1 and 0 ≤ z ≤ 1.
func coverProblem(space *rangespace.Space) lp.Problem {
	n, m := space.N(), space.Len()
	g := mat.NewDense(m, n, nil)
	h := make([]float64, m)
	for j := range m {
		for _, i := range space.MemberIndices(j) {
			g.Set(j, i, -1)
		}
		h[j] = -1
	}
	return lp.Problem{
		Sense: lp.Minimize,
		C:     ones(n),
		G:     g,
		H:     h,
		Upper: ones(n),
	}
}

// fairCoverProblem maximizes ε over variables (z_0..z_{n-1}, ε):
// ε − Σ_{i∈r} z_i ≤ 0 per range and Σ_{i∈c} z_i = ratio_c per populated
// color. The Σz = 1 row is implied by the color rows and is added only when
// they leave a point uncovered.
func fairCoverProblem(space *rangespace.Space, ratios []float64) (lp.Problem, error) {
	n, m := space.N(), space.Len()
	eps := n

	g := mat.NewDense(m, n+1, nil)
	for j := range m {
		for _, i := range space.MemberIndices(j) {
			g.Set(j, i, -1)
		}
		g.Set(j, eps, 1)
	}

	classes, err := space.ByColor(space.All(), len(ratios))
	if err != nil {
		return lp.Problem{}, err
	}
	var rows [][]float64
	var rhs []float64
	inRow := 0
	for c, class := range classes {
		if len(class) == 0 {
			continue
		}
		row := make([]float64, n+1)
		for _, i := range class {
			row[i] = 1
		}
		rows = append(rows, row)
		rhs = append(rhs, ratios[c])
		inRow += len(class)
	}
	if inRow < n {
		row := ones(n + 1)
		row[eps] = 0
		rows = append(rows, row)
		rhs = append(rhs, 1)
	}
	var a *mat.Dense
	if len(rows) > 0 {
		a = mat.NewDense(len(rows), n+1, nil)
		for r, row := range rows {
			a.SetRow(r, row)
		}
	}

	c := make([]float64, n+1)
	c[eps] = 1
	upper := ones(n + 1)
	upper[eps] = math.Inf(1)
	return lp.Problem{
		Sense: lp.Maximize,
		C:     c,
		G:     g,
		H:     make([]float64, m),
		A:     a,
		B:     rhs,
		Upper: upper,
	}, nil
}

// minEpsilon treats LP round-off above zero as a zero optimum.
const minEpsilon = 1e-9

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// reweighted returns a view of space whose points carry weights z.
func reweighted(space *rangespace.Space, z []float64) (*rangespace.Space, error) {
	pts, err := geom.Reweight(space.Points(), z)
	if err != nil {
		return nil, err
	}
	return space.WithPoints(pts)
}

// vcDim returns the configured VC-dimension or derives it from the ranges.
func vcDim(space *rangespace.Space, configured int) (int, error) {
	if configured > 0 {
		return configured, nil
	}
	ranges := make([]geom.Range, 0, space.Len())
	for j := range space.Len() {
		r := space.Range(j)
		if r == nil {
			return 0, ErrNoVCDim
		}
		ranges = append(ranges, r)
	}
	vc, err := geom.VCDimOf(ranges)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoVCDim, err)
	}
	return vc, nil
}

// geometric solves the covering LP and samples a weighted ε-net with ε = 1/Σz.
func (f *finder) geometric() ([]int, error) {
	if f.space.Len() == 0 {
		return []int{}, nil
	}
	vc, err := vcDim(f.space, f.opts.VCDim)
	if err != nil {
		return nil, err
	}
	prob := coverProblem(f.space)
	sol, err := f.opts.Solver.Solve(prob)
	if err != nil {
		return nil, fmt.Errorf("Geometric: %w", err)
	}
	if len(sol.X) != len(prob.C) {
		return nil, fmt.Errorf("Geometric: %d values for %d variables: %w", len(sol.X), len(prob.C), lp.ErrSolver)
	}
	total := floats.Sum(sol.X)
	if total <= 0 {
		return nil, fmt.Errorf("Geometric: LP mass %g: %w", total, lp.ErrSolver)
	}
	z := append([]float64(nil), sol.X...)
	floats.Scale(1/total, z)
	epsilon := math.Min(1, 1/total)
	f.log.Debug("hitset: LP solved", "mass", total, "epsilon", epsilon, "vc", vc)

	view, err := reweighted(f.space, z)
	if err != nil {
		return nil, err
	}
	return epsnet.Build(view, epsnet.Sample, f.opts.netOptions(epsilon, vc))
}

// fairGeometric solves the fair LP and samples a fair weighted ε-net with
// the optimal ε.
func (f *finder) fairGeometric() ([]int, error) {
	if f.space.Len() == 0 {
		return []int{}, nil
	}
	vc, err := vcDim(f.space, f.opts.VCDim)
	if err != nil {
		return nil, err
	}
	ratios, err := f.space.ColorRatios(nil, f.cfg.K)
	if err != nil {
		return nil, err
	}
	prob, err := fairCoverProblem(f.space, ratios)
	if err != nil {
		return nil, err
	}
	sol, err := f.opts.Solver.Solve(prob)
	if err != nil {
		return nil, fmt.Errorf("FairGeometric: %w", err)
	}
	if len(sol.X) != len(prob.C) {
		return nil, fmt.Errorf("FairGeometric: %d values for %d variables: %w", len(sol.X), len(prob.C), lp.ErrSolver)
	}
	n := f.space.N()
	epsilon := math.Min(1, sol.X[n])
	f.log.Debug("hitset: fair LP solved", "epsilon", epsilon, "ratios", ratios, "vc", vc)
	if epsilon <= minEpsilon {
		return nil, fmt.Errorf("FairGeometric: LP optimum ε = %g: %w", epsilon, ErrUnhittableRange)
	}

	view, err := reweighted(f.space, sol.X[:n])
	if err != nil {
		return nil, err
	}
	return epsnet.BuildFair(view, epsnet.Sample, f.cfg, f.opts.netOptions(epsilon, vc))
}
