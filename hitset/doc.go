// Package hitset computes hitting sets of a finite range space: subsets of
// the points that intersect every range.
//
// Strategies:
//
//   - Greedy: repeatedly pick the point in the most uncovered ranges (ties
//     go to the lowest index) until every range is hit or Options.Limit
//     points were picked. O(picks·|P| + Σ|r|).
//   - Geometric: solve the fractional hitting-set LP
//
//     minimize Σ z_i  s.t.  Σ_{i∈r} z_i ≥ 1 ∀r,  0 ≤ z ≤ 1,
//
//     normalize z into a distribution, set ε = 1/Σz and draw a weighted
//     ε-net. Every range then has weight ≥ ε, so the net hits it with the
//     success probability of epsnet.Size. The LP goes through an lp.Solver
//     (lp.Simplex by default); infeasibility is reported as lp.ErrInfeasible.
//
// FindFair adds demographic parity. Fair greedy augments the greedy set with
// fairness.Augment. Fair geometric solves
//
//     maximize ε  s.t.  Σ_{i∈r} z_i ≥ ε ∀r,  Σ_{i∈c} z_i = ratio_c ∀c,  0 ≤ z ≤ 1,
//
// and draws a fair weighted ε-net with that ε.
//
// Results are point indices of the space; Geometric may repeat an index.
package hitset
