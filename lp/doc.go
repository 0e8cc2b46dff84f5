// Package lp is the linear-programming boundary of the hitting-set builders.
//
// The builders describe their programs as a Problem (objective, inequality
// and equality systems, variable bounds) and hand it to a Solver. Simplex is
// the production Solver, backed by gonum's optimize/convex/lp; tests can
// substitute any other implementation.
//
// Problem form:
//
//	minimize (or maximize)  cᵀx
//	subject to              G x ≤ h
//	                        A x = b
//	                        lower ≤ x ≤ upper
//
// Lower bounds must be finite; upper bounds may be +Inf. Simplex shifts x to
// x−lower, adds one slack per inequality and per finite upper bound, and
// solves the resulting standard-form program.
//
// Errors:
//
//	ErrInfeasible  — no x satisfies the constraints.
//	ErrUnbounded   — the objective is unbounded over the feasible set.
//	ErrBadProblem  — inconsistent shapes or bounds.
//	ErrSolver      — any other solver failure (wraps the underlying error text).
//
// The solve is a blocking call with no cancellation.
package lp
