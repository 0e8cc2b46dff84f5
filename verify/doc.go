// Package verify checks the defining properties of nets and hitting sets
// against a materialized range space.
//
// Every predicate is exact: it inspects every range once, intersecting its
// member bitmap with the candidate set. Use it to confirm the probabilistic
// builders of epsnet and hitset.
//
//   - IsEpsNet: every range with |r| ≥ ε·|P| meets the net.
//   - IsHittingSet: every range meets the set.
//   - WithinTolerance: per-color fractions of the set stay within tol of P's.
//   - IsFairEpsNet / IsFairHittingSet: the above with FairnessTolerance.
//
// Sets are point indices of the space; repeated indices count once for
// coverage and once per occurrence for color fractions.
package verify
