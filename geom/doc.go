// SPDX-License-Identifier: MIT
// Package geom defines the geometric primitives of a range space: colored,
// weighted points in R^d and the query ranges evaluated over them.
//
// Ranges:
//
//	Rectangle — closed axis-aligned box in the plane, VC-dimension 2.
//	Ball      — closed Euclidean ball in R^d, VC-dimension d+1.
//	Halfspace — {x : ⟨normal, x⟩ ≤ offset} in R^d, VC-dimension d+1.
//
// Points are immutable values. The weight is the only attribute algorithms
// change, and they do so through WithWeight / Reweight, which return new
// values instead of mutating shared points.
//
// Dimensional consistency:
//
//	A Family fixes the ambient dimension with its first Ball or Halfspace and
//	rejects later instances of a different dimension with ErrDimensionMismatch.
//	Contains never coerces: a point of the wrong dimension is simply outside.
//
// Example:
//
//	var fam geom.Family
//	b, err := fam.Ball([]float64{0.5, 0.5}, 0.25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := geom.NewPoint([]float64{0.6, 0.5}, 1)
//	fmt.Println(b.Contains(p), b.VCDim()) // true 3
package geom
