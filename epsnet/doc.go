// Package epsnet builds ε-nets of a finite range space, optionally under a
// demographic-parity constraint.
//
// An ε-net N ⊆ P hits every range containing at least ε·|P| points. All
// strategies target the sampling bound
//
//	m = ⌈max((4/ε)·log2(4/φ), (8d/ε)·log2(16/ε))⌉,  φ = 1 − SuccessProb,
//
// clamped to |P|.
//
// Strategies:
//
//   - Sample: m independent draws with replacement, optionally weighted by
//     point weights. Probabilistic guarantee only; verify when certainty is needed.
//   - Discrepancy: repeated greedy discrepancy halving until |subset| ≤ 2m.
//     Each round pairs the points at random (dropping one on odd counts),
//     colors every pair ±1 so the running max_r |Σχ| stays smallest (ties keep
//     the first point), and keeps the +1 side.
//   - SketchMerge: blocks of p = nextPow2(m·2^PartitionC1) points are merged
//     pairwise up a balanced binary tree, each union halved back to one block;
//     the root is then halved until ≤ 2m. The block count must be a power of
//     two at every level, otherwise ErrOddPartitions. Merges inside one level
//     are independent and may run on Options.Workers goroutines.
//
// Fair strategies (BuildFair) add v-bounded rejection sampling with
// augmentation (Sample, NaiveFair) or restrict halving pairs to a single
// color (Discrepancy, SketchMerge). See package fairness for the bounds.
//
// Every strategy reuses the range space it is given while its working subset
// shrinks. Options.RecomputeRangeSpace restricts memberships to the working
// subset each round instead; uncolored points add 0 to every range sum, so
// this changes the cost of a round but never the net.
//
// Nets are returned as indices into the space's point sequence. Sampled nets
// may repeat an index.
package epsnet
