// Package fairness holds the demographic-parity machinery shared by the fair
// ε-net and fair hitting-set builders.
//
// A Config names the number of colors k and the fairness measure. Only
// DemographicParity is implemented; CustomRatio is recognized and rejected
// with ErrMeasureNotImplemented.
//
// Coverage bounds:
//
//	CoverageBound(c1, k) = c1·⌈ln 4k⌉   (fair sampling, fair greedy, fair LP)
//	NaiveBound(c1, k)    = c1·k         (naive fair sampling)
//
// A sampled net is good when every color c satisfies
// count_c ≤ v·ratio_c·|net|. Augment then tops every color up to
// ⌊v·ratio_c·W⌋ (W = |net| before augmentation) using the selected policy:
//
//	AugmentGlobal  — draw without replacement from the whole point set
//	                 (duplicates of net points and other colors are possible).
//	AugmentByColor — draw without replacement from color-c points not yet
//	                 in the net.
package fairness
