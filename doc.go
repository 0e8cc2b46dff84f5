// Package fairnet is an in-memory toolkit for ε-nets and hitting sets of
// finite range spaces, with optional demographic-parity fairness over
// colored points.
//
// What is inside:
//
//	geom/       — points (coordinates, color, weight) and ranges: rectangles, balls, halfspaces
//	rangespace/ — materialized range spaces: one roaring bitmap of members per range
//	instance/   — seeded generators for points and range families
//	epsnet/     — ε-net builders: sampling, discrepancy halving, sketch-and-merge, fair variants
//	fairness/   — coverage bounds, goodness test and augmentation for fair sets
//	hitset/     — greedy and LP-rounded hitting sets, fair variants
//	lp/         — a small LP interface with a gonum simplex backend
//	verify/     — exact checks for ε-nets, hitting sets and color tolerance
//
// A typical run:
//
//	pts, _ := instance.Points(1024, instance.WithColorRatios(0.5, 0.5))
//	rects, _ := instance.CenteredRectangles(512)
//	space, _ := rangespace.Build(pts, rects)
//	net, _ := epsnet.BuildFair(space, epsnet.Sample, fairness.NewConfig(2),
//		epsnet.DefaultOptions(0.7, geom.RectangleVCDim))
//	ok, _ := verify.IsFairEpsNet(net, space, 0.7, 2)
//
// Everything is deterministic for a fixed seed. See examples/ for a runnable demo.
//
//	go get github.com/katalvlaran/fairnet
package fairnet
