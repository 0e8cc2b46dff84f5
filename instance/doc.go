// SPDX-License-Identifier: MIT
// Package instance generates synthetic range-space instances: colored points
// drawn uniformly from the unit cube and random rectangles, balls and
// halfspaces over it.
//
// Design contract:
//   - Functional options resolve into an immutable config (no global state).
//   - Determinism: same options and seed ⇒ identical instances.
//   - Colors are assigned in consecutive blocks (color 0 first), with
//     floor(n·ratio) points per color and the remainder handed out from color 0.
//
// Example:
//
//	pts, _ := instance.Points(1024, instance.WithSeed(42), instance.WithColorRatios(0.5, 0.5))
//	rects, _ := instance.CenteredRectangles(512, instance.WithSeed(43))
//	space, _ := rangespace.Build(pts, rects)
package instance
