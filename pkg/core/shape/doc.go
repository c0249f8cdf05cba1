// Package shape computes the geometric layout of chart shapes.
//
// The package answers five questions for a layout pass:
//
//   - which series stack together ([Indices])
//   - where a point sits horizontally ([Env.X])
//   - which pixel y a value maps to ([Env.Y])
//   - where a stacked point's baseline is ([Env.Offset])
//   - which curve connects a series' points ([Interpolation], [Curve])
//
// and, once shapes are built, whether a pointer falls within one
// ([Within]).
//
// Every function takes its inputs explicitly. An [Env] bundles the
// read-only collaborators of one pass (scales, type lookup, stacking
// totals) and is safe to share between goroutines as long as its scales
// are. Nothing here retains state between passes.
//
// # Group indices
//
// Series declared in a common group share one index. Indices are handed
// out in traversal order: every declared group containing a series is
// consulted, the series taking the index of the first already indexed
// member of the last such group, or the next unused index. Traversal order
// is therefore part of the result:
//
//	groups  [[a b] [b c]]
//	targets a b c      -> a:0 b:0 c:0
//	targets c a b      -> c:0 a:1 b:1
//	groups  [[b x] [a b]]
//	targets a b        -> a:0 b:0
//
// # Stacking
//
// The baseline of a point is the zero line of its scale plus the scaled
// heights of every series earlier in target order, in the same group, with
// a value of the same sign at the same x. Positive and negative values
// therefore stack away from zero independently.
package shape
