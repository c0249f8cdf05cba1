// Package layout runs a complete layout pass over a chart.
//
// # Overview
//
// [Build] combines the shape resolvers of package shape into positioned
// geometry. Series are split into three categories that are indexed and
// stacked independently:
//
//   - Bars: bar series, drawn as [Block] rectangles
//   - Lines: line, spline, step and area series, traced with their curve
//   - Points: scatter and bubble series, drawn as markers
//
// The returned [Layout] holds per-series points, bar blocks, traced paths
// and the hit-testable shapes used by [Layout.Hits].
//
// # Building a Layout
//
// Scales come from the caller. [AutoScales] fits linear scales to the
// data for callers without their own axes:
//
//	axes := layout.AutoScales(c, 800, 600)
//	l := layout.Build(c, axes, layout.WithSize(800, 600))
//
// # Bar Widths
//
// [BarWidth] follows the usual rules: a fixed width wins, otherwise each
// slot receives tick interval * ratio / slots, capped by the configured
// maximum. The tick interval defaults to the smallest pixel gap between x
// positions of the bar series; [WithTickInterval] overrides it.
//
// # Options
//
//   - [WithSize]: frame size (default 800x600)
//   - [WithTickInterval]: fixed tick interval for bar widths
//   - [WithSub]: use the secondary scales
package layout
