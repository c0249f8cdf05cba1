// Package chart defines the data model consumed by the shape layout core.
//
// A [Chart] couples a validated [Config] with the ordered list of
// [Series] to lay out. Series hold [DataPoint] values whose x may be a
// number or a timestamp ([XValue]); comparisons always go through the
// numeric form so two equal dates are equal regardless of identity.
//
// The package is read-only during a layout pass: helpers such as
// [Chart.Visible], [Chart.Ordered] and [NewTotals] return fresh slices and
// maps and never mutate the chart.
//
// # Shape types
//
// Each series is drawn as one [ShapeType]. The classification helpers
// drive the rest of the pipeline:
//
//   - IsSpline: spline, area-spline (curve from the spline interpolation)
//   - IsStep:   step, area-step (step resampling, step hit tolerance)
//   - IsArea:   area, area-spline, area-step
//   - IsBar:    bar
//   - IsPoint:  scatter, bubble
//
// # Normalized stacks
//
// With Stack.Normalize set, vertical values are replaced by their share of
// the total magnitude at the same x inside the same group, expressed as a
// percentage. [Totals] computes those shares.
package chart
