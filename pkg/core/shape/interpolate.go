package shape

import (
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/curve"
)

// Interpolation resolves the curve name for a shape type.
//
// Spline types use spline when it names a known curve and cardinal
// otherwise. Step types use step, defaulting to "step". Every other type
// is linear.
func Interpolation(t chart.ShapeType, spline, step string) string {
	switch {
	case t.IsSpline():
		if curve.IsInterpolation(spline) {
			return spline
		}
		return curve.Cardinal
	case t.IsStep():
		switch step {
		case curve.Step, curve.StepAfter, curve.StepBefore:
			return step
		}
		return curve.Step
	default:
		return curve.Linear
	}
}

// Curve returns the curve algorithm for a shape type.
func Curve(t chart.ShapeType, spline, step string) curve.Curve {
	return curve.MustLookup(Interpolation(t, spline, step))
}
