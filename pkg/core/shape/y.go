package shape

import "github.com/matzehuels/stackchart/pkg/chart"

// Y returns the vertical position resolver. In normalized mode the scale
// receives the point's stacking ratio instead of its value.
func (e *Env) Y(indices Indices) func(chart.DataPoint) float64 {
	return func(d chart.DataPoint) float64 {
		return e.yScale(d.ID).Apply(e.value(d, indices))
	}
}
