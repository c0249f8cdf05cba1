package shape

import (
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/scale"
)

// Env is the read-only context of one layout pass.
type Env struct {
	// Scales resolves the x scale and per-series y scales.
	Scales scale.Provider
	// TypeOf returns the shape type of a series. Nil treats every series
	// as a plain line.
	TypeOf func(id string) chart.ShapeType
	// Totals enables normalized stacking when non-nil. Values are then
	// replaced by their percentage share of the group total at their x.
	Totals *chart.Totals
	// Categorized marks a categorical x axis. It enables step resampling.
	Categorized bool
	// Sub selects the secondary (navigator) scales.
	Sub bool
}

// NewEnv returns an Env for the chart using the given scales. Totals are
// computed from targets when the chart normalizes stacks.
func NewEnv(c *chart.Chart, scales scale.Provider, targets []chart.Series, indices Indices) *Env {
	env := &Env{
		Scales:      scales,
		TypeOf:      c.TypeOf,
		Categorized: c.Categorized(),
	}
	if c.Config.Stack.Normalize {
		env.Totals = chart.NewTotals(targets, indices.Of)
	}
	return env
}

// WithSub returns a copy of e using the secondary scales.
func (e *Env) WithSub() *Env {
	cp := *e
	cp.Sub = true
	return &cp
}

// Normalized reports whether values are stacking ratios.
func (e *Env) Normalized() bool { return e.Totals != nil }

func (e *Env) typeOf(id string) chart.ShapeType {
	if e.TypeOf == nil {
		return chart.TypeLine
	}
	return e.TypeOf(id)
}

func (e *Env) yScale(id string) scale.Scale {
	if e.Scales == nil {
		return scale.Identity
	}
	return e.Scales.Y(id, e.Sub)
}

func (e *Env) xScale() scale.Scale {
	if e.Scales == nil {
		return scale.Identity
	}
	return e.Scales.X(e.Sub)
}

// value returns the quantity fed to the y scale for d.
func (e *Env) value(d chart.DataPoint, indices Indices) float64 {
	if e.Totals != nil {
		return e.Totals.Ratio(d, indices.Of(d.ID))
	}
	return d.Value
}
