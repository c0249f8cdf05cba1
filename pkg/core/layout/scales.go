package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/scale"
	"github.com/matzehuels/stackchart/pkg/core/shape"
)

// MarginRatio is the frame margin as a fraction of each dimension.
const MarginRatio = 0.05

// AutoScales derives linear scales fitting the visible data of c into a
// width by height frame. Vertical domains include zero and account for
// stacked groups; normalized stacks use a 0..100 domain. The y axes grow
// upwards on screen.
func AutoScales(c *chart.Chart, width, height float64) *scale.Axes {
	cfg := c.Config
	cfg.SetDefaults()
	mx, my := width*MarginRatio, height*MarginRatio

	visible := c.Visible(nil)
	xlo, xhi := xDomain(c, visible)

	axes := &scale.Axes{
		XScale: scale.NewLinear(xlo, xhi, mx, width-mx),
		Y2IDs:  make(map[string]bool),
	}
	for _, s := range visible {
		if c.AxisOf(s.ID) == chart.AxisY2 {
			axes.Y2IDs[s.ID] = true
		}
	}

	onAxis := func(axis string) func(chart.Series) bool {
		return func(s chart.Series) bool { return c.AxisOf(s.ID) == axis }
	}
	ylo, yhi := yDomain(c, cfg, onAxis(chart.AxisY))
	axes.YScale = scale.NewLinear(ylo, yhi, height-my, my).Nice()
	if len(axes.Y2IDs) > 0 {
		lo, hi := yDomain(c, cfg, onAxis(chart.AxisY2))
		axes.Y2Scale = scale.NewLinear(lo, hi, height-my, my).Nice()
	}
	return axes
}

func xDomain(c *chart.Chart, visible []chart.Series) (float64, float64) {
	var xs []float64
	hasBars := false
	for _, s := range visible {
		if c.TypeOf(s.ID).IsBar() {
			hasBars = true
		}
		for _, d := range s.Values {
			if d.Plotted() {
				xs = append(xs, d.X.Float())
			}
		}
	}
	if len(xs) == 0 {
		return 0, 1
	}
	sort.Float64s(xs)
	lo, hi := xs[0], xs[len(xs)-1]

	switch {
	case c.Categorized():
		return lo - 0.5, hi + 0.5
	case hasBars:
		pad := 0.5
		if gap := minGap(xs); gap > 0 {
			pad = gap / 2
		}
		return lo - pad, hi + pad
	case lo == hi:
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

func minGap(sorted []float64) float64 {
	gap := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		if g := sorted[i] - sorted[i-1]; g > eps && g < gap {
			gap = g
		}
	}
	if math.IsInf(gap, 1) {
		return 0
	}
	return gap
}

type stackKey struct {
	group int
	x     float64
}

func yDomain(c *chart.Chart, cfg chart.Config, keep func(chart.Series) bool) (float64, float64) {
	lo, hi := 0.0, 0.0

	if cfg.Stack.Normalize {
		for _, s := range c.Visible(keep) {
			for _, d := range s.Values {
				if d.Plotted() && d.Value < 0 {
					lo = -100
				}
				if d.Plotted() && d.Value > 0 {
					hi = 100
				}
			}
		}
		return widen(lo, hi)
	}

	stacked := func(pred func(chart.ShapeType) bool) {
		series := c.Visible(func(s chart.Series) bool { return keep(s) && pred(c.TypeOf(s.ID)) })
		ix := shape.ComputeIndices(series, cfg.Groups)
		pos := make(map[stackKey]float64)
		neg := make(map[stackKey]float64)
		for _, s := range series {
			g := ix.Of(s.ID)
			for _, d := range s.Values {
				if !d.Plotted() {
					continue
				}
				k := stackKey{g, d.X.Float()}
				if d.Value >= 0 {
					pos[k] += d.Value
					hi = math.Max(hi, pos[k])
				} else {
					neg[k] += d.Value
					lo = math.Min(lo, neg[k])
				}
			}
		}
	}
	stacked(chart.ShapeType.IsBar)
	stacked(chart.ShapeType.IsLine)

	for _, s := range c.Visible(func(s chart.Series) bool { return keep(s) && c.TypeOf(s.ID).IsPoint() }) {
		for _, d := range s.Values {
			if d.Plotted() {
				lo = math.Min(lo, d.Value)
				hi = math.Max(hi, d.Value)
			}
		}
	}
	return widen(lo, hi)
}

func widen(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo, lo + 1
	}
	return lo, hi
}
