package shape

import (
	"github.com/matzehuels/stackchart/pkg/chart"
)

// Offset returns the stack baseline resolver for one shape category.
//
// targets are the visible series of the category in stacking order. The
// returned function takes a point and its position in its own series and
// returns the pixel y its shape starts from.
func (e *Env) Offset(targets []chart.Series, indices Indices) func(d chart.DataPoint, idx int) float64 {
	order := make(map[string]int, len(targets))
	for i, t := range targets {
		if _, dup := order[t.ID]; !dup {
			order[t.ID] = i
		}
	}

	return func(d chart.DataPoint, idx int) float64 {
		scale := e.yScale(d.ID)
		y0 := scale.Apply(0)
		offset := y0

		pos, listed := order[d.ID]
		if !listed {
			return offset
		}
		group := indices.Of(d.ID)
		step := e.typeOf(d.ID).IsStep()

		for i, t := range targets {
			if i >= pos {
				break
			}
			if t.ID == d.ID || indices.Of(t.ID) != group {
				continue
			}

			row := t.Values
			if step {
				row = chart.StepValues(row, e.Categorized)
			}
			m, ok := align(row, d, idx)
			if !ok {
				continue
			}
			if !m.Plotted() || m.Value*d.Value < 0 {
				continue
			}
			offset += scale.Apply(e.value(m, indices)) - y0
		}
		return offset
	}
}

// align returns the point of row at the same x as d. The positional
// index idx is tried first; otherwise the last point of row with that x
// is used.
func align(row []chart.DataPoint, d chart.DataPoint, idx int) (chart.DataPoint, bool) {
	if !d.X.Valid() {
		return chart.DataPoint{}, false
	}
	if idx >= 0 && idx < len(row) && row[idx].X.Equal(d.X) {
		return row[idx], true
	}
	for i := len(row) - 1; i >= 0; i-- {
		if row[i].X.Equal(d.X) {
			return row[i], true
		}
	}
	return chart.DataPoint{}, false
}
