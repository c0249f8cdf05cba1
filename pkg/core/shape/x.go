package shape

import "github.com/matzehuels/stackchart/pkg/chart"

// Offset describes the horizontal footprint of bars at one x slot.
//
// A plain offset carries only Width. A per-series offset also sets ByID
// and Total: ByID holds explicit widths keyed by series id and Total one
// width per index slot, in index order.
type Offset struct {
	Width float64
	ByID  map[string]float64
	Total []float64
}

// Width returns a plain offset.
func Width(w float64) Offset { return Offset{Width: w} }

// perSeries reports whether o is a per-series descriptor.
func (o Offset) perSeries() bool { return o.ByID != nil || o.Total != nil }

// set reports whether o counts as present for padding adjustment. A plain
// zero width does not.
func (o Offset) set() bool { return o.perSeries() || o.Width != 0 }

// widthOf returns the explicit width of id, falling back to Width.
func (o Offset) widthOf(id string) float64 {
	if w := o.ByID[id]; w != 0 {
		return w
	}
	return o.Width
}

func sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}

// X returns the horizontal position resolver for one shape category.
//
// targetsNum is the number of index slots sharing an x position and
// padding the configured gap between adjacent bars. Points without x
// resolve to 0.
func (e *Env) X(offset Offset, targetsNum int, indices Indices, padding float64) func(chart.DataPoint) float64 {
	scale := e.xScale()
	var halfWidth float64
	if len(offset.Total) > 0 {
		halfWidth = sum(offset.Total) / 2
	}
	n := float64(targetsNum)

	return func(d chart.DataPoint) float64 {
		index := indices.Of(d.ID)
		var x float64

		if d.X.Valid() {
			pos := scale.Apply(d.X.Float())
			if halfWidth != 0 {
				upto := min(index+1, len(offset.Total))
				x = pos - offset.widthOf(d.ID) + sum(offset.Total[:upto]) - halfWidth
			} else {
				x = pos - offset.Width*(n/2-float64(index))
			}
		}

		if offset.set() && x != 0 && targetsNum > 1 && padding > 0 {
			x += padding * float64(index)
			switch {
			case targetsNum > 2:
				x -= (n - 1) * padding / 2
			case targetsNum == 2:
				x -= padding / 2
			}
		}
		return x
	}
}
