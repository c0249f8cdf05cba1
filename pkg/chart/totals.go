package chart

import "math"

type totalKey struct {
	group int
	x     float64
}

// Totals holds the summed magnitude of all series of a group at each x.
type Totals struct {
	sums map[totalKey]float64
}

// NewTotals sums |value| per (group, x) over targets. groupOf maps a
// series id to its group index.
func NewTotals(targets []Series, groupOf func(id string) int) *Totals {
	t := &Totals{sums: make(map[totalKey]float64)}
	for _, s := range targets {
		g := groupOf(s.ID)
		for _, d := range s.Values {
			if !d.Plotted() {
				continue
			}
			t.sums[totalKey{g, d.X.Float()}] += math.Abs(d.Value)
		}
	}
	return t
}

// Total returns the summed magnitude for a group at x.
func (t *Totals) Total(group int, x XValue) float64 {
	if t == nil || !x.Valid() {
		return 0
	}
	return t.sums[totalKey{group, x.Float()}]
}

// Ratio returns the share of d in its group's total at d.X as a
// percentage. It returns 0 when the total is 0.
func (t *Totals) Ratio(d DataPoint, group int) float64 {
	total := t.Total(group, d.X)
	if total == 0 {
		return 0
	}
	return d.Value / total * 100
}
