package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/scale"
	"github.com/matzehuels/stackchart/pkg/core/shape"
)

const eps = 1e-9

// BarWidth computes the bar offset descriptor.
//
// A fixed Width wins. Otherwise every slot gets tickInterval*WidthRatio
// divided by the number of slots, capped by WidthMax. Per-series widths
// produce a per-series descriptor unless groups are declared, in which
// case stacked bars share the plain width.
func BarWidth(cfg chart.Config, tickInterval float64, slots int, targets []chart.Series) shape.Offset {
	base := barWidth(cfg.Bar.Width, cfg.Bar.WidthRatio, cfg.Bar.WidthMax, tickInterval, slots)
	if len(cfg.Bar.Widths) == 0 || len(cfg.Groups) > 0 {
		return shape.Width(base)
	}

	off := shape.Offset{Width: base, ByID: make(map[string]float64)}
	for _, t := range targets {
		w := base
		if explicit, ok := cfg.Bar.Widths[t.ID]; ok && explicit > 0 {
			w = explicit
			if cfg.Bar.WidthMax > 0 && w > cfg.Bar.WidthMax {
				w = cfg.Bar.WidthMax
			}
			off.ByID[t.ID] = w
		}
		off.Total = append(off.Total, w)
	}
	return off
}

func barWidth(fixed, ratio, limit, tickInterval float64, slots int) float64 {
	w := fixed
	if w <= 0 {
		if slots <= 0 {
			return 0
		}
		w = tickInterval * ratio / float64(slots)
	}
	if limit > 0 && w > limit {
		return limit
	}
	return w
}

// TickInterval returns the smallest pixel distance between adjacent
// distinct x positions of series. With fewer than two positions it returns
// fallback.
func TickInterval(series []chart.Series, x scale.Scale, fallback float64) float64 {
	var px []float64
	for _, s := range series {
		for _, d := range s.Values {
			if d.X.Valid() {
				px = append(px, x.Apply(d.X.Float()))
			}
		}
	}
	sort.Float64s(px)

	gap := math.Inf(1)
	for i := 1; i < len(px); i++ {
		if g := px[i] - px[i-1]; g > eps && g < gap {
			gap = g
		}
	}
	if math.IsInf(gap, 1) {
		return fallback
	}
	return gap
}
