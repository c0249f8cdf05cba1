// Package scale maps data values to pixel coordinates.
//
// The layout core only needs the [Scale] interface and a [Provider] that
// hands out the scale for a series. [Linear] and [Axes] are the concrete
// implementations used by the command line and the HTTP adapter.
package scale

// Scale converts a domain value to a pixel coordinate.
type Scale interface {
	Apply(v float64) float64
}

// Func adapts a plain function to Scale.
type Func func(float64) float64

// Apply calls f(v).
func (f Func) Apply(v float64) float64 { return f(v) }

// Identity returns v unchanged.
var Identity Scale = Func(func(v float64) float64 { return v })

// Provider resolves the scale to use for a series. sub selects the
// secondary (zoom navigator) scales.
type Provider interface {
	X(sub bool) Scale
	Y(id string, sub bool) Scale
}

// Linear maps the domain [D0, D1] onto the range [R0, R1].
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a linear scale.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Apply implements Scale. A degenerate domain maps everything to the
// middle of the range.
func (l Linear) Apply(v float64) float64 {
	span := l.D1 - l.D0
	if span == 0 {
		return (l.R0 + l.R1) / 2
	}
	return l.R0 + (v-l.D0)/span*(l.R1-l.R0)
}

// Invert maps a pixel coordinate back to the domain.
func (l Linear) Invert(px float64) float64 {
	span := l.R1 - l.R0
	if span == 0 {
		return l.D0
	}
	return l.D0 + (px-l.R0)/span*(l.D1-l.D0)
}

// Nice widens the domain to round tick boundaries.
func (l Linear) Nice() Linear {
	lo, hi := l.D0, l.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	step := niceStep(hi - lo)
	if step == 0 {
		return l
	}
	lo = floorTo(lo, step)
	hi = ceilTo(hi, step)
	if l.D0 > l.D1 {
		lo, hi = hi, lo
	}
	return Linear{D0: lo, D1: hi, R0: l.R0, R1: l.R1}
}
