package curve

import "math"

// monotone is a cubic Hermite spline that preserves monotonicity in x.
// Tangents follow Steffen's method.
type monotone struct {
	s                  Sink
	state              int
	x0, y0, x1, y1, t0 float64
}

func newMonotoneX(s Sink) tracer {
	nan := math.NaN()
	return &monotone{s: s, x0: nan, y0: nan, x1: nan, y1: nan, t0: nan}
}

// newMonotoneY traces with x and y swapped, giving a curve monotone in y.
func newMonotoneY(s Sink) tracer {
	return &swapTracer{newMonotoneX(swapSink{s})}
}

type swapTracer struct{ t tracer }

func (w *swapTracer) point(x, y float64) { w.t.point(y, x) }
func (w *swapTracer) end()               { w.t.end() }

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// divisor returns h, or a zero signed like other when h is zero.
func divisor(h, other float64) float64 {
	if h == 0 && other < 0 {
		return math.Copysign(0, -1)
	}
	return h
}

// slope3 returns the tangent at (x1,y1) given the next point.
func (c *monotone) slope3(x2, y2 float64) float64 {
	h0 := c.x1 - c.x0
	h1 := x2 - c.x1
	s0 := (c.y1 - c.y0) / divisor(h0, h1)
	s1 := (y2 - c.y1) / divisor(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 returns the tangent at an end point from the one-sided slope.
func (c *monotone) slope2(t float64) float64 {
	h := c.x1 - c.x0
	if h != 0 && !math.IsNaN(h) {
		return (3*(c.y1-c.y0)/h - t) / 2
	}
	return t
}

func (c *monotone) segment(t0, t1 float64) {
	dx := (c.x1 - c.x0) / 3
	c.s.CubicTo(c.x0+dx, c.y0+dx*t0, c.x1-dx, c.y1-dx*t1, c.x1, c.y1)
}

func (c *monotone) point(x, y float64) {
	if x == c.x1 && y == c.y1 {
		return
	}
	t1 := math.NaN()
	switch c.state {
	case 0:
		c.state = 1
		c.s.MoveTo(x, y)
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		t1 = c.slope3(x, y)
		c.segment(c.slope2(t1), t1)
	default:
		t1 = c.slope3(x, y)
		c.segment(c.t0, t1)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
	c.t0 = t1
}

func (c *monotone) end() {
	switch c.state {
	case 1:
		c.s.Close()
	case 2:
		c.s.LineTo(c.x1, c.y1)
	case 3:
		c.segment(c.t0, c.slope2(c.t0))
	}
}
