package curve

import "math"

const epsilon = 1e-12

// catmullRomState extends the cardinal window with the parametrised chord
// lengths l^alpha and l^(2 alpha) of the three most recent segments.
type catmullRomState struct {
	cardinalState
	alpha                  float64
	l01a, l12a, l23a       float64
	l01_2a, l12_2a, l23_2a float64
}

func newCatmullRomState(s Sink, alpha float64) catmullRomState {
	return catmullRomState{cardinalState: newCardinalState(s, 0), alpha: alpha}
}

func (c *catmullRomState) segment(x, y float64) {
	x1, y1, x2, y2 := c.x1, c.y1, c.x2, c.y2

	if c.l01a > epsilon {
		a := 2*c.l01_2a + 3*c.l01a*c.l12a + c.l12_2a
		n := 3 * c.l01a * (c.l01a + c.l12a)
		x1 = (x1*a - c.x0*c.l12_2a + c.x2*c.l01_2a) / n
		y1 = (y1*a - c.y0*c.l12_2a + c.y2*c.l01_2a) / n
	}
	if c.l23a > epsilon {
		b := 2*c.l23_2a + 3*c.l23a*c.l12a + c.l12_2a
		m := 3 * c.l23a * (c.l23a + c.l12a)
		x2 = (x2*b + c.x1*c.l23_2a - x*c.l12_2a) / m
		y2 = (y2*b + c.y1*c.l23_2a - y*c.l12_2a) / m
	}
	c.s.CubicTo(x1, y1, x2, y2, c.x2, c.y2)
}

// measure records the length of the chord ending at (x,y). It must run
// before the state switch of every point except the first.
func (c *catmullRomState) measure(x, y float64) {
	if c.state == 0 {
		return
	}
	dx, dy := c.x2-x, c.y2-y
	c.l23_2a = math.Pow(dx*dx+dy*dy, c.alpha)
	c.l23a = math.Sqrt(c.l23_2a)
}

func (c *catmullRomState) advance(x, y float64) {
	c.l01a, c.l12a = c.l12a, c.l23a
	c.l01_2a, c.l12_2a = c.l12_2a, c.l23_2a
	c.shift(x, y)
}

type catmullRom struct{ catmullRomState }

func newCatmullRom(s Sink, alpha float64) tracer {
	return &catmullRom{newCatmullRomState(s, alpha)}
}

func (c *catmullRom) point(x, y float64) {
	c.measure(x, y)
	switch c.state {
	case 0:
		c.state = 1
		c.s.MoveTo(x, y)
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		c.segment(x, y)
	default:
		c.segment(x, y)
	}
	c.advance(x, y)
}

func (c *catmullRom) end() {
	switch c.state {
	case 1:
		c.s.Close()
	case 2:
		c.s.LineTo(c.x2, c.y2)
	case 3:
		c.point(c.x2, c.y2)
	}
}

type catmullRomClosed struct {
	catmullRomState
	x3, y3, x4, y4, x5, y5 float64
}

func newCatmullRomClosed(s Sink, alpha float64) tracer {
	return &catmullRomClosed{catmullRomState: newCatmullRomState(s, alpha)}
}

func (c *catmullRomClosed) point(x, y float64) {
	c.measure(x, y)
	switch c.state {
	case 0:
		c.state = 1
		c.x3, c.y3 = x, y
	case 1:
		c.state = 2
		c.x4, c.y4 = x, y
		c.s.MoveTo(x, y)
	case 2:
		c.state = 3
		c.x5, c.y5 = x, y
	default:
		c.segment(x, y)
	}
	c.advance(x, y)
}

func (c *catmullRomClosed) end() {
	switch c.state {
	case 1:
		c.s.MoveTo(c.x3, c.y3)
		c.s.Close()
	case 2:
		c.s.LineTo(c.x3, c.y3)
		c.s.Close()
	case 3:
		c.point(c.x3, c.y3)
		c.point(c.x4, c.y4)
		c.point(c.x5, c.y5)
	}
}

type catmullRomOpen struct{ catmullRomState }

func newCatmullRomOpen(s Sink, alpha float64) tracer {
	return &catmullRomOpen{newCatmullRomState(s, alpha)}
}

func (c *catmullRomOpen) point(x, y float64) {
	c.measure(x, y)
	switch c.state {
	case 0:
		c.state = 1
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		c.s.MoveTo(c.x2, c.y2)
	default:
		c.state = 4
		c.segment(x, y)
	}
	c.advance(x, y)
}

func (c *catmullRomOpen) end() {
	if c.state == 3 {
		c.s.Close()
	}
}
