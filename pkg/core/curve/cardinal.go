package curve

import "math"

// cardinalState holds the sliding window shared by the cardinal variants.
// k is (1 - tension) / 6.
type cardinalState struct {
	s                      Sink
	k                      float64
	state                  int
	x0, y0, x1, y1, x2, y2 float64
}

func newCardinalState(s Sink, tension float64) cardinalState {
	nan := math.NaN()
	return cardinalState{
		s: s, k: (1 - tension) / 6,
		x0: nan, y0: nan, x1: nan, y1: nan, x2: nan, y2: nan,
	}
}

// segment emits the cubic from (x1,y1) to (x2,y2) given the next point.
func (c *cardinalState) segment(x, y float64) {
	c.s.CubicTo(
		c.x1+c.k*(c.x2-c.x0), c.y1+c.k*(c.y2-c.y0),
		c.x2+c.k*(c.x1-x), c.y2+c.k*(c.y1-y),
		c.x2, c.y2,
	)
}

func (c *cardinalState) shift(x, y float64) {
	c.x0, c.x1, c.x2 = c.x1, c.x2, x
	c.y0, c.y1, c.y2 = c.y1, c.y2, y
}

type cardinal struct{ cardinalState }

func newCardinal(s Sink, tension float64) tracer {
	return &cardinal{newCardinalState(s, tension)}
}

func (c *cardinal) point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.s.MoveTo(x, y)
	case 1:
		c.state = 2
		c.x1, c.y1 = x, y
	case 2:
		c.state = 3
		c.segment(x, y)
	default:
		c.segment(x, y)
	}
	c.shift(x, y)
}

func (c *cardinal) end() {
	switch c.state {
	case 1:
		c.s.Close()
	case 2:
		c.s.LineTo(c.x2, c.y2)
	case 3:
		c.segment(c.x1, c.y1)
	}
}

type cardinalClosed struct {
	cardinalState
	x3, y3, x4, y4, x5, y5 float64
}

func newCardinalClosed(s Sink, tension float64) tracer {
	return &cardinalClosed{cardinalState: newCardinalState(s, tension)}
}

func (c *cardinalClosed) point(x, y float64) {
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
	c.shift(x, y)
}

func (c *cardinalClosed) end() {
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

type cardinalOpen struct{ cardinalState }

func newCardinalOpen(s Sink, tension float64) tracer {
	return &cardinalOpen{newCardinalState(s, tension)}
}

func (c *cardinalOpen) point(x, y float64) {
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
	c.shift(x, y)
}

func (c *cardinalOpen) end() {
	if c.state == 3 {
		c.s.Close()
	}
}
