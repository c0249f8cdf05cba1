package curve

type linear struct {
	s     Sink
	state int
}

func newLinear(s Sink) tracer { return &linear{s: s} }

func (c *linear) point(x, y float64) {
	if c.state == 0 {
		c.state = 1
		c.s.MoveTo(x, y)
		return
	}
	c.state = 2
	c.s.LineTo(x, y)
}

func (c *linear) end() {
	if c.state == 1 {
		c.s.Close()
	}
}

type linearClosed struct {
	s       Sink
	started bool
}

func newLinearClosed(s Sink) tracer { return &linearClosed{s: s} }

func (c *linearClosed) point(x, y float64) {
	if c.started {
		c.s.LineTo(x, y)
		return
	}
	c.started = true
	c.s.MoveTo(x, y)
}

func (c *linearClosed) end() {
	if c.started {
		c.s.Close()
	}
}

// step draws horizontal-then-vertical segments. t places the vertical
// segment: 0 at the previous x, 1 at the next x, 0.5 halfway.
type step struct {
	s     Sink
	t     float64
	state int
	x, y  float64
}

func newStep(s Sink, t float64) tracer { return &step{s: s, t: t} }

func (c *step) point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.s.MoveTo(x, y)
	default:
		c.state = 2
		if c.t <= 0 {
			c.s.LineTo(c.x, y)
			c.s.LineTo(x, y)
		} else {
			x1 := c.x*(1-c.t) + x*c.t
			c.s.LineTo(x1, c.y)
			c.s.LineTo(x1, y)
		}
	}
	c.x, c.y = x, y
}

func (c *step) end() {
	if 0 < c.t && c.t < 1 && c.state == 2 {
		c.s.LineTo(c.x, c.y)
	}
	if c.state == 1 {
		c.s.Close()
	}
}
