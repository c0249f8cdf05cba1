package curve

import "math"

// basisSegment emits the cubic B-spline segment for control points
// (x0,y0), (x1,y1) and (x,y).
func basisSegment(s Sink, x0, y0, x1, y1, x, y float64) {
	s.CubicTo(
		(2*x0+x1)/3, (2*y0+y1)/3,
		(x0+2*x1)/3, (y0+2*y1)/3,
		(x0+4*x1+x)/6, (y0+4*y1+y)/6,
	)
}

type basis struct {
	s              Sink
	state          int
	x0, y0, x1, y1 float64
}

func newBasis(s Sink) tracer {
	return &basis{s: s, x0: math.NaN(), y0: math.NaN(), x1: math.NaN(), y1: math.NaN()}
}

func (c *basis) point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.s.MoveTo(x, y)
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		c.s.LineTo((5*c.x0+c.x1)/6, (5*c.y0+c.y1)/6)
		basisSegment(c.s, c.x0, c.y0, c.x1, c.y1, x, y)
	default:
		basisSegment(c.s, c.x0, c.y0, c.x1, c.y1, x, y)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basis) end() {
	switch c.state {
	case 3:
		basisSegment(c.s, c.x0, c.y0, c.x1, c.y1, c.x1, c.y1)
		c.s.LineTo(c.x1, c.y1)
	case 2:
		c.s.LineTo(c.x1, c.y1)
	case 1:
		c.s.Close()
	}
}

type basisClosed struct {
	s                      Sink
	state                  int
	x0, y0, x1, y1         float64
	x2, y2, x3, y3, x4, y4 float64
}

func newBasisClosed(s Sink) tracer { return &basisClosed{s: s} }

func (c *basisClosed) point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.x2, c.y2 = x, y
	case 1:
		c.state = 2
		c.x3, c.y3 = x, y
	case 2:
		c.state = 3
		c.x4, c.y4 = x, y
		c.s.MoveTo((c.x0+4*c.x1+x)/6, (c.y0+4*c.y1+y)/6)
	default:
		basisSegment(c.s, c.x0, c.y0, c.x1, c.y1, x, y)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basisClosed) end() {
	switch c.state {
	case 1:
		c.s.MoveTo(c.x2, c.y2)
		c.s.Close()
	case 2:
		c.s.MoveTo((c.x2+2*c.x3)/3, (c.y2+2*c.y3)/3)
		c.s.LineTo((c.x3+2*c.x2)/3, (c.y3+2*c.y2)/3)
		c.s.Close()
	case 3:
		c.point(c.x2, c.y2)
		c.point(c.x3, c.y3)
		c.point(c.x4, c.y4)
	}
}

type basisOpen struct {
	s              Sink
	state          int
	x0, y0, x1, y1 float64
}

func newBasisOpen(s Sink) tracer { return &basisOpen{s: s} }

func (c *basisOpen) point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		c.s.MoveTo((c.x0+4*c.x1+x)/6, (c.y0+4*c.y1+y)/6)
	default:
		c.state = 4
		basisSegment(c.s, c.x0, c.y0, c.x1, c.y1, x, y)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basisOpen) end() {
	if c.state == 3 {
		c.s.Close()
	}
}

// bundle straightens a basis spline towards the chord between its end
// points. beta 1 is a plain basis spline, beta 0 a straight line.
type bundle struct {
	basis *basis
	beta  float64
	xs    []float64
	ys    []float64
}

func newBundle(s Sink, beta float64) tracer {
	return &bundle{basis: newBasis(s).(*basis), beta: beta}
}

func (c *bundle) point(x, y float64) {
	c.xs = append(c.xs, x)
	c.ys = append(c.ys, y)
}

func (c *bundle) end() {
	j := len(c.xs) - 1
	if j > 0 {
		x0, y0 := c.xs[0], c.ys[0]
		dx, dy := c.xs[j]-x0, c.ys[j]-y0
		for i := 0; i <= j; i++ {
			t := float64(i) / float64(j)
			c.basis.point(
				c.beta*c.xs[i]+(1-c.beta)*(x0+t*dx),
				c.beta*c.ys[i]+(1-c.beta)*(y0+t*dy),
			)
		}
	}
	c.basis.end()
}
