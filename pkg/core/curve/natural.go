package curve

// natural is a natural cubic spline: second derivative zero at both ends.
type natural struct {
	s  Sink
	xs []float64
	ys []float64
}

func newNatural(s Sink) tracer { return &natural{s: s} }

func (c *natural) point(x, y float64) {
	c.xs = append(c.xs, x)
	c.ys = append(c.ys, y)
}

func (c *natural) end() {
	n := len(c.xs)
	if n == 0 {
		return
	}
	c.s.MoveTo(c.xs[0], c.ys[0])
	switch n {
	case 1:
		c.s.Close()
	case 2:
		c.s.LineTo(c.xs[1], c.ys[1])
	default:
		ax, bx := controlPoints(c.xs)
		ay, by := controlPoints(c.ys)
		for i := 1; i < n; i++ {
			c.s.CubicTo(ax[i-1], ay[i-1], bx[i-1], by[i-1], c.xs[i], c.ys[i])
		}
	}
}

// controlPoints solves the tridiagonal system for the inner Bézier control
// points of one coordinate. It needs at least three values.
func controlPoints(x []float64) (a, b []float64) {
	n := len(x) - 1
	a = make([]float64, n)
	b = make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}
