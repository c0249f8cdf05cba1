// Package curve implements the closed set of curve interpolations used to
// connect the points of line and area series.
//
// Every [Curve] traces a polyline of pixel coordinates into a [Sink]. A
// *gg.Path from github.com/gogpu/gg satisfies Sink, so traced curves can be
// measured, hit-tested or exported with [PathData]:
//
//	c, _ := curve.Lookup("monotone-x")
//	p := c.Path(points)
//	fmt.Println(curve.PathData(p))
//
// The algorithms are the classic ones: uniform B-spline (basis), bundle
// (straightened basis), cardinal, centripetal Catmull-Rom, monotone cubic
// in x or y, natural cubic spline, and step functions. Open variants skip
// the first and last segment; closed variants wrap around.
//
// Tracing a single point emits a move followed by a close so renderers can
// draw a dot. Tracing no points emits nothing.
package curve

import (
	"sort"

	"github.com/gogpu/gg"
)

// Interpolation names.
const (
	Basis            = "basis"
	BasisClosed      = "basis-closed"
	BasisOpen        = "basis-open"
	Bundle           = "bundle"
	Cardinal         = "cardinal"
	CardinalClosed   = "cardinal-closed"
	CardinalOpen     = "cardinal-open"
	CatmullRom       = "catmull-rom"
	CatmullRomClosed = "catmull-rom-closed"
	CatmullRomOpen   = "catmull-rom-open"
	MonotoneX        = "monotone-x"
	MonotoneY        = "monotone-y"
	Natural          = "natural"
	Linear           = "linear"
	LinearClosed     = "linear-closed"
	Step             = "step"
	StepAfter        = "step-after"
	StepBefore       = "step-before"
)

// Sink receives path commands. *gg.Path implements it.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

var _ Sink = (*gg.Path)(nil)

// tracer is the per-trace state machine of one interpolation.
type tracer interface {
	point(x, y float64)
	end()
}

// Curve is one interpolation algorithm.
type Curve struct {
	name string
	open func(Sink) tracer
}

// Name returns the interpolation name.
func (c Curve) Name() string { return c.name }

// Trace emits the curve through pts into s.
func (c Curve) Trace(s Sink, pts []gg.Point) {
	if c.open == nil {
		return
	}
	t := c.open(s)
	for _, p := range pts {
		t.point(p.X, p.Y)
	}
	t.end()
}

// Path traces pts into a new path.
func (c Curve) Path(pts []gg.Point) *gg.Path {
	p := gg.NewPath()
	c.Trace(p, pts)
	return p
}

// Area traces the region between top and bottom. The top edge is traced
// left to right, the bottom edge right to left, and the outline closed.
// Both edges use c.
func (c Curve) Area(top, bottom []gg.Point) *gg.Path {
	p := gg.NewPath()
	if len(top) == 0 {
		return p
	}
	c.Trace(edgeSink{Sink: p}, top)

	rev := make([]gg.Point, len(bottom))
	for i, pt := range bottom {
		rev[len(bottom)-1-i] = pt
	}
	c.Trace(edgeSink{Sink: p, join: true}, rev)
	p.Close()
	return p
}

// edgeSink drops closes and optionally joins the first move to the
// current point.
type edgeSink struct {
	Sink
	join bool
}

func (e edgeSink) MoveTo(x, y float64) {
	if e.join {
		e.Sink.LineTo(x, y)
		return
	}
	e.Sink.MoveTo(x, y)
}

func (edgeSink) Close() {}

// swapSink mirrors coordinates across the diagonal.
type swapSink struct{ s Sink }

func (w swapSink) MoveTo(x, y float64) { w.s.MoveTo(y, x) }
func (w swapSink) LineTo(x, y float64) { w.s.LineTo(y, x) }
func (w swapSink) Close()              { w.s.Close() }
func (w swapSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	w.s.CubicTo(c1y, c1x, c2y, c2x, y, x)
}

var registry = map[string]func(Sink) tracer{
	Basis:            newBasis,
	BasisClosed:      newBasisClosed,
	BasisOpen:        newBasisOpen,
	Bundle:           func(s Sink) tracer { return newBundle(s, 0.85) },
	Cardinal:         func(s Sink) tracer { return newCardinal(s, 0) },
	CardinalClosed:   func(s Sink) tracer { return newCardinalClosed(s, 0) },
	CardinalOpen:     func(s Sink) tracer { return newCardinalOpen(s, 0) },
	CatmullRom:       func(s Sink) tracer { return newCatmullRom(s, 0.5) },
	CatmullRomClosed: func(s Sink) tracer { return newCatmullRomClosed(s, 0.5) },
	CatmullRomOpen:   func(s Sink) tracer { return newCatmullRomOpen(s, 0.5) },
	MonotoneX:        newMonotoneX,
	MonotoneY:        newMonotoneY,
	Natural:          newNatural,
	Linear:           newLinear,
	LinearClosed:     newLinearClosed,
	Step:             func(s Sink) tracer { return newStep(s, 0.5) },
	StepAfter:        func(s Sink) tracer { return newStep(s, 1) },
	StepBefore:       func(s Sink) tracer { return newStep(s, 0) },
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Curve, bool) {
	open, ok := registry[name]
	if !ok {
		return Curve{}, false
	}
	return Curve{name: name, open: open}, true
}

// MustLookup is like Lookup but panics on unknown names. It is meant for
// package-level initialisation with constant names.
func MustLookup(name string) Curve {
	c, ok := Lookup(name)
	if !ok {
		panic("curve: unknown interpolation " + name)
	}
	return c
}

// IsInterpolation reports whether name is in the closed set.
func IsInterpolation(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the closed set of interpolation names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
