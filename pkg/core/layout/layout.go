package layout

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/curve"
	"github.com/matzehuels/stackchart/pkg/core/scale"
	"github.com/matzehuels/stackchart/pkg/core/shape"
)

// Default frame size used when no size option is given.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Layout is the result of one layout pass.
type Layout struct {
	Width, Height float64

	// Per-category group indices and stacking order.
	Bars   Category
	Lines  Category
	Points Category

	// Series holds every visible series in declared order.
	Series []SeriesLayout

	// Shapes holds the hit-testable shapes of all series.
	Shapes    []shape.Shape
	Tolerance shape.Tolerance
}

// Category is one family of shapes laid out together.
type Category struct {
	Indices shape.Indices
	// Order is the stacking order of the category's series.
	Order []string
	// Offset is the bar width descriptor; zero for non-bar categories.
	Offset shape.Offset
}

// SeriesLayout is the computed geometry of one series.
type SeriesLayout struct {
	ID    string
	Type  chart.ShapeType
	Axis  string
	Group int
	// Curve is the interpolation name connecting points of line series.
	Curve  string
	Points []Point
	Bars   []Block
	// Line and Area are the traced outlines; nil when not applicable.
	Line *gg.Path
	Area *gg.Path
}

// Point is the position of one data point.
type Point struct {
	Datum chart.DataPoint
	X, Y  float64
	// Base is the stack baseline the point's shape starts from.
	Base float64
	// Radius is the marker radius.
	Radius float64
}

// Lookup returns the layout of a series.
func (l *Layout) Lookup(id string) (*SeriesLayout, bool) {
	for i := range l.Series {
		if l.Series[i].ID == id {
			return &l.Series[i], true
		}
	}
	return nil, false
}

// SetVisible toggles hit testing for every shape of a series.
func (l *Layout) SetVisible(id string, visible bool) {
	for i := range l.Shapes {
		if l.Shapes[i].ID == id {
			l.Shapes[i].Visible = visible
		}
	}
}

// Hits returns every shape within pointer, in drawing order.
func (l *Layout) Hits(pointer gg.Point) []shape.Shape {
	var out []shape.Shape
	for _, s := range l.Shapes {
		if shape.Within(s, pointer, l.Tolerance) {
			out = append(out, s)
		}
	}
	return out
}

// Option configures Build.
type Option func(*options)

type options struct {
	width, height float64
	tickInterval  float64
	sub           bool
}

// WithSize sets the frame size recorded in the layout and used as the
// fallback tick interval.
func WithSize(w, h float64) Option {
	return func(o *options) { o.width, o.height = w, h }
}

// WithTickInterval fixes the pixel distance between x ticks used for bar
// widths instead of deriving it from the data.
func WithTickInterval(px float64) Option {
	return func(o *options) { o.tickInterval = px }
}

// WithSub lays out against the secondary (navigator) scales.
func WithSub() Option {
	return func(o *options) { o.sub = true }
}

// Build runs one layout pass over the visible series of c.
func Build(c *chart.Chart, scales scale.Provider, opts ...Option) Layout {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	cfg := c.Config
	cfg.SetDefaults()

	b := builder{chart: c, cfg: cfg, scales: scales, opts: o}
	return b.build()
}

type builder struct {
	chart  *chart.Chart
	cfg    chart.Config
	scales scale.Provider
	opts   options
}

// category collects targets and indices of one shape family.
func (b *builder) category(pred func(chart.ShapeType) bool, groups [][]string) ([]chart.Series, []chart.Series, shape.Indices, *shape.Env) {
	declared := b.chart.Visible(b.chart.OfType(pred))
	ordered := b.chart.Ordered(declared)
	ix := shape.ComputeIndices(declared, groups)
	env := shape.NewEnv(b.chart, b.scales, ordered, ix)
	if b.opts.sub {
		env = env.WithSub()
	}
	return declared, ordered, ix, env
}

func (b *builder) build() Layout {
	l := Layout{
		Width:     b.opts.width,
		Height:    b.opts.height,
		Tolerance: shape.ToleranceOf(b.cfg),
	}
	perSeries := make(map[string]SeriesLayout)

	b.buildBars(&l, perSeries)
	b.buildLines(&l, perSeries)
	b.buildPoints(&l, perSeries)

	for _, s := range b.chart.Visible(nil) {
		sl, ok := perSeries[s.ID]
		if !ok {
			continue
		}
		l.Series = append(l.Series, sl)
	}
	for _, sl := range l.Series {
		l.Shapes = append(l.Shapes, b.shapesOf(sl)...)
	}
	return l
}

func (b *builder) newSeries(id string, group int) SeriesLayout {
	return SeriesLayout{
		ID:    id,
		Type:  b.chart.TypeOf(id),
		Axis:  b.chart.AxisOf(id),
		Group: group,
	}
}

func (b *builder) y0(id string) float64 {
	if b.scales == nil {
		return 0
	}
	return b.scales.Y(id, b.opts.sub).Apply(0)
}

// valueY maps v on the y axis of id without stacking.
func (b *builder) valueY(id string, v float64) float64 {
	if b.scales == nil {
		return v
	}
	return b.scales.Y(id, b.opts.sub).Apply(v)
}

func (b *builder) xScale() scale.Scale {
	if b.scales == nil {
		return scale.Identity
	}
	return b.scales.X(b.opts.sub)
}

// baseline resolves the stack offset, falling back to y0 for a zero result.
func baseline(offset, y0 float64) float64 {
	if offset == 0 {
		return y0
	}
	return offset
}

func (b *builder) buildBars(l *Layout, out map[string]SeriesLayout) {
	declared, ordered, ix, env := b.category(chart.ShapeType.IsBar, b.cfg.Groups)

	tick := b.opts.tickInterval
	if tick <= 0 {
		tick = TickInterval(declared, b.xScale(), b.opts.width)
	}
	off := BarWidth(b.cfg, tick, ix.Count(), declared)
	l.Bars = Category{Indices: ix, Order: chart.IDs(ordered), Offset: off}

	x := env.X(off, ix.Count(), ix, b.cfg.Bar.Padding)
	y := env.Y(ix)
	stack := env.Offset(ordered, ix)

	for _, s := range declared {
		sl := b.newSeries(s.ID, ix.Of(s.ID))
		width := off.Width
		if w, ok := off.ByID[s.ID]; ok && w != 0 {
			width = w
		}
		for i, d := range s.Values {
			if !d.Plotted() {
				continue
			}
			y0 := b.y0(s.ID)
			base := baseline(stack(d, i), y0)
			posX := x(d)
			posY := y(d) - (y0 - base)

			sl.Points = append(sl.Points, Point{Datum: d, X: posX, Y: posY, Base: base})
			sl.Bars = append(sl.Bars, newBlock(s.ID, d.Index, posX, base, posX+width, posY))
		}
		out[s.ID] = sl
	}
}

func (b *builder) buildLines(l *Layout, out map[string]SeriesLayout) {
	declared, ordered, ix, env := b.category(chart.ShapeType.IsLine, b.cfg.Groups)
	l.Lines = Category{Indices: ix, Order: chart.IDs(ordered)}

	x := env.X(shape.Width(0), ix.Count(), ix, 0)
	y := env.Y(ix)
	stack := env.Offset(ordered, ix)

	for _, s := range declared {
		sl := b.newSeries(s.ID, ix.Of(s.ID))
		c := shape.Curve(sl.Type, b.cfg.Spline.Interpolation, b.cfg.Line.StepType)
		sl.Curve = c.Name()

		var top, bottom []gg.Point
		for i, d := range s.Values {
			if !d.Plotted() {
				continue
			}
			y0 := b.y0(s.ID)
			base := baseline(stack(d, i), y0)
			posX := x(d)
			posY := y(d) - (y0 - base)

			sl.Points = append(sl.Points, Point{Datum: d, X: posX, Y: posY, Base: base, Radius: b.cfg.Point.Radius})
			top = append(top, gg.Pt(posX, posY))
			bottom = append(bottom, gg.Pt(posX, base))
		}
		sl.Line = c.Path(top)
		if sl.Type.IsArea() {
			sl.Area = c.Area(top, bottom)
		}
		out[s.ID] = sl
	}
}

func (b *builder) buildPoints(l *Layout, out map[string]SeriesLayout) {
	declared, ordered, ix, env := b.category(chart.ShapeType.IsPoint, nil)
	l.Points = Category{Indices: ix, Order: chart.IDs(ordered)}

	x := env.X(shape.Width(0), ix.Count(), ix, 0)
	y := env.Y(ix)
	maxAbs := maxAbsValue(declared, b.chart)

	for _, s := range declared {
		sl := b.newSeries(s.ID, ix.Of(s.ID))
		for _, d := range s.Values {
			if !d.Plotted() {
				continue
			}
			r := b.cfg.Point.Radius
			if sl.Type.IsBubble() {
				r = bubbleRadius(d.Value, maxAbs, b.cfg.Bubble.MaxRadius)
			}
			sl.Points = append(sl.Points, Point{Datum: d, X: x(d), Y: y(d), Base: b.y0(s.ID), Radius: r})
		}
		out[s.ID] = sl
	}
}

// bubbleRadius scales a bubble so its area is proportional to |v|.
func bubbleRadius(v, maxAbs, maxRadius float64) float64 {
	if maxAbs == 0 {
		return 0
	}
	return maxRadius * math.Sqrt(math.Abs(v)/maxAbs)
}

func maxAbsValue(series []chart.Series, c *chart.Chart) float64 {
	var m float64
	for _, s := range series {
		if !c.TypeOf(s.ID).IsBubble() {
			continue
		}
		for _, d := range s.Values {
			if d.Plotted() {
				m = math.Max(m, math.Abs(d.Value))
			}
		}
	}
	return m
}

func (b *builder) shapesOf(sl SeriesLayout) []shape.Shape {
	var out []shape.Shape
	switch {
	case sl.Type.IsBar():
		for i, blk := range sl.Bars {
			out = append(out, shape.BarShape(sl.Points[i].Datum, blk.Rect(), true))
		}
	case sl.Type.IsLine():
		if sl.Area != nil {
			out = append(out, shape.AreaShape(sl.ID, sl.Area, true))
		} else {
			out = append(out, shape.LineShape(sl.ID, sl.Line, true))
		}
		for _, p := range sl.Points {
			center := gg.Pt(p.X, p.Y)
			if sl.Type.IsStep() {
				out = append(out, shape.StepShape(p.Datum, center, b.valueY(sl.ID, p.Datum.Value), true))
			} else {
				out = append(out, shape.PointShape(p.Datum, center, true))
			}
		}
	case sl.Type.IsBubble():
		for _, p := range sl.Points {
			out = append(out, shape.BubbleShape(p.Datum, gg.Pt(p.X, p.Y), p.Radius, true))
		}
	default:
		for _, p := range sl.Points {
			out = append(out, shape.PointShape(p.Datum, gg.Pt(p.X, p.Y), true))
		}
	}
	return out
}

// PathData returns the SVG path data of the series outline, the area when
// present and the line otherwise.
func (sl SeriesLayout) PathData() string {
	if sl.Area != nil {
		return curve.PathData(sl.Area)
	}
	return curve.PathData(sl.Line)
}
