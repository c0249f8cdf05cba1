package shape

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/stackchart/pkg/chart"
)

// Kind identifies the rendered form of a shape.
type Kind uint8

const (
	KindPoint Kind = iota + 1
	KindBar
	KindLine
	KindArea
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindArea:
		return "area"
	default:
		return "unknown"
	}
}

// Shape is a hit-testable rendered shape. Kind selects which fields are
// meaningful.
type Shape struct {
	Kind    Kind
	ID      string
	Datum   chart.DataPoint
	Visible bool

	// KindPoint
	Center gg.Point
	Radius float64 // explicit hit radius; 0 uses the point tolerance
	Step   bool    // marker of a step series
	ValueY float64 // scaled value of a step marker

	// KindBar
	Bounds gg.Rect

	// KindLine, KindArea
	Path *gg.Path
}

// Tolerance holds the pixel slack of each hit test.
type Tolerance struct {
	Point float64 // circle radius around markers
	Step  float64 // vertical band around step markers
	Bar   float64 // margin around bars
}

// DefaultTolerance returns the tolerances of a default configuration.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Point: chart.DefaultPointSensitivity,
		Step:  chart.DefaultStepSensitivity,
		Bar:   chart.DefaultBarSensitivity,
	}
}

// ToleranceOf reads tolerances from a configuration.
func ToleranceOf(cfg chart.Config) Tolerance {
	return Tolerance{
		Point: cfg.Point.Sensitivity,
		Step:  cfg.Line.StepSensitivity,
		Bar:   cfg.Bar.Sensitivity,
	}
}

// PointShape returns a marker shape.
func PointShape(d chart.DataPoint, center gg.Point, visible bool) Shape {
	return Shape{Kind: KindPoint, ID: d.ID, Datum: d, Visible: visible, Center: center}
}

// BubbleShape returns a marker whose hit radius is 1.5 times its
// selection radius.
func BubbleShape(d chart.DataPoint, center gg.Point, selectRadius float64, visible bool) Shape {
	s := PointShape(d, center, visible)
	s.Radius = selectRadius * 1.5
	return s
}

// StepShape returns a marker of a step series. valueY is the scaled value.
func StepShape(d chart.DataPoint, center gg.Point, valueY float64, visible bool) Shape {
	s := PointShape(d, center, visible)
	s.Step = true
	s.ValueY = valueY
	return s
}

// BarShape returns a bar covering bounds.
func BarShape(d chart.DataPoint, bounds gg.Rect, visible bool) Shape {
	return Shape{Kind: KindBar, ID: d.ID, Datum: d, Visible: visible, Bounds: bounds}
}

// LineShape returns the path of a line series.
func LineShape(id string, path *gg.Path, visible bool) Shape {
	return Shape{Kind: KindLine, ID: id, Visible: visible, Path: path}
}

// AreaShape returns the outline of an area series.
func AreaShape(id string, path *gg.Path, visible bool) Shape {
	return Shape{Kind: KindArea, ID: id, Visible: visible, Path: path}
}

// Within reports whether pointer falls within s. Boundaries are
// inclusive. Hidden shapes never match; lines and areas always match.
func Within(s Shape, pointer gg.Point, tol Tolerance) bool {
	if !s.Visible {
		return false
	}
	switch s.Kind {
	case KindPoint:
		if s.Step {
			return math.Abs(pointer.Y-s.ValueY) <= tol.Step
		}
		r := s.Radius
		if r == 0 {
			r = tol.Point
		}
		return s.Center.Distance(pointer) <= r
	case KindBar:
		return inflate(s.Bounds, tol.Bar).Contains(pointer)
	case KindLine, KindArea:
		return true
	default:
		return false
	}
}

func inflate(r gg.Rect, by float64) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(r.Min.X-by, r.Min.Y-by),
		Max: gg.Pt(r.Max.X+by, r.Max.Y+by),
	}
}
