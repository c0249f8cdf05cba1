package chart

import "math"

// ShapeType is the visual form a series is drawn with.
type ShapeType string

const (
	TypeLine       ShapeType = "line"
	TypeSpline     ShapeType = "spline"
	TypeStep       ShapeType = "step"
	TypeArea       ShapeType = "area"
	TypeAreaSpline ShapeType = "area-spline"
	TypeAreaStep   ShapeType = "area-step"
	TypeBar        ShapeType = "bar"
	TypeScatter    ShapeType = "scatter"
	TypeBubble     ShapeType = "bubble"
)

// ShapeTypes lists every supported shape type in display order.
var ShapeTypes = []ShapeType{
	TypeLine, TypeSpline, TypeStep,
	TypeArea, TypeAreaSpline, TypeAreaStep,
	TypeBar, TypeScatter, TypeBubble,
}

// Valid reports whether t is one of the supported shape types.
func (t ShapeType) Valid() bool {
	for _, s := range ShapeTypes {
		if s == t {
			return true
		}
	}
	return false
}

// IsSpline reports whether t connects points with the spline interpolation.
func (t ShapeType) IsSpline() bool { return t == TypeSpline || t == TypeAreaSpline }

// IsStep reports whether t connects points with a step interpolation.
func (t ShapeType) IsStep() bool { return t == TypeStep || t == TypeAreaStep }

// IsArea reports whether t fills the region below its line.
func (t ShapeType) IsArea() bool {
	return t == TypeArea || t == TypeAreaSpline || t == TypeAreaStep
}

// IsLine reports whether t is drawn as a connected path, areas included.
func (t ShapeType) IsLine() bool {
	return t == TypeLine || t.IsSpline() || t.IsStep() || t.IsArea()
}

// IsBar reports whether t is drawn as bars.
func (t ShapeType) IsBar() bool { return t == TypeBar }

// IsBubble reports whether t is drawn as value-sized circles.
func (t ShapeType) IsBubble() bool { return t == TypeBubble }

// IsPoint reports whether t is drawn as standalone markers.
func (t ShapeType) IsPoint() bool { return t == TypeScatter || t == TypeBubble }

// DataPoint is one value of a series.
type DataPoint struct {
	X     XValue  `json:"x"`
	Value float64 `json:"value"`
	ID    string  `json:"id"`
	Index int     `json:"index"`
}

// Plotted reports whether the point has both coordinates.
func (d DataPoint) Plotted() bool {
	return d.X.Valid() && !math.IsNaN(d.Value)
}

// Series is an ordered list of points sharing one id.
type Series struct {
	ID     string      `json:"id"`
	Values []DataPoint `json:"values"`
}

// NewSeries builds a series from parallel x and value slices. Extra
// elements of the longer slice are ignored. Point ids and indices are set
// from the series.
func NewSeries(id string, xs []XValue, values []float64) Series {
	n := min(len(xs), len(values))
	s := Series{ID: id, Values: make([]DataPoint, n)}
	for i := 0; i < n; i++ {
		s.Values[i] = DataPoint{X: xs[i], Value: values[i], ID: id, Index: i}
	}
	return s
}

// Sum returns the sum of all plotted values.
func (s Series) Sum() float64 {
	var total float64
	for _, d := range s.Values {
		if d.Plotted() {
			total += d.Value
		}
	}
	return total
}
