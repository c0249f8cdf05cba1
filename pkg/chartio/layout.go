package chartio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/layout"
)

// Document is the serialized form of a computed layout.
type Document struct {
	// ID identifies the layout pass that produced the document.
	ID     string  `json:"id,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Bars   Category `json:"bars"`
	Lines  Category `json:"lines"`
	Points Category `json:"points"`

	Series []Series `json:"series"`
}

// Category holds the group indices and stacking order of one shape family.
type Category struct {
	Indices map[string]int     `json:"indices,omitempty"`
	Order   []string           `json:"order,omitempty"`
	Width   float64            `json:"width,omitempty"`
	Widths  map[string]float64 `json:"widths,omitempty"`
}

// Series is the geometry of one series.
type Series struct {
	ID     string          `json:"id"`
	Type   chart.ShapeType `json:"type"`
	Axis   string          `json:"axis"`
	Group  int             `json:"group"`
	Curve  string          `json:"curve,omitempty"`
	Path   string          `json:"path,omitempty"`
	Points []Point         `json:"points"`
	Bars   []Bar           `json:"bars,omitempty"`
}

// Point is one positioned data point.
type Point struct {
	Index  int          `json:"index"`
	X      chart.XValue `json:"x"`
	Value  float64      `json:"value"`
	PX     float64      `json:"px"`
	PY     float64      `json:"py"`
	Base   float64      `json:"base"`
	Radius float64      `json:"radius,omitempty"`
}

// Bar is one bar rectangle; Y is its smaller pixel y.
type Bar struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Export converts a layout into its serialized form.
func Export(l layout.Layout, id string) Document {
	doc := Document{
		ID:     id,
		Width:  l.Width,
		Height: l.Height,
		Bars:   exportCategory(l.Bars),
		Lines:  exportCategory(l.Lines),
		Points: exportCategory(l.Points),
		Series: make([]Series, len(l.Series)),
	}
	for i, sl := range l.Series {
		doc.Series[i] = exportSeries(sl)
	}
	return doc
}

func exportCategory(c layout.Category) Category {
	out := Category{Width: c.Offset.Width, Widths: c.Offset.ByID}
	if len(c.Indices.ByID) > 0 {
		out.Indices = c.Indices.ByID
	}
	if len(c.Order) > 0 {
		out.Order = c.Order
	}
	return out
}

func exportSeries(sl layout.SeriesLayout) Series {
	s := Series{
		ID:     sl.ID,
		Type:   sl.Type,
		Axis:   sl.Axis,
		Group:  sl.Group,
		Curve:  sl.Curve,
		Points: make([]Point, len(sl.Points)),
	}
	if sl.Line != nil || sl.Area != nil {
		s.Path = sl.PathData()
	}
	for i, p := range sl.Points {
		s.Points[i] = Point{
			Index:  p.Datum.Index,
			X:      p.Datum.X,
			Value:  p.Datum.Value,
			PX:     p.X,
			PY:     p.Y,
			Base:   p.Base,
			Radius: p.Radius,
		}
	}
	for _, b := range sl.Bars {
		s.Bars = append(s.Bars, Bar{Index: b.Index, X: b.Left, Y: b.Bottom, Width: b.Width(), Height: b.Height()})
	}
	return s
}

// MarshalLayout serializes a layout to pretty-printed JSON bytes.
func MarshalLayout(l layout.Layout, id string) ([]byte, error) {
	return json.MarshalIndent(Export(l, id), "", "  ")
}

// WriteLayout encodes a layout as JSON and writes it to w.
func WriteLayout(w io.Writer, l layout.Layout, id string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(l, id)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a layout to a JSON file.
func WriteLayoutFile(l layout.Layout, id, path string) error {
	data, err := MarshalLayout(l, id)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// UnmarshalLayout deserializes a document and checks its frame size.
func UnmarshalLayout(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return Document{}, fmt.Errorf("layout must have a positive frame size")
	}
	return doc, nil
}

// ReadLayoutFile reads a document from a JSON file.
func ReadLayoutFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
