package pipeline

import (
	"bytes"

	"github.com/gogpu/gg"

	"github.com/matzehuels/stackchart/pkg/core/curve"
	"github.com/matzehuels/stackchart/pkg/core/layout"
)

// ExportPaths writes one line per series: its id, a tab and SVG path data.
// Lines and areas use their traced outline, bars one closed rectangle per
// block and markers one move-to per point.
func ExportPaths(l layout.Layout) []byte {
	var buf bytes.Buffer
	for _, sl := range l.Series {
		buf.WriteString(sl.ID)
		buf.WriteByte('\t')
		buf.WriteString(curve.PathData(outline(sl)))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func outline(sl layout.SeriesLayout) *gg.Path {
	switch {
	case sl.Area != nil:
		return sl.Area
	case sl.Line != nil:
		return sl.Line
	}

	p := gg.NewPath()
	if len(sl.Bars) > 0 {
		for _, b := range sl.Bars {
			p.MoveTo(b.Left, b.Bottom)
			p.LineTo(b.Right, b.Bottom)
			p.LineTo(b.Right, b.Top)
			p.LineTo(b.Left, b.Top)
			p.Close()
		}
		return p
	}
	for _, pt := range sl.Points {
		p.MoveTo(pt.X, pt.Y)
	}
	return p
}
