package curve

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// PathData formats p as SVG path data ("M0,0L10,5C...Z"). Coordinates are
// rounded to three decimals.
func PathData(p *gg.Path) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			b.WriteByte('M')
			writePoint(&b, e.Point)
		case gg.LineTo:
			b.WriteByte('L')
			writePoint(&b, e.Point)
		case gg.QuadTo:
			b.WriteByte('Q')
			writePoint(&b, e.Control)
			b.WriteByte(',')
			writePoint(&b, e.Point)
		case gg.CubicTo:
			b.WriteByte('C')
			writePoint(&b, e.Control1)
			b.WriteByte(',')
			writePoint(&b, e.Control2)
			b.WriteByte(',')
			writePoint(&b, e.Point)
		case gg.Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p gg.Point) {
	b.WriteString(formatCoord(p.X))
	b.WriteByte(',')
	b.WriteString(formatCoord(p.Y))
}

func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
