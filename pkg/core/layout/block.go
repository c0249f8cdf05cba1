package layout

import "github.com/gogpu/gg"

// Block is the rectangle of one bar in pixel coordinates. Bottom is the
// smaller pixel y, so on a screen it is the visual top edge of a positive
// bar.
type Block struct {
	SeriesID    string
	Index       int
	Left, Right float64
	Bottom, Top float64
}

// Width returns the horizontal span of the block.
func (b Block) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the block.
func (b Block) Height() float64 { return b.Top - b.Bottom }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return (b.Bottom + b.Top) / 2 }

// Rect returns the block as a gg rectangle.
func (b Block) Rect() gg.Rect {
	return gg.NewRect(gg.Pt(b.Left, b.Bottom), gg.Pt(b.Right, b.Top))
}

// newBlock normalizes two corners into a block.
func newBlock(id string, index int, x0, y0, x1, y1 float64) Block {
	r := gg.NewRect(gg.Pt(x0, y0), gg.Pt(x1, y1))
	return Block{
		SeriesID: id,
		Index:    index,
		Left:     r.Min.X,
		Right:    r.Max.X,
		Bottom:   r.Min.Y,
		Top:      r.Max.Y,
	}
}
