package texture

import "fmt"

// RowOrder declares which end of the image the first stored scanline
// belongs to. Image libraries (including Go's image package) store the
// top row first; GPU texture memory stores the bottom row first.
type RowOrder uint8

const (
	// TopFirst means the first stored row is the top of the image.
	TopFirst RowOrder = iota

	// BottomFirst means the first stored row is the bottom of the
	// image. This is the GPU convention; flat sequences produced by
	// this package are always BottomFirst.
	BottomFirst
)

// String returns the string representation of the row order.
func (o RowOrder) String() string {
	switch o {
	case TopFirst:
		return "TopFirst"
	case BottomFirst:
		return "BottomFirst"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(o))
	}
}

// FlipRows returns a copy of flat with its scanlines in reverse order.
// Pixel content within each scanline is untouched. The input is never
// mutated; element types are only guaranteed copyable.
//
// FlipRows is its own inverse: flipping twice restores the original
// sequence.
//
// Returns ErrDimensionMismatch if width does not evenly divide
// len(flat). An empty sequence flips to an empty sequence regardless
// of width.
func FlipRows[P Pixel](flat []P, width int) ([]P, error) {
	if len(flat) == 0 {
		return []P{}, nil
	}
	if width <= 0 || len(flat)%width != 0 {
		return nil, fmt.Errorf("%w: %d elements, row width %d", ErrDimensionMismatch, len(flat), width)
	}
	return flipRows(flat, width), nil
}

// flipRows is the unchecked core of FlipRows. Callers must have
// verified that width > 0 and width divides len(flat).
func flipRows[P Pixel](flat []P, width int) []P {
	out := make([]P, len(flat))
	height := len(flat) / width
	for row := 0; row < height; row++ {
		src := flat[row*width : (row+1)*width]
		dst := out[(height-1-row)*width:]
		copy(dst, src)
	}
	return out
}
