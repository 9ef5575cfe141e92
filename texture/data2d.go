package texture

import "fmt"

// Data2D is the flatten capability for two-dimensional pixel data.
//
// The RowOrder argument to Flatten declares the convention of the
// structure's own scanlines; the returned flat sequence is always in
// GPU order (bottom row first). A structure stored top-first is
// therefore flipped as part of the call — this is not optional, since
// omitting the flip silently turns the final image upside down.
type Data2D[P Pixel] interface {
	// Format returns the client format of the element type.
	Format() ClientFormat

	// Dimensions returns (width, height). A degenerate (empty)
	// structure reports (0, 0), never an error.
	Dimensions() (width, height int)

	// Flatten returns the pixels as a flat sequence in GPU order,
	// width varying fastest. order declares the row convention of the
	// structure's storage.
	Flatten(order RowOrder) []P
}

// Rows is an owned two-dimensional pixel container: a slice of rows.
//
// Rows must be rectangular — every row the same length. This is the
// caller's obligation and is not validated; Dimensions and Flatten
// take the first row's length as the width.
type Rows[P Pixel] [][]P

// Format returns the client format of the element type.
func (r Rows[P]) Format() ClientFormat { return FormatOf[P]() }

// Dimensions returns (width, height): height is the number of rows,
// width the length of the first row, or (0, 0) when there are no rows.
func (r Rows[P]) Dimensions() (width, height int) {
	if len(r) == 0 {
		return 0, 0
	}
	return len(r[0]), len(r)
}

// Flatten concatenates the rows into a flat sequence in GPU order
// (bottom row first). order declares the convention of r's storage:
// TopFirst storage is flipped, BottomFirst storage is concatenated
// as-is.
func (r Rows[P]) Flatten(order RowOrder) []P {
	width, height := r.Dimensions()
	flat := make([]P, 0, width*height)
	if order == TopFirst {
		// Row 0 is the top of the image; the GPU wants the bottom row
		// first, so emit rows back to front.
		for i := len(r) - 1; i >= 0; i-- {
			flat = append(flat, r[i]...)
		}
		return flat
	}
	for _, row := range r {
		flat = append(flat, row...)
	}
	return flat
}

// RowsFromFlat reconstructs a Rows container from a flat sequence in
// GPU order (bottom row first). width is the row length in elements;
// order declares the row convention the reconstructed container should
// use.
//
// Returns ErrDimensionMismatch when width does not evenly divide
// len(flat). An empty sequence reconstructs to an empty container for
// any non-negative width.
func RowsFromFlat[P Pixel](flat []P, width int, order RowOrder) (Rows[P], error) {
	if len(flat) == 0 {
		if width < 0 {
			return nil, fmt.Errorf("%w: negative width %d", ErrDimensionMismatch, width)
		}
		return Rows[P]{}, nil
	}
	if width <= 0 || len(flat)%width != 0 {
		return nil, fmt.Errorf("%w: %d elements, row width %d", ErrDimensionMismatch, len(flat), width)
	}

	height := len(flat) / width
	rows := make(Rows[P], height)
	for i := range rows {
		src := i
		if order == TopFirst {
			// Container row 0 is the top of the image, which sits at
			// the end of the GPU-ordered sequence.
			src = height - 1 - i
		}
		row := make([]P, width)
		copy(row, flat[src*width:(src+1)*width])
		rows[i] = row
	}
	return rows, nil
}

var _ Data2D[RGBA8] = Rows[RGBA8]{}
