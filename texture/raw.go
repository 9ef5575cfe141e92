package texture

import "fmt"

// Raw2D is an owned, contiguous two-dimensional pixel buffer with an
// optional row stride for alignment. Stride is measured in elements,
// not bytes, and must be at least Width; the elements between Width
// and Stride on each row are padding and never reach the flat
// sequence.
//
// Raw2D is the bridge type for pixel data that arrives as one flat
// allocation with explicit geometry (decoders, mapped files, foreign
// APIs) rather than as nested rows.
type Raw2D[P Pixel] struct {
	// Pix holds the pixel elements, row after row, Stride elements per row.
	Pix []P

	// Width is the row width in pixels.
	Width int

	// Height is the number of rows.
	Height int

	// Stride is the distance in elements between vertically adjacent
	// pixels. Stride >= Width.
	Stride int
}

// NewRaw2D creates a tightly packed buffer (stride == width) with
// zeroed pixel data.
func NewRaw2D[P Pixel](width, height int) (*Raw2D[P], error) {
	return NewRaw2DWithStride[P](width, height, width)
}

// NewRaw2DWithStride creates a buffer with a custom row stride for
// alignment. Stride must be at least width.
func NewRaw2DWithStride[P Pixel](width, height, stride int) (*Raw2D[P], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	return &Raw2D[P]{
		Pix:    make([]P, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// WrapRaw2D creates a Raw2D over existing pixel data without copying.
// The caller must ensure pix remains valid for the buffer's lifetime.
func WrapRaw2D[P Pixel](pix []P, width, height, stride int) (*Raw2D[P], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	if len(pix) < stride*height {
		return nil, fmt.Errorf("%w: have %d elements, need %d", ErrDataTooSmall, len(pix), stride*height)
	}
	return &Raw2D[P]{
		Pix:    pix[:stride*height],
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// Format returns the client format of the element type.
func (b *Raw2D[P]) Format() ClientFormat { return FormatOf[P]() }

// Dimensions returns (width, height).
func (b *Raw2D[P]) Dimensions() (width, height int) {
	return b.Width, b.Height
}

// Row returns the pixels of row y without padding. The returned slice
// aliases the buffer's storage.
func (b *Raw2D[P]) Row(y int) []P {
	off := y * b.Stride
	return b.Pix[off : off+b.Width]
}

// Flatten copies the pixels into a tightly packed flat sequence in GPU
// order, dropping stride padding. order declares the row convention of
// the buffer's storage.
func (b *Raw2D[P]) Flatten(order RowOrder) []P {
	flat := make([]P, 0, b.Width*b.Height)
	if order == TopFirst {
		for y := b.Height - 1; y >= 0; y-- {
			flat = append(flat, b.Row(y)...)
		}
		return flat
	}
	for y := 0; y < b.Height; y++ {
		flat = append(flat, b.Row(y)...)
	}
	return flat
}

// Raw2DFromFlat reconstructs a tightly packed Raw2D from a flat
// sequence in GPU order. order declares the row convention the
// reconstructed buffer should use.
//
// Returns ErrDimensionMismatch when width does not evenly divide
// len(flat), ErrInvalidDimensions when the sequence is empty.
func Raw2DFromFlat[P Pixel](flat []P, width int, order RowOrder) (*Raw2D[P], error) {
	if len(flat) == 0 {
		return nil, ErrInvalidDimensions
	}
	if width <= 0 || len(flat)%width != 0 {
		return nil, fmt.Errorf("%w: %d elements, row width %d", ErrDimensionMismatch, len(flat), width)
	}

	var pix []P
	if order == TopFirst {
		pix = flipRows(flat, width)
	} else {
		pix = make([]P, len(flat))
		copy(pix, flat)
	}
	return &Raw2D[P]{
		Pix:    pix,
		Width:  width,
		Height: len(flat) / width,
		Stride: width,
	}, nil
}

var _ Data2D[RGBA8] = (*Raw2D[RGBA8])(nil)
