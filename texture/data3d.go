package texture

// Data3D is the flatten capability for three-dimensional pixel data.
// The flat layout is row-major with depth varying slowest: slice 0's
// rows first, then slice 1's, and so on. Row-order conversion applies
// independently within each depth slice, using the same adapter as 2D.
type Data3D[P Pixel] interface {
	// Format returns the client format of the element type.
	Format() ClientFormat

	// Dimensions returns (width, height, depth). A degenerate (empty)
	// structure reports (0, 0, 0), never an error.
	Dimensions() (width, height, depth int)

	// Flatten returns the pixels as a flat sequence, depth slowest,
	// each slice in GPU row order. order declares the row convention
	// of the structure's storage.
	Flatten(order RowOrder) []P
}

// Slices is an owned three-dimensional pixel container: depth slices
// of rows of pixels. Like [Rows], it must be rectangular in every
// dimension; this is the caller's obligation and is not validated.
type Slices[P Pixel] [][][]P

// Format returns the client format of the element type.
func (s Slices[P]) Format() ClientFormat { return FormatOf[P]() }

// Dimensions returns (width, height, depth), taking the first slice
// and first row as representative. An empty structure reports all
// zeros.
func (s Slices[P]) Dimensions() (width, height, depth int) {
	if len(s) == 0 {
		return 0, 0, 0
	}
	depth = len(s)
	height = len(s[0])
	if height > 0 {
		width = len(s[0][0])
	}
	return width, height, depth
}

// Flatten folds the depth slices into one flat sequence, depth varying
// slowest. order declares the row convention of each slice's storage;
// TopFirst slices have their rows flipped independently, slice order
// itself is never altered.
func (s Slices[P]) Flatten(order RowOrder) []P {
	width, height, depth := s.Dimensions()
	flat := make([]P, 0, width*height*depth)
	for _, slice := range s {
		if order == TopFirst {
			for i := len(slice) - 1; i >= 0; i-- {
				flat = append(flat, slice[i]...)
			}
			continue
		}
		for _, row := range slice {
			flat = append(flat, row...)
		}
	}
	return flat
}

// SlicesFromFlat would reconstruct a Slices container from a flat
// sequence. 3D reconstruction is not implemented: it always returns
// ErrNotImplemented rather than risk returning corrupt data. The
// forward path (Flatten) is unaffected.
func SlicesFromFlat[P Pixel](flat []P, width, height int, order RowOrder) (Slices[P], error) {
	return nil, ErrNotImplemented
}

var _ Data3D[RGBA8] = Slices[RGBA8]{}
