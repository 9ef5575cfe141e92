package texture

// Data1D is the flatten capability for one-dimensional pixel data.
// One-dimensional data has no row concept, so there is no RowOrder
// parameter: elements keep their original order.
type Data1D[P Pixel] interface {
	// Format returns the client format of the element type.
	Format() ClientFormat

	// Len returns the number of pixel elements.
	Len() int

	// Flatten returns the elements as a flat sequence in original order.
	Flatten() []P
}

// Slice is an owned one-dimensional pixel container.
//
// Flatten transfers ownership of the underlying array to the caller
// without copying; the Slice must not be used afterwards.
type Slice[P Pixel] []P

// Format returns the client format of the element type.
func (s Slice[P]) Format() ClientFormat { return FormatOf[P]() }

// Len returns the number of pixel elements.
func (s Slice[P]) Len() int { return len(s) }

// Flatten returns the underlying elements without copying.
func (s Slice[P]) Flatten() []P { return s }

// SliceFromFlat reconstructs an owned Slice from a flat sequence.
// The sequence is adopted as-is; its length is the new Slice's length.
func SliceFromFlat[P Pixel](flat []P) Slice[P] {
	return Slice[P](flat)
}

// View is a borrowed one-dimensional pixel container. Flatten copies
// the elements, leaving the viewed data untouched.
//
// View has no reconstruction function: a borrowed view has no owning
// storage to rebuild into. Code that needs round-tripping must use
// [Slice] instead. This asymmetry is deliberate — the alternative is a
// method that can only panic.
type View[P Pixel] []P

// Format returns the client format of the element type.
func (v View[P]) Format() ClientFormat { return FormatOf[P]() }

// Len returns the number of pixel elements.
func (v View[P]) Len() int { return len(v) }

// Flatten returns a copy of the viewed elements in original order.
func (v View[P]) Flatten() []P {
	out := make([]P, len(v))
	copy(out, v)
	return out
}

// Compile-time contract checks.
var (
	_ Data1D[RGBA8] = Slice[RGBA8]{}
	_ Data1D[RGBA8] = View[RGBA8]{}
)
