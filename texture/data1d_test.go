package texture

import "testing"

func TestSliceRoundTrip(t *testing.T) {
	orig := []float32{0.5, 1.5, 2.5, 3.5}
	s := Slice[float32](orig)

	if got := s.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if got := s.Format(); got != ClientFormatF32 {
		t.Errorf("Format() = %v, want F32", got)
	}

	flat := s.Flatten()
	back := SliceFromFlat(flat)
	if !equalSlices(back, orig) {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestSliceFlattenNoCopy(t *testing.T) {
	// Slice is an owning container: Flatten hands over the backing
	// array rather than copying it.
	s := Slice[uint8]{1, 2, 3}
	flat := s.Flatten()
	flat[0] = 99
	if s[0] != 99 {
		t.Error("Slice.Flatten() copied; expected ownership transfer")
	}
}

func TestViewFlattenCopies(t *testing.T) {
	// View is borrowed: the flattened sequence must be independent of
	// the viewed data.
	backing := []uint8{1, 2, 3}
	v := View[uint8](backing)

	flat := v.Flatten()
	if !equalSlices(flat, backing) {
		t.Fatalf("View.Flatten() = %v, want %v", flat, backing)
	}

	flat[0] = 99
	if backing[0] != 1 {
		t.Error("View.Flatten() aliased the viewed data")
	}
}

func TestData1DEmpty(t *testing.T) {
	if got := (Slice[RGBA8]{}).Flatten(); len(got) != 0 {
		t.Errorf("empty Slice.Flatten() = %v, want empty", got)
	}
	if got := (View[RGBA8]{}).Flatten(); len(got) != 0 {
		t.Errorf("empty View.Flatten() = %v, want empty", got)
	}
}
