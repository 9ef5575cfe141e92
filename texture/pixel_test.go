package texture

import (
	"testing"
	"unsafe"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name string
		got  ClientFormat
		want ClientFormat
	}{
		{"uint8", FormatOf[uint8](), ClientFormatU8},
		{"int8", FormatOf[int8](), ClientFormatI8},
		{"uint16", FormatOf[uint16](), ClientFormatU16},
		{"int16", FormatOf[int16](), ClientFormatI16},
		{"uint32", FormatOf[uint32](), ClientFormatU32},
		{"int32", FormatOf[int32](), ClientFormatI32},
		{"float32", FormatOf[float32](), ClientFormatF32},
		{"RG8", FormatOf[RG8](), ClientFormatU8U8},
		{"RGB8", FormatOf[RGB8](), ClientFormatU8U8U8},
		{"RGBA8", FormatOf[RGBA8](), ClientFormatU8U8U8U8},
		{"RGBA16", FormatOf[RGBA16](), ClientFormatU16U16U16U16},
		{"RGBF32", FormatOf[RGBF32](), ClientFormatF32F32F32},
		{"RGBAF32", FormatOf[RGBAF32](), ClientFormatF32F32F32F32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("FormatOf() = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFormatOfDeterministic(t *testing.T) {
	// Calling twice for the same element type always returns the same value.
	if FormatOf[RGBA8]() != FormatOf[RGBA8]() {
		t.Error("FormatOf[RGBA8]() is not deterministic")
	}
	if FormatOf[float32]() != FormatOf[float32]() {
		t.Error("FormatOf[float32]() is not deterministic")
	}
}

func TestPixelLayoutMatchesFormat(t *testing.T) {
	// The in-memory size of each element type must equal the byte size
	// its ClientFormat declares, or the flat byte view handed to the
	// GPU would be wrong.
	tests := []struct {
		name string
		size uintptr
		want int
	}{
		{"RG8", unsafe.Sizeof(RG8{}), ClientFormatU8U8.BytesPerPixel()},
		{"RGB8", unsafe.Sizeof(RGB8{}), ClientFormatU8U8U8.BytesPerPixel()},
		{"RGBA8", unsafe.Sizeof(RGBA8{}), ClientFormatU8U8U8U8.BytesPerPixel()},
		{"RGBA16", unsafe.Sizeof(RGBA16{}), ClientFormatU16U16U16U16.BytesPerPixel()},
		{"RGBF32", unsafe.Sizeof(RGBF32{}), ClientFormatF32F32F32.BytesPerPixel()},
		{"RGBAF32", unsafe.Sizeof(RGBAF32{}), ClientFormatF32F32F32F32.BytesPerPixel()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.size) != tt.want {
				t.Errorf("sizeof = %d, format declares %d", tt.size, tt.want)
			}
		})
	}
}
