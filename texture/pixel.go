package texture

// Channel-tuple pixel element types. The struct layout matches the
// packed wire layout byte for byte: no padding is inserted between
// channels, so a []RGBA8 can be viewed directly as bytes for upload.
// Channel order within a pixel is preserved exactly as declared.
type (
	// RG8 is a two-channel pixel with unsigned-normalized 8-bit channels.
	RG8 struct{ R, G uint8 }

	// RGB8 is a three-channel pixel with unsigned-normalized 8-bit channels.
	RGB8 struct{ R, G, B uint8 }

	// RGBA8 is a four-channel pixel with unsigned-normalized 8-bit
	// channels. This is the standard element type for most image data.
	RGBA8 struct{ R, G, B, A uint8 }

	// RGBA16 is a four-channel pixel with unsigned 16-bit integer channels.
	RGBA16 struct{ R, G, B, A uint16 }

	// RGBF32 is a three-channel pixel with 32-bit floating-point channels.
	RGBF32 struct{ R, G, B float32 }

	// RGBAF32 is a four-channel pixel with 32-bit floating-point channels.
	RGBAF32 struct{ R, G, B, A float32 }
)

// Pixel constrains the element types the exchange protocol supports.
//
// Every listed type is a plain value: copyable, free of interior
// pointers, and safe to hand to another goroutine, so a flattened
// []P can be moved to an upload worker without synchronization.
//
// The union uses exact types (no ~ approximation) so that [FormatOf]
// is total: a type outside this list is rejected by the compiler, and
// every type inside it has exactly one ClientFormat.
type Pixel interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | float32 |
		RG8 | RGB8 | RGBA8 | RGBA16 | RGBF32 | RGBAF32
}

// FormatOf returns the ClientFormat associated with the pixel element
// type P. It is a pure function of the type: no side effects, no
// failure mode, and the same P always yields the same value.
func FormatOf[P Pixel]() ClientFormat {
	var zero P
	switch any(zero).(type) {
	case uint8:
		return ClientFormatU8
	case int8:
		return ClientFormatI8
	case uint16:
		return ClientFormatU16
	case int16:
		return ClientFormatI16
	case uint32:
		return ClientFormatU32
	case int32:
		return ClientFormatI32
	case float32:
		return ClientFormatF32
	case RG8:
		return ClientFormatU8U8
	case RGB8:
		return ClientFormatU8U8U8
	case RGBA8:
		return ClientFormatU8U8U8U8
	case RGBA16:
		return ClientFormatU16U16U16U16
	case RGBF32:
		return ClientFormatF32F32F32
	case RGBAF32:
		return ClientFormatF32F32F32F32
	default:
		// Unreachable: the Pixel constraint enumerates exactly the
		// cases above.
		panic("texture: pixel type not covered by format registry")
	}
}
