package texture

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Kind classifies the numeric interpretation of a pixel channel.
type Kind uint8

const (
	// KindUnsignedNormalized is unsigned data normalized to [0, 1] on sampling.
	KindUnsignedNormalized Kind = iota

	// KindSignedNormalized is signed data normalized to [-1, 1] on sampling.
	KindSignedNormalized

	// KindFloat is floating-point data sampled as-is.
	KindFloat

	// KindInteger is raw integer data, no normalization.
	KindInteger
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsignedNormalized:
		return "UnsignedNormalized"
	case KindSignedNormalized:
		return "SignedNormalized"
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// ClientFormat describes the layout of client-side pixel data: how many
// channels each pixel element carries, how wide a channel is, and how
// the values are interpreted numerically.
//
// ClientFormat values are derived structurally from a pixel element
// type via [FormatOf]; user code never needs to construct one for a
// supported element type. The names follow the per-channel layout:
// ClientFormatU8U8U8U8 is four unsigned 8-bit channels.
type ClientFormat uint8

const (
	// ClientFormatU8 is a single unsigned-normalized 8-bit channel.
	ClientFormatU8 ClientFormat = iota

	// ClientFormatU8U8 is two unsigned-normalized 8-bit channels.
	ClientFormatU8U8

	// ClientFormatU8U8U8 is three unsigned-normalized 8-bit channels.
	ClientFormatU8U8U8

	// ClientFormatU8U8U8U8 is four unsigned-normalized 8-bit channels.
	// This is the standard format for most image data.
	ClientFormatU8U8U8U8

	// ClientFormatI8 is a single signed-normalized 8-bit channel.
	ClientFormatI8

	// ClientFormatU16 is a single unsigned 16-bit integer channel.
	ClientFormatU16

	// ClientFormatI16 is a single signed 16-bit integer channel.
	ClientFormatI16

	// ClientFormatU32 is a single unsigned 32-bit integer channel.
	ClientFormatU32

	// ClientFormatI32 is a single signed 32-bit integer channel.
	ClientFormatI32

	// ClientFormatF32 is a single 32-bit floating-point channel.
	ClientFormatF32

	// ClientFormatU16U16U16U16 is four unsigned 16-bit integer channels.
	ClientFormatU16U16U16U16

	// ClientFormatF32F32F32 is three 32-bit floating-point channels.
	ClientFormatF32F32F32

	// ClientFormatF32F32F32F32 is four 32-bit floating-point channels.
	ClientFormatF32F32F32F32

	// clientFormatCount is the number of formats (for internal use).
	clientFormatCount
)

// FormatInfo contains metadata about a client pixel format.
type FormatInfo struct {
	// Channels is the number of color channels per pixel element.
	Channels int

	// ChannelBits is the number of bits per channel.
	ChannelBits int

	// Kind is the numeric interpretation of the channels.
	Kind Kind
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [clientFormatCount]FormatInfo{
	ClientFormatU8:           {Channels: 1, ChannelBits: 8, Kind: KindUnsignedNormalized},
	ClientFormatU8U8:         {Channels: 2, ChannelBits: 8, Kind: KindUnsignedNormalized},
	ClientFormatU8U8U8:       {Channels: 3, ChannelBits: 8, Kind: KindUnsignedNormalized},
	ClientFormatU8U8U8U8:     {Channels: 4, ChannelBits: 8, Kind: KindUnsignedNormalized},
	ClientFormatI8:           {Channels: 1, ChannelBits: 8, Kind: KindSignedNormalized},
	ClientFormatU16:          {Channels: 1, ChannelBits: 16, Kind: KindInteger},
	ClientFormatI16:          {Channels: 1, ChannelBits: 16, Kind: KindInteger},
	ClientFormatU32:          {Channels: 1, ChannelBits: 32, Kind: KindInteger},
	ClientFormatI32:          {Channels: 1, ChannelBits: 32, Kind: KindInteger},
	ClientFormatF32:          {Channels: 1, ChannelBits: 32, Kind: KindFloat},
	ClientFormatU16U16U16U16: {Channels: 4, ChannelBits: 16, Kind: KindInteger},
	ClientFormatF32F32F32:    {Channels: 3, ChannelBits: 32, Kind: KindFloat},
	ClientFormatF32F32F32F32: {Channels: 4, ChannelBits: 32, Kind: KindFloat},
}

// IsValid returns true if the format is a recognized value.
func (f ClientFormat) IsValid() bool {
	return f < clientFormatCount
}

// Info returns the FormatInfo for this format.
// Returns the zero FormatInfo for invalid formats.
func (f ClientFormat) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels per pixel element.
func (f ClientFormat) Channels() int {
	return f.Info().Channels
}

// ChannelBits returns the number of bits per channel.
func (f ClientFormat) ChannelBits() int {
	return f.Info().ChannelBits
}

// Kind returns the numeric interpretation of the channels.
func (f ClientFormat) Kind() Kind {
	return f.Info().Kind
}

// BytesPerPixel returns the byte size of one pixel element.
func (f ClientFormat) BytesPerPixel() int {
	info := f.Info()
	return info.Channels * info.ChannelBits / 8
}

// String returns a human-readable name for the format.
func (f ClientFormat) String() string {
	switch f {
	case ClientFormatU8:
		return "U8"
	case ClientFormatU8U8:
		return "U8U8"
	case ClientFormatU8U8U8:
		return "U8U8U8"
	case ClientFormatU8U8U8U8:
		return "U8U8U8U8"
	case ClientFormatI8:
		return "I8"
	case ClientFormatU16:
		return "U16"
	case ClientFormatI16:
		return "I16"
	case ClientFormatU32:
		return "U32"
	case ClientFormatI32:
		return "I32"
	case ClientFormatF32:
		return "F32"
	case ClientFormatU16U16U16U16:
		return "U16U16U16U16"
	case ClientFormatF32F32F32:
		return "F32F32F32"
	case ClientFormatF32F32F32F32:
		return "F32F32F32F32"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// ToWGPU converts to the matching wgpu gputypes.TextureFormat.
//
// Three-channel formats have no WebGPU equivalent and return
// [gputypes.TextureFormatUndefined]; the upload component is expected
// to expand them to four channels before issuing the transfer.
func (f ClientFormat) ToWGPU() gputypes.TextureFormat {
	switch f {
	case ClientFormatU8:
		return gputypes.TextureFormatR8Unorm
	case ClientFormatU8U8:
		return gputypes.TextureFormatRG8Unorm
	case ClientFormatU8U8U8U8:
		return gputypes.TextureFormatRGBA8Unorm
	case ClientFormatI8:
		return gputypes.TextureFormatR8Snorm
	case ClientFormatU16:
		return gputypes.TextureFormatR16Uint
	case ClientFormatI16:
		return gputypes.TextureFormatR16Sint
	case ClientFormatU32:
		return gputypes.TextureFormatR32Uint
	case ClientFormatI32:
		return gputypes.TextureFormatR32Sint
	case ClientFormatF32:
		return gputypes.TextureFormatR32Float
	case ClientFormatU16U16U16U16:
		return gputypes.TextureFormatRGBA16Uint
	case ClientFormatF32F32F32F32:
		return gputypes.TextureFormatRGBA32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}
