package texture

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Texture describes a created GPU texture of any shape. Texture object
// creation, binding, and resource lifetime live with the upload
// component; this package only consumes the descriptor side when
// matching client data against a target.
type Texture interface {
	// Width returns the width in pixels.
	Width() int

	// Height returns the height in pixels; ok is false for
	// one-dimensional textures.
	Height() (height int, ok bool)

	// Depth returns the depth in pixels; ok is false for one- and
	// two-dimensional textures.
	Depth() (depth int, ok bool)

	// ArraySize returns the number of layers; ok is false for
	// non-array textures.
	ArraySize() (size int, ok bool)
}

// Type identifies the shape of a texture.
type Type uint8

const (
	// Texture1d is a texture with one dimension.
	Texture1d Type = iota

	// Texture2d is a texture with two dimensions.
	Texture2d

	// Texture2dMultisample is a two-dimensional texture with
	// multisampling enabled.
	Texture2dMultisample

	// Texture3d is a texture with three dimensions.
	Texture3d

	// Cubemap is an array of six two-dimensional textures, one per
	// cube face.
	Cubemap

	// Texture1dArray is an array of one-dimensional textures.
	Texture1dArray

	// Texture2dArray is an array of two-dimensional textures.
	Texture2dArray

	// Texture2dMultisampleArray is an array of two-dimensional
	// multisampled textures.
	Texture2dMultisampleArray

	// CubemapArray is an array of cube textures.
	CubemapArray

	// BufferTexture is a one-dimensional texture mapped to a buffer.
	BufferTexture
)

// String returns the string representation of the texture type.
func (t Type) String() string {
	switch t {
	case Texture1d:
		return "Texture1d"
	case Texture2d:
		return "Texture2d"
	case Texture2dMultisample:
		return "Texture2dMultisample"
	case Texture3d:
		return "Texture3d"
	case Cubemap:
		return "Cubemap"
	case Texture1dArray:
		return "Texture1dArray"
	case Texture2dArray:
		return "Texture2dArray"
	case Texture2dMultisampleArray:
		return "Texture2dMultisampleArray"
	case CubemapArray:
		return "CubemapArray"
	case BufferTexture:
		return "BufferTexture"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// IsArray returns true for array texture types.
func (t Type) IsArray() bool {
	switch t {
	case Texture1dArray, Texture2dArray, Texture2dMultisampleArray, CubemapArray:
		return true
	default:
		return false
	}
}

// IsMultisample returns true for multisampled texture types.
func (t Type) IsMultisample() bool {
	return t == Texture2dMultisample || t == Texture2dMultisampleArray
}

// FormatFamily identifies the kind of data a GPU-side texture format
// stores. Each family pairs with a distinct sampler type in shaders.
type FormatFamily uint8

const (
	// FamilyFloat stores floating-point data (possibly compressed).
	FamilyFloat FormatFamily = iota

	// FamilyIntegral stores signed integers.
	FamilyIntegral

	// FamilyUnsigned stores unsigned integers.
	FamilyUnsigned

	// FamilyDepth stores depth information.
	FamilyDepth

	// FamilyStencil stores stencil information.
	FamilyStencil

	// FamilyDepthStencil stores combined depth and stencil information.
	FamilyDepthStencil
)

// String returns the string representation of the format family.
func (f FormatFamily) String() string {
	switch f {
	case FamilyFloat:
		return "Float"
	case FamilyIntegral:
		return "Integral"
	case FamilyUnsigned:
		return "Unsigned"
	case FamilyDepth:
		return "Depth"
	case FamilyStencil:
		return "Stencil"
	case FamilyDepthStencil:
		return "DepthStencil"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// Extent1D converts a 1D width into the wgpu extent the upload call
// expects. Dimensions are non-negative by the data contracts.
func Extent1D(width int) gputypes.Extent3D {
	return Extent3D(width, 1, 1)
}

// Extent2D converts 2D dimensions into the wgpu extent the upload call
// expects.
func Extent2D(width, height int) gputypes.Extent3D {
	return Extent3D(width, height, 1)
}

// Extent3D converts 3D dimensions into the wgpu extent the upload call
// expects.
func Extent3D(width, height, depth int) gputypes.Extent3D {
	//nolint:gosec // G115: dimensions are non-negative by contract
	return gputypes.Extent3D{
		Width:              uint32(width),
		Height:             uint32(height),
		DepthOrArrayLayers: uint32(depth),
	}
}
