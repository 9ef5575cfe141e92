// Package glium provides the data-exchange layer between application
// pixel buffers and GPU texture memory for the GoGPU ecosystem.
//
// # Overview
//
// A texture is an image living in video memory. Before it can be
// uploaded, the application's pixel data — nested row slices, Go image
// buffers, raw contiguous arrays — has to be flattened into the linear,
// row-major layout the GPU expects, and the pixel format has to be
// inferred from the element type so the upload path can match it
// against the GPU-side texture format.
//
// The texture subpackage implements that conversion core:
//
//   - a pixel-format registry that maps Go element types to
//     ClientFormat descriptors at compile time,
//   - per-dimensionality data contracts (1D, 2D, 3D) that extract
//     dimensions, flatten structured buffers into flat pixel slices,
//     and reconstruct structured buffers from flat data,
//   - a row-order adapter that converts between the top-row-first
//     convention of image libraries and the bottom-row-first
//     convention of GPU texture memory,
//   - a typed pixel transfer buffer for staging pixel data on its way
//     to GPU-resident storage, backed by gogpu/wgpu.
//
// # Quick Start
//
//	import "github.com/loafofpiecrust/glium/texture"
//
//	rows := texture.Rows[texture.RGBA8]{
//	    {{255, 0, 0, 255}, {0, 255, 0, 255}},
//	    {{0, 0, 255, 255}, {255, 255, 255, 255}},
//	}
//	w, h := rows.Dimensions()
//	flat := rows.Flatten(texture.TopFirst) // GPU order, bottom row first
//	format := texture.FormatOf[texture.RGBA8]()
//
// # Row-Order Convention
//
// GPU texture memory stores the bottom row of the image first; most
// image libraries (including Go's image package) store the top row
// first. Every flatten and reconstruct operation takes an explicit
// texture.RowOrder so the conversion is never implicit. Getting this
// wrong does not fail — it silently flips the image — which is why the
// parameter is mandatory.
//
// # Logging
//
// glium produces no log output by default. Call SetLogger to enable
// structured logging via log/slog.
package glium

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
