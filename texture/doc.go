// Package texture implements the pixel-data exchange protocol between
// application-side pixel buffers and GPU texture memory.
//
// # Data Contracts
//
// Pixel data reaches the GPU as a flat, row-major sequence with the
// bottom row of the image stored first. Application code rarely holds
// its pixels that way: it has nested row slices, Go image buffers, or
// stride-padded raw arrays, usually with the top row first. The
// per-dimensionality contracts [Data1D], [Data2D] and [Data3D] bridge
// the two worlds: they infer the [ClientFormat] from the element type,
// extract the geometric dimensions, and flatten the structure into GPU
// order. Owning container types additionally get a reconstruction
// function (RowsFromFlat, SliceFromFlat, ...) that runs the same path
// in reverse.
//
// Flattening is generic over the pixel element type via the [Pixel]
// constraint; format inference is resolved at compile time, so an
// unsupported element type is a compile error, never a runtime one.
//
// # Row Order
//
// Every flatten and reconstruct call takes an explicit [RowOrder]
// declaring the structured buffer's scanline convention. Flat
// sequences produced by this package are always in GPU order (bottom
// row first); a structure that stores its top row first is flipped by
// the row-order adapter as part of the call. Omitting the flip does
// not fail — it silently turns the texture upside down — so the
// parameter is never optional and never defaulted.
//
// # Capabilities
//
// Flattening is a read-only capability every structured buffer has.
// Reconstruction requires an owning container: borrowed views ([View])
// have no reconstruction function at all, and 3D reconstruction is a
// documented gap that fails with [ErrNotImplemented] rather than
// returning corrupt data.
package texture
