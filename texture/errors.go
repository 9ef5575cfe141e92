package texture

import "errors"

// Errors reported by the exchange protocol. All of them surface
// synchronously to the immediate caller; nothing in this package
// retries internally.
var (
	// ErrDimensionMismatch is returned when a flat element count is not
	// evenly divisible by the declared row or slice width during
	// reconstruction. Recoverable: retry with corrected parameters.
	ErrDimensionMismatch = errors.New("texture: element count not divisible by row width")

	// ErrNotImplemented is returned by 3D reconstruction, which is a
	// documented gap: it fails loudly instead of returning corrupt data.
	ErrNotImplemented = errors.New("texture: reconstruction not implemented for this dimensionality")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrInvalidStride is returned when a stride is less than the row width.
	ErrInvalidStride = errors.New("texture: stride too small for width")

	// ErrDataTooSmall is returned when provided pixel data is smaller
	// than the declared geometry requires.
	ErrDataTooSmall = errors.New("texture: pixel data too small for dimensions")

	// ErrInvalidCapacity is returned when creating a pixel buffer with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("texture: invalid pixel buffer capacity")

	// ErrBufferDestroyed is returned when operating on a destroyed pixel buffer.
	ErrBufferDestroyed = errors.New("texture: pixel buffer has been destroyed")

	// ErrCapacityExceeded is returned when writing more pixels than the
	// buffer was allocated for.
	ErrCapacityExceeded = errors.New("texture: pixel count exceeds buffer capacity")

	// ErrNoGPUBuffer is returned when writing to a pixel buffer created
	// in logical mode (without a device).
	ErrNoGPUBuffer = errors.New("texture: pixel buffer has no GPU backing")

	// ErrNilQueue is returned when a write is issued without a queue.
	ErrNilQueue = errors.New("texture: queue is nil")
)
