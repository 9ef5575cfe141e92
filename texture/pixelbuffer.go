package texture

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/loafofpiecrust/glium"
)

// pixelBufferUsage marks the buffer as an upload staging target:
// mappable for writing on the CPU side, copy source on the GPU side.
const pixelBufferUsage = gputypes.BufferUsageMapWrite | gputypes.BufferUsageCopySrc

// PixelBuffer is a typed staging buffer for pixel data en route to
// GPU-resident storage, sized for one copy of a fixed pixel count.
//
// The buffer is write-side only: it stages uploads, it does not read
// textures back. Its memory region is exclusively owned by the handle
// and no concurrent access is defined; callers needing concurrency
// must synchronize outside.
//
// When created without a device the buffer is "logical": capacity and
// format are tracked but there is no GPU backing, and Write returns
// ErrNoGPUBuffer. This mirrors how the rest of the stack degrades when
// no adapter is available, and keeps the type testable off-GPU.
type PixelBuffer[P Pixel] struct {
	device   hal.Device
	buffer   hal.Buffer
	capacity int
	label    string

	destroyed bool
}

// NewPixelBuffer allocates an uninitialized staging buffer able to
// hold capacity pixels of type P. device may be nil for logical mode.
func NewPixelBuffer[P Pixel](device hal.Device, capacity int, label string) (*PixelBuffer[P], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	b := &PixelBuffer[P]{
		device:   device,
		capacity: capacity,
		label:    label,
	}

	if device == nil {
		glium.Logger().Debug("pixel buffer created without GPU backing",
			"label", label, "capacity", capacity, "format", b.Format().String())
		return b, nil
	}

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  b.SizeBytes(),
		Usage: pixelBufferUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("texture: create pixel buffer: %w", err)
	}
	b.buffer = buf

	glium.Logger().Debug("pixel buffer created",
		"label", label, "capacity", capacity,
		"bytes", b.SizeBytes(), "format", b.Format().String())
	return b, nil
}

// Capacity returns the buffer capacity in pixels.
func (b *PixelBuffer[P]) Capacity() int { return b.capacity }

// SizeBytes returns the buffer size in bytes.
func (b *PixelBuffer[P]) SizeBytes() uint64 {
	var zero P
	//nolint:gosec // G115: capacity validated positive at creation
	return uint64(b.capacity) * uint64(unsafe.Sizeof(zero))
}

// Format returns the client format of the element type.
func (b *PixelBuffer[P]) Format() ClientFormat { return FormatOf[P]() }

// Label returns the buffer's debug label.
func (b *PixelBuffer[P]) Label() string { return b.label }

// Raw returns the underlying buffer handle, or nil in logical mode or
// after Destroy. The caller must not outlive the handle's owner.
func (b *PixelBuffer[P]) Raw() hal.Buffer {
	if b.destroyed {
		return nil
	}
	return b.buffer
}

// Write stages pixels into the buffer through the given queue,
// starting at offset zero. len(pixels) must not exceed the capacity.
func (b *PixelBuffer[P]) Write(queue hal.Queue, pixels []P) error {
	if b.destroyed {
		return ErrBufferDestroyed
	}
	if b.buffer == nil {
		return ErrNoGPUBuffer
	}
	if queue == nil {
		return ErrNilQueue
	}
	if len(pixels) > b.capacity {
		return fmt.Errorf("%w: %d pixels, capacity %d", ErrCapacityExceeded, len(pixels), b.capacity)
	}
	if len(pixels) == 0 {
		return nil
	}

	queue.WriteBuffer(b.buffer, 0, pixelBytes(pixels))
	return nil
}

// Destroy releases the GPU backing. Destroy is idempotent; any use of
// the buffer afterwards returns ErrBufferDestroyed.
func (b *PixelBuffer[P]) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.buffer != nil && b.device != nil {
		b.device.DestroyBuffer(b.buffer)
	}
	b.buffer = nil
}

// UnsafeReinterpret returns a view of the buffer with element type U
// and no value conversion. The capacity is recomputed from the byte
// size, truncating any tail bytes that do not fit a whole U.
//
// This is an unchecked cast: the caller must guarantee that U and P
// have compatible memory layouts for the data actually written,
// otherwise subsequent GPU reads are undefined. The original handle
// and the returned one share the same GPU backing; destroy only one.
func UnsafeReinterpret[U, P Pixel](b *PixelBuffer[P]) *PixelBuffer[U] {
	var p P
	var u U
	return &PixelBuffer[U]{
		device:    b.device,
		buffer:    b.buffer,
		capacity:  b.capacity * int(unsafe.Sizeof(p)) / int(unsafe.Sizeof(u)),
		label:     b.label,
		destroyed: b.destroyed,
	}
}

// pixelBytes returns a byte view of pixels without copying. Pixel
// element types are packed with no padding, so the view is exactly the
// wire layout.
func pixelBytes[P Pixel](pixels []P) []byte {
	if len(pixels) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(pixels[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&pixels[0])), len(pixels)*size) //nolint:gosec // fixed-layout pixel data
}
