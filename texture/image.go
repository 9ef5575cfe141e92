package texture

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ImageData adapts a Go image buffer to the 2D data contract with
// RGBA8 elements.
//
// Go's image package stores the top row first; pass TopFirst to
// Flatten unless the image has already been flipped. The adapter never
// mutates the wrapped image.
type ImageData struct {
	img *image.NRGBA
}

// NewImageData wraps an *image.NRGBA directly, without conversion or
// copying.
func NewImageData(img *image.NRGBA) ImageData {
	return ImageData{img: img}
}

// FromImage adapts any image.Image, converting it to non-premultiplied
// RGBA first when necessary. An *image.NRGBA input is wrapped without
// copying; everything else is redrawn into a fresh NRGBA buffer.
func FromImage(img image.Image) ImageData {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return ImageData{img: nrgba}
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return ImageData{img: dst}
}

// Image returns the wrapped image buffer.
func (d ImageData) Image() *image.NRGBA { return d.img }

// Format returns ClientFormatU8U8U8U8: four unsigned-normalized 8-bit
// channels, R first, matching NRGBA byte order.
func (d ImageData) Format() ClientFormat { return ClientFormatU8U8U8U8 }

// Dimensions returns (width, height). A nil or empty image reports (0, 0).
func (d ImageData) Dimensions() (width, height int) {
	if d.img == nil {
		return 0, 0
	}
	bounds := d.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Flatten copies the pixels into a flat RGBA8 sequence in GPU order,
// dropping stride padding. order declares the image's row convention;
// Go image buffers are TopFirst.
func (d ImageData) Flatten(order RowOrder) []RGBA8 {
	width, height := d.Dimensions()
	flat := make([]RGBA8, 0, width*height)
	for y := 0; y < height; y++ {
		src := y
		if order == TopFirst {
			src = height - 1 - y
		}
		row := d.img.Pix[src*d.img.Stride:]
		for x := 0; x < width; x++ {
			o := x * 4
			flat = append(flat, RGBA8{row[o], row[o+1], row[o+2], row[o+3]})
		}
	}
	return flat
}

// ImageFromFlat reconstructs an *image.NRGBA from a flat RGBA8
// sequence in GPU order. order declares the row convention the
// reconstructed image should use; pass TopFirst for a conventional Go
// image.
//
// Returns ErrDimensionMismatch when width does not evenly divide
// len(flat).
func ImageFromFlat(flat []RGBA8, width int, order RowOrder) (*image.NRGBA, error) {
	if len(flat) == 0 {
		if width < 0 {
			return nil, fmt.Errorf("%w: negative width %d", ErrDimensionMismatch, width)
		}
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
	}
	if width <= 0 || len(flat)%width != 0 {
		return nil, fmt.Errorf("%w: %d elements, row width %d", ErrDimensionMismatch, len(flat), width)
	}

	height := len(flat) / width
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := y
		if order == TopFirst {
			src = height - 1 - y
		}
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			p := flat[src*width+x]
			o := x * 4
			row[o], row[o+1], row[o+2], row[o+3] = p.R, p.G, p.B, p.A
		}
	}
	return img, nil
}

// GrayData adapts an *image.Gray to the 2D data contract with uint8
// elements (ClientFormatU8). Like all Go image buffers it stores the
// top row first.
type GrayData struct {
	img *image.Gray
}

// NewGrayData wraps an *image.Gray directly, without copying.
func NewGrayData(img *image.Gray) GrayData {
	return GrayData{img: img}
}

// Format returns ClientFormatU8.
func (d GrayData) Format() ClientFormat { return ClientFormatU8 }

// Dimensions returns (width, height). A nil image reports (0, 0).
func (d GrayData) Dimensions() (width, height int) {
	if d.img == nil {
		return 0, 0
	}
	bounds := d.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Flatten copies the pixels into a flat sequence in GPU order,
// dropping stride padding. order declares the image's row convention;
// Go image buffers are TopFirst.
func (d GrayData) Flatten(order RowOrder) []uint8 {
	width, height := d.Dimensions()
	flat := make([]uint8, 0, width*height)
	for y := 0; y < height; y++ {
		src := y
		if order == TopFirst {
			src = height - 1 - y
		}
		flat = append(flat, d.img.Pix[src*d.img.Stride:src*d.img.Stride+width]...)
	}
	return flat
}

// Compile-time contract checks.
var (
	_ Data2D[RGBA8] = ImageData{}
	_ Data2D[uint8] = GrayData{}
)
