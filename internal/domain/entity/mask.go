package entity

import (
	"fmt"
	"image"
	"image/color"
)

// ForegroundThreshold is the mid value of the 8-bit range: pixels above it
// belong to the strand.
const ForegroundThreshold = 128

// Mask is a binary strand bitmap produced by the segmentation model.
// Pix is row-major, one byte per pixel, values on the 0..255 scale.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates an empty (all background) mask.
func NewMask(width, height int) Mask {
	return Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// MaskFromBytes wraps 8-bit mask data. The slice is copied.
func MaskFromBytes(width, height int, pix []uint8) (Mask, error) {
	if width <= 0 || height <= 0 {
		return Mask{}, fmt.Errorf("invalid mask size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return Mask{}, fmt.Errorf("mask data has %d bytes, want %d", len(pix), width*height)
	}
	m := NewMask(width, height)
	copy(m.Pix, pix)
	return m, nil
}

// MaskFromProbabilities converts model output in the 0..1 range to the 0..255 scale.
func MaskFromProbabilities(width, height int, probs []float32) (Mask, error) {
	if width <= 0 || height <= 0 {
		return Mask{}, fmt.Errorf("invalid mask size %dx%d", width, height)
	}
	if len(probs) != width*height {
		return Mask{}, fmt.Errorf("mask data has %d values, want %d", len(probs), width*height)
	}
	m := NewMask(width, height)
	for i, p := range probs {
		switch {
		case p <= 0:
			m.Pix[i] = 0
		case p >= 1:
			m.Pix[i] = 255
		default:
			m.Pix[i] = uint8(p*255 + 0.5)
		}
	}
	return m, nil
}

// MaskFromImage converts any decoded image (PNG mask, gocv output) to a Mask
// using its gray level.
func MaskFromImage(img image.Image) (Mask, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Mask{}, fmt.Errorf("invalid mask size %dx%d", b.Dx(), b.Dy())
	}
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			m.Pix[(y-b.Min.Y)*m.Width+(x-b.Min.X)] = g.Y
		}
	}
	return m, nil
}

// Foreground reports whether the pixel at (row, col) belongs to the strand.
func (m Mask) Foreground(row, col int) bool {
	return m.Pix[row*m.Width+col] > ForegroundThreshold
}

// FillRect marks the rectangle [top..bottom]x[left..right] (inclusive) as foreground.
func (m Mask) FillRect(top, left, bottom, right int) {
	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			m.Pix[r*m.Width+c] = 255
		}
	}
}

// Clone returns a deep copy of the mask.
func (m Mask) Clone() Mask {
	c := NewMask(m.Width, m.Height)
	copy(c.Pix, m.Pix)
	return c
}
