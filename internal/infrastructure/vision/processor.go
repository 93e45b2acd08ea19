//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	"gocv.io/x/gocv"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
)

const (
	markerRadius = 5
	maskAlpha    = 0.5
)

var (
	topColor    = color.RGBA{R: 255, B: 255, A: 255} // magenta
	bottomColor = color.RGBA{B: 255, A: 255}         // blue
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	maskPalette = []color.RGBA{
		{G: 255, A: 255},
		{R: 255, G: 160, A: 255},
		{G: 200, B: 200, A: 255},
		{R: 255, G: 255, A: 255},
	}
)

// GoCVProcessor letterboxes photos and draws contact markers with OpenCV.
type GoCVProcessor struct {
	JPEGQuality int
}

// NewGoCVProcessor creates a processor with default JPEG quality.
func NewGoCVProcessor() *GoCVProcessor {
	return &GoCVProcessor{JPEGQuality: 90}
}

// Letterbox pads the photo to a centred square on white and resizes it to side x side.
func (p *GoCVProcessor) Letterbox(imageData []byte, side int) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	w, h := mat.Cols(), mat.Rows()
	if w != h {
		top, bottom, left, right := 0, 0, 0, 0
		if w > h {
			top = (w - h) / 2
			bottom = w - h - top
		} else {
			left = (h - w) / 2
			right = h - w - left
		}
		padded := gocv.NewMat()
		gocv.CopyMakeBorder(mat, &padded, top, bottom, left, right, gocv.BorderConstant, white)
		mat.Close()
		mat = padded
	}

	if mat.Cols() != side {
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(side, side), 0, 0, gocv.InterpolationLinear)
		mat.Close()
		mat = resized
	}

	return p.encode(mat)
}

// OverlayMasks blends each strand mask over the photo in its own colour.
func (p *GoCVProcessor) OverlayMasks(imageData []byte, masks []entity.Mask) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	layer := mat.Clone()
	defer layer.Close()

	for i, m := range masks {
		if err := paintMask(&layer, m, maskPalette[i%len(maskPalette)]); err != nil {
			return nil, fmt.Errorf("mask %d: %w", i, err)
		}
	}

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(mat, 1-maskAlpha, layer, maskAlpha, 0, &blended)

	return p.encode(blended)
}

// paintMask fills the foreground of m on layer with c.
func paintMask(layer *gocv.Mat, m entity.Mask, c color.RGBA) error {
	src, err := gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8U, m.Pix)
	if err != nil {
		return err
	}
	defer src.Close()

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(src, &bin, entity.ForegroundThreshold, 255, gocv.ThresholdBinary)

	if bin.Cols() != layer.Cols() || bin.Rows() != layer.Rows() {
		scaled := gocv.NewMat()
		defer scaled.Close()
		gocv.Resize(bin, &scaled, image.Pt(layer.Cols(), layer.Rows()), 0, 0, gocv.InterpolationNearestNeighbor)
		bin, scaled = scaled, bin
	}

	fill := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0),
		layer.Rows(), layer.Cols(), gocv.MatTypeCV8UC3,
	)
	defer fill.Close()
	fill.CopyToWithMask(layer, bin)

	return nil
}

// HighlightEndpoints draws filled markers for detected contacts and rings
// for the inferred one.
func (p *GoCVProcessor) HighlightEndpoints(imageData []byte, set entity.EndpointSet) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	for i := range set.Tops {
		thickness := -1
		if i == set.Inferred {
			thickness = 2
		}
		gocv.Circle(&mat, toPoint(set.Tops[i]), markerRadius, topColor, thickness)
		if i < len(set.Bottoms) {
			gocv.Circle(&mat, toPoint(set.Bottoms[i]), markerRadius, bottomColor, thickness)
		}
	}

	return p.encode(mat)
}

func (p *GoCVProcessor) encode(mat gocv.Mat) ([]byte, error) {
	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toPoint(e entity.Endpoint) image.Point {
	return image.Pt(int(math.Round(e.Col)), e.Row)
}

// decodeToMat turns encoded image bytes into a gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

var _ port.ImageProcessor = (*GoCVProcessor)(nil)
