//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
)

// ErrNoOpenCV is returned when the binary is built without the gocv tag.
var ErrNoOpenCV = errors.New("gocv build tag is not enabled")

type GoCVProcessor struct {
	JPEGQuality int
}

// NewGoCVProcessor creates a processor stub (no OpenCV).
func NewGoCVProcessor() *GoCVProcessor {
	return &GoCVProcessor{JPEGQuality: 90}
}

// Letterbox returns ErrNoOpenCV.
func (p *GoCVProcessor) Letterbox(imageData []byte, side int) ([]byte, error) {
	_ = imageData
	_ = side
	return nil, ErrNoOpenCV
}

// OverlayMasks returns ErrNoOpenCV.
func (p *GoCVProcessor) OverlayMasks(imageData []byte, masks []entity.Mask) ([]byte, error) {
	_ = imageData
	_ = masks
	return nil, ErrNoOpenCV
}

// HighlightEndpoints returns ErrNoOpenCV.
func (p *GoCVProcessor) HighlightEndpoints(imageData []byte, set entity.EndpointSet) ([]byte, error) {
	_ = imageData
	_ = set
	return nil, ErrNoOpenCV
}

var _ port.ImageProcessor = (*GoCVProcessor)(nil)
