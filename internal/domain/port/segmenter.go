package port

import (
	"context"

	"wiring-inspector/internal/domain/entity"
)

// StrandSegmenter runs the strand segmentation model on a connector photo.
type StrandSegmenter interface {
	// Segment returns one mask per detected strand, each the size of the image.
	Segment(ctx context.Context, imageData []byte) ([]entity.Mask, error)
}
