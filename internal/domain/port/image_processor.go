package port

import "wiring-inspector/internal/domain/entity"

// ImageProcessor prepares photos for the model and renders inspection results.
type ImageProcessor interface {
	// Letterbox pads the photo to a square on a white background and scales it to side x side.
	Letterbox(imageData []byte, side int) ([]byte, error)

	// OverlayMasks tints the strand masks over the image, one colour per strand.
	// Masks of another size are scaled to the image.
	OverlayMasks(imageData []byte, masks []entity.Mask) ([]byte, error)

	// HighlightEndpoints draws the contact points over the image.
	HighlightEndpoints(imageData []byte, set entity.EndpointSet) ([]byte, error)
}
