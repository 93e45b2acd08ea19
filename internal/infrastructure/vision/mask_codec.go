package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// registered for masks shipped as JPEG by some exporters
	_ "image/jpeg"

	"wiring-inspector/internal/domain/entity"
)

// DecodeMask decodes an encoded mask image (PNG or JPEG) into an entity.Mask.
func DecodeMask(data []byte) (entity.Mask, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return entity.Mask{}, fmt.Errorf("decode mask: %w", err)
	}
	return entity.MaskFromImage(img)
}

// EncodeMask encodes a mask as an 8-bit grayscale PNG.
func EncodeMask(m entity.Mask) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	copy(img.Pix, m.Pix)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode mask: %w", err)
	}
	return buf.Bytes(), nil
}
