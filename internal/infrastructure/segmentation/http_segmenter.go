package segmentation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
	"wiring-inspector/internal/infrastructure/vision"
)

// StrandClass is the model class of a connector strand.
const StrandClass = 0

// maxResponseBytes caps the segmentation response (masks are sent as PNG).
const maxResponseBytes = 64 << 20

// HTTPSegmenter calls a segmentation model served over HTTP.
//
// Request: multipart/form-data with the photo in "image" and the fields
// "imgsz", "conf" and "classes". Response:
//
//	{"masks": [{"class": 0, "confidence": 0.91, "png": "<base64>"}]}
//
// Each mask may instead carry raw 8-bit data in "data" with "width" and "height".
type HTTPSegmenter struct {
	URL        string
	ImageSize  int
	Confidence float64
	Client     *http.Client
}

type segmentResponse struct {
	Masks []maskPayload `json:"masks"`
	Error string        `json:"error,omitempty"`
}

type maskPayload struct {
	Class      int     `json:"class"`
	Confidence float64 `json:"confidence"`
	PNG        []byte  `json:"png,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Data       []byte  `json:"data,omitempty"`
}

// NewHTTPSegmenter creates a client for the segmentation service.
func NewHTTPSegmenter(url string, imageSize int, confidence float64, timeout time.Duration) *HTTPSegmenter {
	return &HTTPSegmenter{
		URL:        url,
		ImageSize:  imageSize,
		Confidence: confidence,
		Client:     &http.Client{Timeout: timeout},
	}
}

// Segment sends the photo to the service and decodes the strand masks.
func (s *HTTPSegmenter) Segment(ctx context.Context, imageData []byte) ([]entity.Mask, error) {
	body, contentType, err := s.encodeRequest(imageData)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call segmenter: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out segmentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("segmenter returned %s", resp.Status)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("segmenter returned %s: %s", resp.Status, out.Error)
		}
		return nil, fmt.Errorf("segmenter returned %s", resp.Status)
	}

	masks := make([]entity.Mask, 0, len(out.Masks))
	for i, p := range out.Masks {
		if p.Class != StrandClass {
			continue
		}
		m, err := p.decode()
		if err != nil {
			return nil, fmt.Errorf("mask %d: %w", i, err)
		}
		masks = append(masks, m)
	}

	return masks, nil
}

func (s *HTTPSegmenter) encodeRequest(imageData []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", "photo.jpg")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"imgsz":   strconv.Itoa(s.ImageSize),
		"conf":    strconv.FormatFloat(s.Confidence, 'f', -1, 64),
		"classes": strconv.Itoa(StrandClass),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

func (p maskPayload) decode() (entity.Mask, error) {
	switch {
	case len(p.PNG) > 0:
		return vision.DecodeMask(p.PNG)
	case len(p.Data) > 0:
		return entity.MaskFromBytes(p.Width, p.Height, p.Data)
	default:
		return entity.Mask{}, errors.New("mask has neither png nor data")
	}
}

var _ port.StrandSegmenter = (*HTTPSegmenter)(nil)
