//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wiring-inspector/internal/domain/entity"
)

func TestGoCVProcessorStub(t *testing.T) {
	p := NewGoCVProcessor()

	_, err := p.Letterbox([]byte("img"), 416)
	require.ErrorIs(t, err, ErrNoOpenCV)

	_, err = p.OverlayMasks([]byte("img"), []entity.Mask{entity.NewMask(2, 2)})
	require.ErrorIs(t, err, ErrNoOpenCV)

	_, err = p.HighlightEndpoints([]byte("img"), entity.EndpointSet{})
	require.ErrorIs(t, err, ErrNoOpenCV)
}
