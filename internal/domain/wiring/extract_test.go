package wiring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wiring-inspector/internal/domain/entity"
)

func TestExtract_Rectangle(t *testing.T) {
	m := entity.NewMask(100, 100)
	m.FillRect(20, 30, 80, 41)

	top, bottom, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, entity.Endpoint{Row: 30, Col: 35.5}, top)
	require.Equal(t, entity.Endpoint{Row: 80, Col: 30}, bottom)
}

func TestExtract_ThinTipIsSkipped(t *testing.T) {
	m := entity.NewMask(100, 100)
	m.FillRect(10, 58, 10, 58)
	m.FillRect(11, 40, 60, 60)

	top, bottom, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, entity.Endpoint{Row: 20, Col: 50}, top)
	require.Equal(t, entity.Endpoint{Row: 60, Col: 40}, bottom)
}

func TestExtract_BottomIsNotRefined(t *testing.T) {
	m := entity.NewMask(50, 50)
	m.FillRect(5, 10, 30, 20)
	// a single stray pixel on the last row decides the bottom contact
	m.FillRect(31, 18, 31, 18)

	_, bottom, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, entity.Endpoint{Row: 31, Col: 18}, bottom)
}

func TestExtract_ShortStrandNearEdge(t *testing.T) {
	m := entity.NewMask(100, 100)
	m.FillRect(95, 10, 98, 14)

	top, bottom, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, entity.Endpoint{Row: 95, Col: 14}, top)
	require.Equal(t, entity.Endpoint{Row: 98, Col: 10}, bottom)
}

func TestExtract_MidValueIsBackground(t *testing.T) {
	pix := make([]uint8, 40*40)
	for i := range pix {
		pix[i] = entity.ForegroundThreshold
	}
	m, err := entity.MaskFromBytes(40, 40, pix)
	require.NoError(t, err)

	_, _, err = Extract(m)
	require.ErrorIs(t, err, entity.ErrMaskEmpty)

	m.FillRect(2, 4, 20, 8)
	top, _, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, entity.Endpoint{Row: 12, Col: 6}, top)
}

func TestExtract_ProbabilityMask(t *testing.T) {
	probs := make([]float32, 30*30)
	for r := 3; r < 25; r++ {
		for c := 7; c < 12; c++ {
			probs[r*30+c] = 0.9
		}
	}
	m, err := entity.MaskFromProbabilities(30, 30, probs)
	require.NoError(t, err)

	top, bottom, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, entity.Endpoint{Row: 13, Col: 9}, top)
	require.Equal(t, entity.Endpoint{Row: 24, Col: 7}, bottom)
}

func TestExtract_EmptyMask(t *testing.T) {
	_, _, err := Extract(entity.NewMask(10, 10))
	require.ErrorIs(t, err, entity.ErrMaskEmpty)
}
