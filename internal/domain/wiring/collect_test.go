package wiring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wiring-inspector/internal/domain/entity"
)

func TestCollect_RejectsTooFewMasks(t *testing.T) {
	for n := 0; n < entity.MinStrands; n++ {
		masks := make([]entity.Mask, n)
		for i := range masks {
			masks[i] = strandMask(10+20*i, 20+20*i)
		}

		recs, err := Collect(masks)
		require.ErrorIs(t, err, entity.ErrDetectionInsufficient)
		require.Nil(t, recs)

		var detErr *entity.DetectionError
		require.True(t, errors.As(err, &detErr))
		require.Equal(t, n, detErr.Found)
	}
}

func TestCollect_KeepsInputOrder(t *testing.T) {
	masks := []entity.Mask{
		strandMask(60, 30),
		strandMask(10, 20),
		strandMask(30, 80),
	}

	recs, err := Collect(masks)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, 62.0, recs[0].Top.Col)
	require.Equal(t, 12.0, recs[1].Top.Col)
	require.Equal(t, 32.0, recs[2].Top.Col)
	require.Equal(t, 80.0, recs[2].Bottom.Col)
}

func TestCollect_FourMasks(t *testing.T) {
	masks := []entity.Mask{
		strandMask(10, 20),
		strandMask(30, 80),
		strandMask(60, 30),
		strandMask(80, 90),
	}

	recs, err := Collect(masks)
	require.NoError(t, err)
	require.Len(t, recs, 4)
}

func TestCollect_EmptyMaskAborts(t *testing.T) {
	masks := []entity.Mask{
		strandMask(10, 20),
		entity.NewMask(testSide, testSide),
		strandMask(60, 30),
	}

	_, err := Collect(masks)
	require.ErrorIs(t, err, entity.ErrMaskEmpty)
	require.Contains(t, err.Error(), "strand 1")
}
