package entity

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskFromProbabilities_Scales(t *testing.T) {
	m, err := MaskFromProbabilities(2, 2, []float32{0, 0.4, 0.6, 1})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 102, 153, 255}, m.Pix)
	require.False(t, m.Foreground(0, 1))
	require.True(t, m.Foreground(1, 0))
}

func TestMaskFromBytes_SizeMismatch(t *testing.T) {
	_, err := MaskFromBytes(3, 3, make([]uint8, 8))
	require.Error(t, err)
}

func TestMaskFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	img.SetGray(2, 1, color.Gray{Y: 200})
	img.SetGray(3, 2, color.Gray{Y: 128})

	m, err := MaskFromImage(img)
	require.NoError(t, err)
	require.Equal(t, 4, m.Width)
	require.Equal(t, 3, m.Height)
	require.True(t, m.Foreground(1, 2))
	// the mid value itself is background
	require.False(t, m.Foreground(2, 3))
}

func TestMask_FillRectAndClone(t *testing.T) {
	m := NewMask(5, 5)
	m.FillRect(1, 1, 2, 3)
	c := m.Clone()
	c.Pix[0] = 255

	require.True(t, m.Foreground(2, 3))
	require.False(t, m.Foreground(0, 0))
	require.True(t, c.Foreground(0, 0))
}

func TestVerdict_StringAndJSON(t *testing.T) {
	require.Equal(t, "left_source_correct", VerdictLeftSourceCorrect.String())
	require.True(t, VerdictRightSourceCorrect.Correct())
	require.False(t, VerdictIndeterminate.Correct())

	b, err := VerdictIndeterminate.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"indeterminate"`, string(b))
}

func TestDetectionError_Unwrap(t *testing.T) {
	err := error(&DetectionError{Found: 2, Err: ErrDetectionInsufficient})
	require.True(t, errors.Is(err, ErrDetectionInsufficient))
	require.Contains(t, err.Error(), "found 2")
}
