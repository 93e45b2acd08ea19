package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"TELEGRAM_TOKEN", "HTTP_ADDR", "SEGMENTER_URL", "SEGMENTER_TIMEOUT",
		"SEGMENTER_CONFIDENCE", "IMAGE_SIZE", "MAX_UPLOAD_BYTES", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("SEGMENTER_URL", "http://segmenter:9000/segment")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 30*time.Second, cfg.SegmenterTimeout)
	require.Equal(t, 0.5, cfg.SegmenterConfidence)
	require.Equal(t, 416, cfg.ImageSize)
	require.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("SEGMENTER_URL", "http://segmenter")
	t.Setenv("SEGMENTER_TIMEOUT", "5s")
	t.Setenv("SEGMENTER_CONFIDENCE", "0.7")
	t.Setenv("IMAGE_SIZE", "640")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, 5*time.Second, cfg.SegmenterTimeout)
	require.Equal(t, 0.7, cfg.SegmenterConfidence)
	require.Equal(t, 640, cfg.ImageSize)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RequiresFrontEnd(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEGMENTER_URL", "http://segmenter")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		HTTPAddr:            ":8080",
		SegmenterURL:        "http://segmenter",
		SegmenterConfidence: 0.5,
		ImageSize:           416,
		MaxUploadBytes:      1,
	}
	require.NoError(t, base.Validate())

	noURL := base
	noURL.SegmenterURL = ""
	require.Error(t, noURL.Validate())

	badConf := base
	badConf.SegmenterConfidence = 1.5
	require.Error(t, badConf.Validate())

	badSize := base
	badSize.ImageSize = 0
	require.Error(t, badSize.Validate())
}
