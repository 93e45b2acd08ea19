package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	HTTPAddr      string

	SegmenterURL        string
	SegmenterTimeout    time.Duration
	SegmenterConfidence float64
	ImageSize           int

	MaxUploadBytes int64
	LogLevel       string
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:       strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		HTTPAddr:            strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		SegmenterURL:        strings.TrimSpace(os.Getenv("SEGMENTER_URL")),
		SegmenterTimeout:    parseDurationOrDefault("SEGMENTER_TIMEOUT", 30*time.Second),
		SegmenterConfidence: parseFloatOrDefault("SEGMENTER_CONFIDENCE", 0.5),
		ImageSize:           int(parseIntOrDefault("IMAGE_SIZE", 416)),
		MaxUploadBytes:      parseIntOrDefault("MAX_UPLOAD_BYTES", 10*1024*1024),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that at least one front end is enabled and the limits make sense.
func (c *Config) Validate() error {
	if c.TelegramToken == "" && c.HTTPAddr == "" {
		return errors.New("either TELEGRAM_TOKEN or HTTP_ADDR is required")
	}
	if c.SegmenterURL == "" {
		return errors.New("SEGMENTER_URL is required")
	}
	if c.SegmenterConfidence <= 0 || c.SegmenterConfidence >= 1 {
		return fmt.Errorf("SEGMENTER_CONFIDENCE must be in (0, 1) (got %g)", c.SegmenterConfidence)
	}
	if c.ImageSize <= 0 {
		return fmt.Errorf("IMAGE_SIZE must be > 0 (got %d)", c.ImageSize)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be > 0 (got %d)", c.MaxUploadBytes)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultValue
}
