package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "wiring-inspector/internal/application"
	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/infrastructure/vision"
	"wiring-inspector/internal/logger"
)

// Options configures the HTTP front end.
type Options struct {
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

type InspectionResponse struct {
	Report  *entity.WiringReport `json:"report,omitempty"`
	Message string               `json:"message"`
	Warning bool                 `json:"warning"`
	Image   []byte               `json:"image,omitempty"` // JPEG, only with ?image=true
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	Detected *int   `json:"detected,omitempty"`
}

// errBadRequest marks client-side input problems.
var errBadRequest = errors.New("bad request")

func NewHandler(svc *app.InspectionService, opts Options) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), requestSizeLimiter(opts.MaxBodyBytes))

	r.GET("/health", healthCheck)
	r.POST("/inspect", inspectPhoto(svc, opts))
	r.POST("/inspect/masks", inspectMasks(svc, opts))

	return r
}

func inspectPhoto(svc *app.InspectionService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()

		fh, err := c.FormFile("image")
		if err != nil {
			respondError(c, fmt.Errorf("%w: image file is required: %w", errBadRequest, err), "")
			return
		}
		photo, err := readFile(fh)
		if err != nil {
			respondError(c, err, "")
			return
		}
		if len(photo) == 0 {
			respondError(c, fmt.Errorf("%w: image file is empty", errBadRequest), "")
			return
		}

		out, err := svc.Inspect(ctx, photo)
		if err != nil {
			respondError(c, err, "")
			return
		}

		respondOutput(c, out, c.Query("image") == "true")
	}
}

func inspectMasks(svc *app.InspectionService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()

		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, fmt.Errorf("%w: multipart form expected: %w", errBadRequest, err), "")
			return
		}

		files := form.File["mask"]
		masks := make([]entity.Mask, 0, len(files))
		for i, fh := range files {
			data, err := readFile(fh)
			if err != nil {
				respondError(c, err, "")
				return
			}
			m, err := vision.DecodeMask(data)
			if err != nil {
				respondError(c, fmt.Errorf("%w: mask %d: %v", errBadRequest, i, err), "")
				return
			}
			if i > 0 && (m.Width != masks[0].Width || m.Height != masks[0].Height) {
				respondError(c, fmt.Errorf("%w: mask %d is %dx%d, want %dx%d",
					errBadRequest, i, m.Width, m.Height, masks[0].Width, masks[0].Height), "")
				return
			}
			masks = append(masks, m)
		}

		out, err := svc.InspectMasks(ctx, masks)
		if err != nil {
			respondError(c, err, "")
			return
		}

		respondOutput(c, out, false)
	}
}

func respondOutput(c *gin.Context, out *app.InspectionOutput, withImage bool) {
	message, warning := "", false
	if out.Description != nil {
		message, warning = out.Description.Text, out.Description.Warning
	}

	if out.Failure != nil {
		respondError(c, out.Failure, message)
		return
	}

	resp := InspectionResponse{
		Report:  out.Report,
		Message: message,
		Warning: warning,
	}
	if withImage {
		resp.Image = out.Image
	}
	c.JSON(http.StatusOK, resp)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "available",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":             c.Request.Method,
			"path":               c.Request.URL.Path,
			"status":             c.Writer.Status(),
			"ip":                 c.ClientIP(),
			"processing_time_ms": time.Since(start).Milliseconds(),
		}).Info("Request handled")
	}
}

func statusCode(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrDetectionInsufficient),
		errors.Is(err, entity.ErrStrandCountUnsupported),
		errors.Is(err, entity.ErrMaskEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func respondError(c *gin.Context, err error, message string) {
	code := statusCode(err)

	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"path":        c.Request.URL.Path,
	}).Warn("Request failed")

	resp := ErrorResponse{Error: err.Error(), Message: message}
	var detErr *entity.DetectionError
	if errors.As(err, &detErr) {
		found := detErr.Found
		resp.Detected = &found
	}
	c.AbortWithStatusJSON(code, resp)
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", errBadRequest, fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", errBadRequest, fh.Filename, err)
	}
	return data, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
