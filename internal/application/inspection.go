package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
	"wiring-inspector/internal/domain/wiring"
	"wiring-inspector/internal/logger"
)

// DefaultImageSize is the side of the square the model was trained on.
const DefaultImageSize = 416

type InspectionService struct {
	users     *UserService
	segmenter port.StrandSegmenter
	processor port.ImageProcessor
	describer port.VerdictDescriber
	imageSize int
}

// InspectionOutput is the result of one inspection.
//
// When the strands could not be classified Report is nil, Failure holds the
// reason and Image is the prepared photo without masks or markers.
type InspectionOutput struct {
	Report      *entity.WiringReport
	Failure     error
	Description *entity.Description
	Image       []byte
}

// NewInspectionService creates the service. processor may be nil, then photos
// are sent to the segmenter unchanged and results are not rendered.
func NewInspectionService(users *UserService, segmenter port.StrandSegmenter, processor port.ImageProcessor, describer port.VerdictDescriber, imageSize int) *InspectionService {
	if imageSize <= 0 {
		imageSize = DefaultImageSize
	}
	return &InspectionService{
		users:     users,
		segmenter: segmenter,
		processor: processor,
		describer: describer,
		imageSize: imageSize,
	}
}

// Inspect letterboxes the photo, segments it and classifies the wiring.
// Detection problems come back in InspectionOutput.Failure; the error return
// is reserved for infrastructure failures and broken masks.
func (s *InspectionService) Inspect(ctx context.Context, photo []byte) (*InspectionOutput, error) {
	if s.segmenter == nil {
		return nil, errors.New("segmenter is not configured")
	}
	if len(photo) == 0 {
		return nil, errors.New("empty photo")
	}

	id := uuid.NewString()
	log := logger.WithField("inspection_id", id)
	start := time.Now()

	prepared := s.prepare(log, photo)

	masks, err := s.segmenter.Segment(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("segment photo: %w", err)
	}

	out, err := s.run(ctx, id, masks)
	if err != nil {
		return nil, err
	}

	out.Image = prepared
	if out.Report != nil {
		out.Image = s.render(log, prepared, masks, out.Report.Endpoints)
	}

	s.logOutcome(log, out, len(masks), time.Since(start))
	return out, nil
}

// InspectMasks classifies masks that were segmented elsewhere.
func (s *InspectionService) InspectMasks(ctx context.Context, masks []entity.Mask) (*InspectionOutput, error) {
	id := uuid.NewString()
	start := time.Now()

	out, err := s.run(ctx, id, masks)
	if err != nil {
		return nil, err
	}

	s.logOutcome(logger.WithField("inspection_id", id), out, len(masks), time.Since(start))
	return out, nil
}

// InspectForUser runs an inspection on behalf of a bot operator and records its verdict.
func (s *InspectionService) InspectForUser(ctx context.Context, userID, chatID int64, photo []byte) (*InspectionOutput, error) {
	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		return nil, err
	}

	out, err := s.Inspect(ctx, photo)
	if err != nil {
		if _, cancelErr := s.users.Cancel(ctx, userID, chatID); cancelErr != nil {
			logger.WithError(cancelErr).Warn("Failed to reset user state")
		}
		return nil, err
	}

	// no verdict, nothing to record
	if out.Report == nil {
		if _, err := s.users.Cancel(ctx, userID, chatID); err != nil {
			return nil, err
		}
		return out, nil
	}

	if _, err := s.users.Finish(ctx, userID, chatID, out.Report.Verdict); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *InspectionService) run(ctx context.Context, id string, masks []entity.Mask) (*InspectionOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := wiring.Inspect(masks)
	switch {
	case err == nil:
		report.ID = id
		desc, err := s.describe(ctx, report)
		if err != nil {
			return nil, err
		}
		return &InspectionOutput{Report: report, Description: desc}, nil

	case errors.Is(err, entity.ErrDetectionInsufficient), errors.Is(err, entity.ErrStrandCountUnsupported):
		desc, derr := s.describeFailure(ctx, err)
		if derr != nil {
			return nil, derr
		}
		return &InspectionOutput{Failure: err, Description: desc}, nil

	default:
		return nil, fmt.Errorf("inspect strands: %w", err)
	}
}

func (s *InspectionService) prepare(log *logrus.Entry, photo []byte) []byte {
	if s.processor == nil {
		return photo
	}
	prepared, err := s.processor.Letterbox(photo, s.imageSize)
	if err != nil {
		log.WithError(err).Warn("Failed to letterbox photo, using original")
		return photo
	}
	return prepared
}

// render draws the strand masks and then the contact markers. A failed step
// is skipped so the operator still gets the best image available.
func (s *InspectionService) render(log *logrus.Entry, prepared []byte, masks []entity.Mask, set entity.EndpointSet) []byte {
	if s.processor == nil {
		return prepared
	}

	img := prepared
	overlaid, err := s.processor.OverlayMasks(img, masks)
	if err != nil {
		log.WithError(err).Warn("Failed to overlay strand masks")
	} else {
		img = overlaid
	}

	highlighted, err := s.processor.HighlightEndpoints(img, set)
	if err != nil {
		log.WithError(err).Warn("Failed to render contact markers")
		return img
	}
	return highlighted
}

func (s *InspectionService) describe(ctx context.Context, report *entity.WiringReport) (*entity.Description, error) {
	if s.describer == nil {
		return &entity.Description{Title: report.Verdict.String(), Text: report.Verdict.String(), Warning: !report.Verdict.Correct()}, nil
	}
	return s.describer.Describe(ctx, report)
}

func (s *InspectionService) describeFailure(ctx context.Context, failure error) (*entity.Description, error) {
	if s.describer == nil {
		return &entity.Description{Title: "failed", Text: failure.Error(), Warning: true}, nil
	}
	return s.describer.DescribeFailure(ctx, failure)
}

func (s *InspectionService) logOutcome(log *logrus.Entry, out *InspectionOutput, masks int, elapsed time.Duration) {
	fields := logrus.Fields{
		"masks":              masks,
		"processing_time_ms": elapsed.Milliseconds(),
	}
	if out.Report == nil {
		log.WithFields(fields).WithError(out.Failure).Warn("Inspection produced no verdict")
		return
	}
	fields["verdict"] = out.Report.Verdict.String()
	fields["inferred"] = out.Report.Inferred
	log.WithFields(fields).Info("Inspection completed")
}
