package describer

import (
	"context"
	"errors"
	"fmt"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
)

const (
	msgLeftSource    = "✅ Wiring is most likely correct (supply on the left)."
	msgRightSource   = "✅ Wiring is most likely correct (supply on the right)."
	msgIndeterminate = "⚠️ Possible miswiring. Please check the connector visually."
	msgNoDetection   = "🚨 Strand detection failed. Please check the connector visually."
	msgTooMany       = "🚨 More strands than terminals were detected. Please check the connector visually."
	msgFailed        = "⚠️ The photo could not be inspected. Please try another photo."
)

// TextDescriber produces fixed operator messages.
type TextDescriber struct{}

// NewTextDescriber creates a describer.
func NewTextDescriber() *TextDescriber {
	return &TextDescriber{}
}

// Describe returns the verdict message with detection details.
func (d *TextDescriber) Describe(ctx context.Context, report *entity.WiringReport) (*entity.Description, error) {
	if report == nil {
		return nil, errors.New("nil report")
	}

	desc := &entity.Description{Title: report.Verdict.String()}
	switch report.Verdict {
	case entity.VerdictLeftSourceCorrect:
		desc.Text = msgLeftSource
	case entity.VerdictRightSourceCorrect:
		desc.Text = msgRightSource
	default:
		desc.Text = msgIndeterminate
		desc.Warning = true
	}

	if report.Inferred {
		desc.Text += fmt.Sprintf("\nDetected %d of %d strands, the missing one was estimated.",
			report.Detected, entity.ExpectedStrands)
	}

	return desc, nil
}

// DescribeFailure explains an inspection that produced no verdict.
func (d *TextDescriber) DescribeFailure(ctx context.Context, err error) (*entity.Description, error) {
	desc := &entity.Description{Title: "failed", Warning: true}

	var detErr *entity.DetectionError
	switch {
	case errors.Is(err, entity.ErrDetectionInsufficient):
		desc.Text = msgNoDetection
		if errors.As(err, &detErr) {
			desc.Text += fmt.Sprintf("\nDetected %d of %d strands.", detErr.Found, entity.ExpectedStrands)
		}
	case errors.Is(err, entity.ErrStrandCountUnsupported):
		desc.Text = msgTooMany
	default:
		desc.Text = msgFailed
	}

	return desc, nil
}

var _ port.VerdictDescriber = (*TextDescriber)(nil)
