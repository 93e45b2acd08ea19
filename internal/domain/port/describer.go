package port

import (
	"context"

	"wiring-inspector/internal/domain/entity"
)

// VerdictDescriber produces the operator message for an inspection.
type VerdictDescriber interface {
	// Describe explains a finished inspection.
	Describe(ctx context.Context, report *entity.WiringReport) (*entity.Description, error)

	// DescribeFailure explains why an inspection produced no verdict.
	DescribeFailure(ctx context.Context, err error) (*entity.Description, error)
}
