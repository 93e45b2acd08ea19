package wiring

import (
	"fmt"

	"wiring-inspector/internal/domain/entity"
)

// Collect extracts contact points from every mask, keeping input order.
// Fewer than entity.MinStrands masks is reported as ErrDetectionInsufficient.
func Collect(masks []entity.Mask) ([]entity.StrandRecord, error) {
	if len(masks) < entity.MinStrands {
		return nil, &entity.DetectionError{Found: len(masks), Err: entity.ErrDetectionInsufficient}
	}

	records := make([]entity.StrandRecord, 0, len(masks))
	for i, m := range masks {
		top, bottom, err := Extract(m)
		if err != nil {
			return nil, fmt.Errorf("strand %d: %w", i, err)
		}
		records = append(records, entity.StrandRecord{Mask: m, Top: top, Bottom: bottom})
	}

	return records, nil
}
