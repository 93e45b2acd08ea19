package wiring

import (
	"wiring-inspector/internal/domain/entity"
)

// Inspect runs the whole pipeline: contact extraction, completion of a
// missing strand and classification. On error no verdict is produced.
// The report ID is left for the caller to assign.
func Inspect(masks []entity.Mask) (*entity.WiringReport, error) {
	records, err := Collect(masks)
	if err != nil {
		return nil, err
	}

	set, err := Complete(records)
	if err != nil {
		return nil, err
	}

	verdict, ordered, err := Classify(set)
	if err != nil {
		return nil, err
	}

	return &entity.WiringReport{
		Verdict:   verdict,
		Endpoints: ordered,
		Detected:  len(records),
		Inferred:  set.Inferred >= 0,
	}, nil
}
