package entity

import (
	"encoding/json"
	"fmt"
)

// WiringVerdict is the outcome of the alternation check.
type WiringVerdict int

const (
	VerdictIndeterminate      WiringVerdict = iota // geometry matches neither correct pattern
	VerdictLeftSourceCorrect                       // supply on the left terminal pair
	VerdictRightSourceCorrect                      // supply on the right terminal pair
)

var verdictNames = map[WiringVerdict]string{
	VerdictIndeterminate:      "indeterminate",
	VerdictLeftSourceCorrect:  "left_source_correct",
	VerdictRightSourceCorrect: "right_source_correct",
}

func (v WiringVerdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

// Correct reports whether the verdict is one of the two known-good patterns.
func (v WiringVerdict) Correct() bool {
	return v == VerdictLeftSourceCorrect || v == VerdictRightSourceCorrect
}

// MarshalJSON encodes the verdict by name.
func (v WiringVerdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// WiringReport is the result of one inspection.
type WiringReport struct {
	ID        string        `json:"id"`
	Verdict   WiringVerdict `json:"verdict"`
	Endpoints EndpointSet   `json:"endpoints"` // ordered by top column
	Detected  int           `json:"detected"`  // strands found by the segmenter
	Inferred  bool          `json:"inferred"`  // a fourth strand was synthesized
}

// Description is the operator-facing text for a report.
type Description struct {
	Title   string
	Text    string
	Warning bool
}
