package model

import "time"

// Report is the complete record of one verification run: the final verdict
// plus every intermediate artifact the presentation layer may want to show.
type Report struct {
	Statement  Statement `json:"statement"`
	VerifiedAt time.Time `json:"verified_at"`

	Assumptions []Assumption        `json:"assumptions"` // Extraction order, preserved through display
	Evidence    EvidenceSet         `json:"evidence"`
	Verdicts    []AssumptionVerdict `json:"verdicts"` // One per assumption, extraction order

	Final     FinalVerdict     `json:"final"`
	Breakdown VerdictBreakdown `json:"breakdown"`
	Timing    Timing           `json:"timing"`
}

// VerdictBreakdown counts per-assumption labels for display. It carries no
// confidence semantics.
type VerdictBreakdown struct {
	Supported    int `json:"supported"`
	Contradicted int `json:"contradicted"`
	Inconclusive int `json:"inconclusive"`
}

// Tally counts the labels of a verdict sequence.
func Tally(verdicts []AssumptionVerdict) VerdictBreakdown {
	var b VerdictBreakdown
	for _, v := range verdicts {
		switch v.Label {
		case LabelSupported:
			b.Supported++
		case LabelContradicted:
			b.Contradicted++
		default:
			b.Inconclusive++
		}
	}
	return b
}

// Timing records per-phase wall-clock durations
type Timing struct {
	Extract    time.Duration `json:"extract_ns"`
	Gather     time.Duration `json:"gather_ns"`
	Evaluate   time.Duration `json:"evaluate_ns"`
	Synthesize time.Duration `json:"synthesize_ns"`
	Total      time.Duration `json:"total_ns"`
}
