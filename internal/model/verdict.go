package model

// VerdictLabel is the possible outcome of evaluating one assumption
type VerdictLabel string

const (
	LabelSupported    VerdictLabel = "SUPPORTED"
	LabelContradicted VerdictLabel = "CONTRADICTED"
	LabelInconclusive VerdictLabel = "INCONCLUSIVE"
)

// FinalLabel is the overall call on the statement
type FinalLabel string

const (
	FinalReal FinalLabel = "REAL"
	FinalFake FinalLabel = "FAKE"
)

// AssumptionVerdict is the evaluator's structured judgment of one assumption
// against its evidence. Never mutated after creation.
type AssumptionVerdict struct {
	Assumption Assumption   `json:"assumption"`
	Label      VerdictLabel `json:"label"`
	Rationale  string       `json:"rationale"`            // Step-by-step reasoning text
	CitedURLs  []string     `json:"cited_urls,omitempty"` // Always a subset of the evidence URLs supplied
}

// FinalVerdict is the synthesizer's single REAL/FAKE call on the statement.
type FinalVerdict struct {
	Label     FinalLabel `json:"label"`
	Rationale string     `json:"rationale"`
	Forced    bool       `json:"forced,omitempty"` // True when the label is a default, not a parsed model decision
}
