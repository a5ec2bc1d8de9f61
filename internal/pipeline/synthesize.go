package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhindeves/fake-news-detector/internal/llm"
	"github.com/abhindeves/fake-news-detector/internal/model"
)

// forcedDefaultNotice flags a FinalVerdict whose label was not parsed from
// the model's answer, so callers can distinguish it from a genuine decision.
const forcedDefaultNotice = "UNDETERMINED: the model did not produce an explicit REAL/FAKE decision; " +
	"defaulting to FAKE. Treat this verdict with low confidence.\n\n"

// Synthesizer combines the per-assumption verdicts into one REAL/FAKE call
type Synthesizer struct {
	provider llm.Provider
}

// NewSynthesizer creates a new verdict synthesizer
func NewSynthesizer(provider llm.Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

// Synthesize produces the final verdict from the full ordered verdict
// sequence. All-INCONCLUSIVE input still yields a verdict; only a failed
// model call is fatal.
func (s *Synthesizer) Synthesize(ctx context.Context, statement model.Statement, verdicts []model.AssumptionVerdict) (model.FinalVerdict, error) {
	if len(verdicts) == 0 {
		return model.FinalVerdict{}, &SynthesisError{Cause: fmt.Errorf("no assumption verdicts to synthesize")}
	}

	response, err := s.provider.Generate(ctx, synthesisPrompt(statement, verdicts))
	if err != nil {
		return model.FinalVerdict{}, &SynthesisError{Cause: err}
	}

	label, found := ParseFinalLabel(response)
	if !found {
		return model.FinalVerdict{
			Label:     label,
			Rationale: forcedDefaultNotice + response,
			Forced:    true,
		}, nil
	}

	return model.FinalVerdict{
		Label:     label,
		Rationale: response,
	}, nil
}

// synthesisPrompt consolidates every assumption's label and reasoning into
// one request for an overall decision
func synthesisPrompt(statement model.Statement, verdicts []model.AssumptionVerdict) string {
	var steps strings.Builder
	for i, v := range verdicts {
		fmt.Fprintf(&steps, "Assumption %d: %s\nPreliminary label: %s\nReasoning:\n%s\n\n",
			i+1, v.Assumption, v.Label, v.Rationale)
	}

	return fmt.Sprintf(`You are provided with reasoning steps, where each step includes its chain of thought and a
preliminary label for one assumption derived from a news statement. Your task is to synthesize
these steps into a cohesive overall reasoning narrative and decide whether the news statement
is FAKE or REAL.

The statement:
%s

Instructions:
1. Read and understand each reasoning step below.
2. Extract key evidence and conclusions.
3. Combine these pieces into a single comprehensive chain of thought.
4. Decide if the news is FAKE or REAL.
5. Clearly justify your final decision so people can easily understand it.
6. If the evidence is insufficient for every assumption, say so explicitly in your reasoning.

Output format:
Final Result: [FAKE or REAL]

Overall Reasoning: [Detailed explanation combining evidence and reasoning.]

Reasoning steps:
%s`, statement, steps.String())
}
