package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhindeves/fake-news-detector/internal/llm"
	"github.com/abhindeves/fake-news-detector/internal/model"
	"github.com/abhindeves/fake-news-detector/internal/worker"
)

// Evaluator judges each assumption against its gathered evidence. One task
// per assumption, all concurrent; a failed model call for one assumption
// degrades to an INCONCLUSIVE verdict and never aborts the run.
type Evaluator struct {
	provider llm.Provider
	pool     *worker.Pool
}

// NewEvaluator creates a new assumption evaluator
func NewEvaluator(provider llm.Provider, workers int) *Evaluator {
	return &Evaluator{
		provider: provider,
		pool:     worker.NewPool(workers),
	}
}

type evaluateOutcome struct {
	verdict model.AssumptionVerdict
}

func (o evaluateOutcome) Err() error { return nil }

// EvaluateAll evaluates every assumption concurrently once the full evidence
// set is available. The returned slice is index-aligned with assumptions.
func (e *Evaluator) EvaluateAll(ctx context.Context, statement model.Statement, assumptions []model.Assumption, evidence model.EvidenceSet) []model.AssumptionVerdict {
	tasks := make([]worker.Task, len(assumptions))
	for i, assumption := range assumptions {
		a := assumption
		tasks[i] = worker.TaskFunc(func(ctx context.Context) worker.Outcome {
			return evaluateOutcome{verdict: e.Evaluate(ctx, statement, a, evidence[a])}
		})
	}

	outcomes := e.pool.Run(ctx, tasks)

	verdicts := make([]model.AssumptionVerdict, len(assumptions))
	for i, assumption := range assumptions {
		if o, ok := outcomes[i].(evaluateOutcome); ok {
			verdicts[i] = o.verdict
			continue
		}
		// Task never started: the run was cancelled
		verdicts[i] = model.AssumptionVerdict{
			Assumption: assumption,
			Label:      model.LabelInconclusive,
			Rationale:  "Evaluation was cancelled before this assumption could be checked.",
		}
	}

	return verdicts
}

// Evaluate judges one assumption against its evidence. Never returns an
// error: model failures and missing evidence both yield INCONCLUSIVE.
func (e *Evaluator) Evaluate(ctx context.Context, statement model.Statement, assumption model.Assumption, items []model.EvidenceItem) model.AssumptionVerdict {
	if len(items) == 0 {
		return model.AssumptionVerdict{
			Assumption: assumption,
			Label:      model.LabelInconclusive,
			Rationale:  "No evidence could be gathered for this assumption, so it cannot be confirmed or refuted.",
		}
	}

	response, err := e.provider.Generate(ctx, evaluationPrompt(statement, assumption, items))
	if err != nil {
		return model.AssumptionVerdict{
			Assumption: assumption,
			Label:      model.LabelInconclusive,
			Rationale:  fmt.Sprintf("Evaluation failed (%v); treating this assumption as unverifiable.", err),
		}
	}

	label, _ := ParseVerdictLabel(response)

	return model.AssumptionVerdict{
		Assumption: assumption,
		Label:      label,
		Rationale:  response,
		CitedURLs:  citedURLs(response, items),
	}
}

// citedURLs returns the evidence URLs the rationale actually references.
// When the model cites none of them, all supplied URLs are attributed
// conservatively, so the result is always a non-empty subset of the evidence
// URLs whenever evidence exists.
func citedURLs(rationale string, items []model.EvidenceItem) []string {
	supplied := make(map[string]bool, len(items))
	var all []string
	for _, item := range items {
		if !supplied[item.URL] {
			supplied[item.URL] = true
			all = append(all, item.URL)
		}
	}

	var cited []string
	for _, url := range ExtractURLs(rationale) {
		if supplied[url] {
			cited = append(cited, url)
		}
	}

	if len(cited) == 0 {
		return all
	}
	return cited
}

// evaluationPrompt asks for step-by-step reasoning ending in an explicit
// decision token
func evaluationPrompt(statement model.Statement, assumption model.Assumption, items []model.EvidenceItem) string {
	var evidence strings.Builder
	for i, item := range items {
		fmt.Fprintf(&evidence, "[%d] %s\n%s\nSource: %s\n\n", i+1, item.Title, item.Snippet, item.URL)
	}

	return fmt.Sprintf(`Here is a claim derived from a news statement:
%s

The original statement was:
%s

Carefully analyze the correctness of this claim using the following information gathered from the internet:

%s
### Step-by-Step Evaluation:
1. Identify what the claim asserts.
2. Cross-check the claim against the evidence above and assess whether they align.
3. Consider any contradictions or missing details that might affect the validity of the claim.
4. Cite the source URLs of the evidence you relied on.

### Final Decision:
End your answer with exactly one of these tokens on its own line:
SUPPORTED if the evidence confirms the claim,
CONTRADICTED if the evidence refutes the claim,
INCONCLUSIVE if the evidence is insufficient either way.
`, assumption, statement, evidence.String())
}
