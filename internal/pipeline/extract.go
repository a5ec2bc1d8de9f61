package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhindeves/fake-news-detector/internal/llm"
	"github.com/abhindeves/fake-news-detector/internal/model"
)

// Extractor turns a free-text statement into an ordered list of atomic,
// independently checkable assumptions.
type Extractor struct {
	provider llm.Provider
}

// NewExtractor creates a new assumption extractor
func NewExtractor(provider llm.Provider) *Extractor {
	return &Extractor{provider: provider}
}

// Extract derives assumptions from the statement with one generation call.
// A model response with no parsable bullets degrades to a single assumption
// holding the whole response; a failed call is fatal.
func (e *Extractor) Extract(ctx context.Context, statement model.Statement) ([]model.Assumption, error) {
	if statement.IsEmpty() {
		return nil, ErrEmptyStatement
	}

	response, err := e.provider.Generate(ctx, extractionPrompt(statement))
	if err != nil {
		return nil, &ExtractionError{Cause: err}
	}

	assumptions := ParseBullets(response)
	if len(assumptions) == 0 {
		// Fallback: treat the entire response as one assumption so the
		// pipeline always has something to evaluate
		trimmed := strings.TrimSpace(response)
		if trimmed == "" {
			return nil, &ExtractionError{Cause: fmt.Errorf("model returned no usable text")}
		}
		assumptions = []model.Assumption{model.Assumption(trimmed)}
	}

	return assumptions, nil
}

// extractionPrompt instructs the model to output only bullet-point atomic
// claims, each phrased as a question that can be queried online.
func extractionPrompt(statement model.Statement) string {
	return fmt.Sprintf(`Here is a statement:
%s

Make a bullet point list of the assumptions you made when given the above statement.
These assumptions will then be used to check online for the validity of the statement.
Only give bullet points, no other text.

Example:

Input:
deepseek company is owned by elon musk

Output:
* Does Elon Musk own DeepSeek?
* Does Elon Musk have any publicly known business interests or holdings that could include a company named "DeepSeek"?
* Are there any news articles, press releases, or official statements confirming Elon Musk's ownership of "DeepSeek"?
* Do any financial databases or corporate registries list Elon Musk as an owner or shareholder of "DeepSeek"?
`, statement)
}
