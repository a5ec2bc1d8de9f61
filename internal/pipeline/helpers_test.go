package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

// fakeLLM is a scriptable llm.Provider. The respond func receives each prompt
// and returns the canned completion or an error.
type fakeLLM struct {
	respond func(prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) IsAvailable(ctx context.Context) bool { return true }

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.respond(prompt)
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// fakeSearch is a scriptable search.Provider keyed by query text
type fakeSearch struct {
	results map[string][]model.EvidenceItem
	err     error

	mu    sync.Mutex
	calls int
}

func (f *fakeSearch) Name() string { return "fakesearch" }

func (f *fakeSearch) Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	items, ok := f.results[query]
	if !ok {
		return []model.EvidenceItem{}, nil
	}
	if len(items) > maxResults {
		items = items[:maxResults]
	}
	return items, nil
}

func (f *fakeSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func evidenceFor(urls ...string) []model.EvidenceItem {
	var items []model.EvidenceItem
	for i, url := range urls {
		items = append(items, model.EvidenceItem{
			Title:   fmt.Sprintf("Result %d", i+1),
			URL:     url,
			Snippet: "snippet text",
		})
	}
	return items
}

// respondByPhase routes prompts to canned answers based on recognizable
// prompt fragments, so one fakeLLM can serve all pipeline phases.
func respondByPhase(extraction, evaluation, synthesis string) func(string) (string, error) {
	return func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "bullet point list of the assumptions"):
			return extraction, nil
		case strings.Contains(prompt, "Step-by-Step Evaluation"):
			return evaluation, nil
		case strings.Contains(prompt, "FAKE or REAL"):
			return synthesis, nil
		default:
			return "", fmt.Errorf("unrecognized prompt: %.60s", prompt)
		}
	}
}
