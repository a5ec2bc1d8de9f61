package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Enrich.Enabled = false
	return cfg
}

// Scenario: a staged-moon-landing statement decomposes into assumptions, the
// well-documented one is SUPPORTED, and the final call is FAKE.
func TestPipeline_EndToEnd(t *testing.T) {
	statement := "The moon landing in 1969 was staged"

	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "bullet point list of the assumptions"):
			return "* Did a moon landing occur in 1969?\n* Was the 1969 moon landing footage fabricated?", nil
		case strings.Contains(prompt, "Did a moon landing occur in 1969?") && strings.Contains(prompt, "Final Decision"):
			return "The landing is confirmed by https://nasa.gov/apollo11.\nSUPPORTED", nil
		case strings.Contains(prompt, "footage fabricated") && strings.Contains(prompt, "Final Decision"):
			return "Fact-checkers at https://snopes.com/moon refute the fabrication claim.\nCONTRADICTED", nil
		case strings.Contains(prompt, "Final Result"):
			return "Final Result: FAKE\n\nOverall Reasoning: the landing occurred and the staging claim is contradicted.", nil
		default:
			return "", fmt.Errorf("unexpected prompt: %.80s", prompt)
		}
	}}

	search := &fakeSearch{results: map[string][]model.EvidenceItem{
		"Did a moon landing occur in 1969?":            evidenceFor("https://nasa.gov/apollo11"),
		"Was the 1969 moon landing footage fabricated?": evidenceFor("https://snopes.com/moon"),
	}}

	p := NewWithProviders(testConfig(), llm, search)

	report, err := p.Verify(context.Background(), statement)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if len(report.Assumptions) != 2 {
		t.Fatalf("Expected 2 assumptions, got %d", len(report.Assumptions))
	}
	if len(report.Verdicts) != 2 {
		t.Fatalf("Expected 2 verdicts, got %d", len(report.Verdicts))
	}
	if report.Verdicts[0].Label != model.LabelSupported {
		t.Errorf("Expected first assumption SUPPORTED, got %s", report.Verdicts[0].Label)
	}
	if report.Verdicts[1].Label != model.LabelContradicted {
		t.Errorf("Expected second assumption CONTRADICTED, got %s", report.Verdicts[1].Label)
	}
	if report.Final.Label != model.FinalFake {
		t.Errorf("Expected FAKE, got %s", report.Final.Label)
	}
	if report.Breakdown.Supported != 1 || report.Breakdown.Contradicted != 1 {
		t.Errorf("Unexpected breakdown: %+v", report.Breakdown)
	}
	if len(report.Evidence["Did a moon landing occur in 1969?"]) != 1 {
		t.Error("Evidence set missing the gathered hit")
	}
}

// Scenario: empty input fails before any network call
func TestPipeline_EmptyStatement(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		t.Fatal("no model call expected")
		return "", nil
	}}
	search := &fakeSearch{}

	p := NewWithProviders(testConfig(), llm, search)

	report, err := p.Verify(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyStatement) {
		t.Fatalf("Expected ErrEmptyStatement, got %v", err)
	}
	if report != nil {
		t.Error("Expected no report for empty input")
	}
	if llm.callCount() != 0 || search.callCount() != 0 {
		t.Error("Expected zero backend calls for empty input")
	}
}

// Scenario: every search fails; all verdicts degrade to INCONCLUSIVE and the
// synthesizer still produces a final verdict.
func TestPipeline_SearchBackendDown(t *testing.T) {
	llm := &fakeLLM{respond: respondByPhase(
		"* First claim?\n* Second claim?",
		"should not be reached",
		"Final Result: FAKE\n\nOverall Reasoning: no assumption could be verified; evidence was unavailable.",
	)}
	search := &fakeSearch{err: fmt.Errorf("search API unreachable")}

	p := NewWithProviders(testConfig(), llm, search)

	report, err := p.Verify(context.Background(), "some dubious statement")
	if err != nil {
		t.Fatalf("Verify must survive total search failure: %v", err)
	}

	for _, v := range report.Verdicts {
		if v.Label != model.LabelInconclusive {
			t.Errorf("Expected INCONCLUSIVE for %q, got %s", v.Assumption, v.Label)
		}
	}
	if report.Final.Label == "" {
		t.Error("Expected a final verdict despite degraded evidence")
	}
	if report.Breakdown.Inconclusive != 2 {
		t.Errorf("Expected 2 inconclusive, got %+v", report.Breakdown)
	}
}

func TestPipeline_ExtractionErrorIsFatal(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		return "", fmt.Errorf("model down")
	}}
	search := &fakeSearch{}

	p := NewWithProviders(testConfig(), llm, search)

	_, err := p.Verify(context.Background(), "a statement")

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected *ExtractionError, got %v", err)
	}
	// Extraction failure must prevent all downstream phases
	if search.callCount() != 0 {
		t.Errorf("Expected no search calls after extraction failure, got %d", search.callCount())
	}
}

func TestPipeline_SynthesisErrorIsFatal(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "bullet point list of the assumptions"):
			return "* Only claim?", nil
		case strings.Contains(prompt, "Final Decision"):
			return "Looks fine.\nSUPPORTED", nil
		default:
			return "", fmt.Errorf("synthesis quota exhausted")
		}
	}}
	search := &fakeSearch{results: map[string][]model.EvidenceItem{
		"Only claim?": evidenceFor("https://example.com/a"),
	}}

	p := NewWithProviders(testConfig(), llm, search)

	_, err := p.Verify(context.Background(), "a statement")

	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) {
		t.Fatalf("Expected *SynthesisError, got %v", err)
	}
}

func TestPipeline_CancellationStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		// Cancel mid-run, right after extraction succeeds
		cancel()
		return "* A claim?", nil
	}}
	search := &fakeSearch{}

	p := NewWithProviders(testConfig(), llm, search)

	_, err := p.Verify(ctx, "a statement")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}
