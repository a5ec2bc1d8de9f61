package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

func TestExtractor_BulletResponse(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		return "* Did a moon landing occur in 1969?\n* Was the footage fabricated?", nil
	}}
	extractor := NewExtractor(llm)

	assumptions, err := extractor.Extract(context.Background(), "The moon landing in 1969 was staged")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(assumptions) != 2 {
		t.Fatalf("Expected 2 assumptions, got %d: %v", len(assumptions), assumptions)
	}
	if assumptions[0] != "Did a moon landing occur in 1969?" {
		t.Errorf("Unexpected first assumption: %q", assumptions[0])
	}
}

func TestExtractor_FallbackToWholeResponse(t *testing.T) {
	// A response with no parsable bullets becomes a single assumption
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		return "The statement assumes the moon landing happened in 1969.", nil
	}}
	extractor := NewExtractor(llm)

	assumptions, err := extractor.Extract(context.Background(), "some statement")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(assumptions) != 1 {
		t.Fatalf("Expected 1 fallback assumption, got %d", len(assumptions))
	}
	if assumptions[0] != "The statement assumes the moon landing happened in 1969." {
		t.Errorf("Unexpected fallback assumption: %q", assumptions[0])
	}
}

func TestExtractor_EmptyStatement(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		t.Fatal("model must not be called for empty input")
		return "", nil
	}}
	extractor := NewExtractor(llm)

	for _, input := range []model.Statement{"", "   ", "\t\n"} {
		if _, err := extractor.Extract(context.Background(), input); !errors.Is(err, ErrEmptyStatement) {
			t.Errorf("Extract(%q) error = %v, want ErrEmptyStatement", input, err)
		}
	}

	if llm.callCount() != 0 {
		t.Errorf("Expected no model calls, got %d", llm.callCount())
	}
}

func TestExtractor_ModelError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		return "", cause
	}}
	extractor := NewExtractor(llm)

	_, err := extractor.Extract(context.Background(), "some statement")

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected *ExtractionError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("ExtractionError should wrap the cause, got %v", err)
	}
}

func TestExtractor_BlankResponse(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		return "   \n  ", nil
	}}
	extractor := NewExtractor(llm)

	_, err := extractor.Extract(context.Background(), "some statement")

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected *ExtractionError for blank response, got %v", err)
	}
}

func TestExtractor_PromptContainsStatement(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		return "* An assumption", nil
	}}
	extractor := NewExtractor(llm)

	if _, err := extractor.Extract(context.Background(), "water is wet"); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("Expected 1 prompt, got %d", len(llm.prompts))
	}
	if got := llm.prompts[0]; !strings.Contains(got, "water is wet") {
		t.Errorf("Prompt does not contain the statement:\n%s", got)
	}
}
