package pipeline

import (
	"reflect"
	"testing"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

func TestParseBullets_StripMarkup(t *testing.T) {
	text := `* Does Elon Musk own DeepSeek?
- Was the company founded in 2023?
• Is there an official press release?
1. Do corporate registries list him as owner?
2) Is the claim reported by major outlets?

   `

	got := ParseBullets(text)

	want := []model.Assumption{
		"Does Elon Musk own DeepSeek?",
		"Was the company founded in 2023?",
		"Is there an official press release?",
		"Do corporate registries list him as owner?",
		"Is the claim reported by major outlets?",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBullets() = %v, want %v", got, want)
	}
}

func TestParseBullets_BlankAndMarkupOnlyLines(t *testing.T) {
	text := "*\n- \n\n**\n* Real assumption here\n"

	got := ParseBullets(text)
	if len(got) != 1 {
		t.Fatalf("Expected 1 assumption, got %d: %v", len(got), got)
	}
	if got[0] != "Real assumption here" {
		t.Errorf("Unexpected assumption: %q", got[0])
	}
}

func TestParseBullets_Empty(t *testing.T) {
	if got := ParseBullets(""); len(got) != 0 {
		t.Errorf("Expected no assumptions for empty text, got %v", got)
	}
	if got := ParseBullets("   \n\t\n"); len(got) != 0 {
		t.Errorf("Expected no assumptions for whitespace text, got %v", got)
	}
}

func TestParseVerdictLabel(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel model.VerdictLabel
		wantFound bool
	}{
		{
			name:      "trailing supported token",
			text:      "Step 1: the evidence confirms the landing.\n\nSUPPORTED",
			wantLabel: model.LabelSupported,
			wantFound: true,
		},
		{
			name:      "trailing contradicted token",
			text:      "The sources refute this.\nCONTRADICTED",
			wantLabel: model.LabelContradicted,
			wantFound: true,
		},
		{
			name:      "lowercase token",
			text:      "the evidence is thin.\n\ninconclusive",
			wantLabel: model.LabelInconclusive,
			wantFound: true,
		},
		{
			name:      "last token wins",
			text:      "This could be SUPPORTED, but the dates conflict. CONTRADICTED",
			wantLabel: model.LabelContradicted,
			wantFound: true,
		},
		{
			name:      "no token defaults to inconclusive",
			text:      "I am not sure about this one.",
			wantLabel: model.LabelInconclusive,
			wantFound: false,
		},
		{
			name:      "empty text",
			text:      "",
			wantLabel: model.LabelInconclusive,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, found := ParseVerdictLabel(tt.text)
			if label != tt.wantLabel {
				t.Errorf("ParseVerdictLabel() label = %v, want %v", label, tt.wantLabel)
			}
			if found != tt.wantFound {
				t.Errorf("ParseVerdictLabel() found = %v, want %v", found, tt.wantFound)
			}
		})
	}
}

func TestParseFinalLabel(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel model.FinalLabel
		wantFound bool
	}{
		{
			name:      "final result real",
			text:      "Final Result: REAL\n\nOverall Reasoning: the landing is well documented.",
			wantLabel: model.FinalReal,
			wantFound: true,
		},
		{
			name:      "final result fake lowercase",
			text:      "final result: fake\nthe claim contradicts every source.",
			wantLabel: model.FinalFake,
			wantFound: true,
		},
		{
			name:      "markdown bold token",
			text:      "Final Result: **FAKE**\n\nOverall Reasoning: ...",
			wantLabel: model.FinalFake,
			wantFound: true,
		},
		{
			name:      "bare trailing token fallback",
			text:      "After weighing the evidence the verdict is REAL",
			wantLabel: model.FinalReal,
			wantFound: true,
		},
		{
			name:      "missing token defaults to fake",
			text:      "I cannot decide either way.",
			wantLabel: model.FinalFake,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, found := ParseFinalLabel(tt.text)
			if label != tt.wantLabel {
				t.Errorf("ParseFinalLabel() label = %v, want %v", label, tt.wantLabel)
			}
			if found != tt.wantFound {
				t.Errorf("ParseFinalLabel() found = %v, want %v", found, tt.wantFound)
			}
		})
	}
}

func TestExtractURLs(t *testing.T) {
	text := `See https://example.com/a and (https://example.com/b) for details.
Also https://example.com/a, again.`

	got := ExtractURLs(text)

	want := []string{"https://example.com/a", "https://example.com/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractURLs() = %v, want %v", got, want)
	}
}

func TestExtractURLs_None(t *testing.T) {
	if got := ExtractURLs("no links here"); len(got) != 0 {
		t.Errorf("Expected no URLs, got %v", got)
	}
}
