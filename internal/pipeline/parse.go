package pipeline

import (
	"regexp"
	"strings"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

// Pure parsers for free-text model output. None of these ever fail: malformed
// text always degrades to a typed default.

// bulletPrefix matches leading list markup: "-", "*", "•", "1.", "1)", "(1)"
var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•]+|\(?\d+[.)])\s*`)

// verdictToken matches a per-assumption decision token
var verdictToken = regexp.MustCompile(`(?i)\b(SUPPORTED|CONTRADICTED|INCONCLUSIVE)\b`)

// finalToken matches the synthesizer's decision line, e.g. "Final Result: FAKE"
var finalToken = regexp.MustCompile(`(?i)final\s+result\s*:?\s*\**\s*(REAL|FAKE)`)

// bareFinalToken is the fallback when no "Final Result" line is present
var bareFinalToken = regexp.MustCompile(`(?i)\b(REAL|FAKE)\b`)

// urlPattern matches http(s) URLs in rationale text
var urlPattern = regexp.MustCompile(`https?://[^\s)\]">]+`)

// ParseBullets splits a bullet-point model response into assumptions,
// stripping list markup and discarding blank lines.
func ParseBullets(text string) []model.Assumption {
	var assumptions []model.Assumption
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		// Lines that were pure markup strip down to nothing
		stripped = strings.Trim(stripped, "*_` ")
		if stripped == "" {
			continue
		}
		assumptions = append(assumptions, model.Assumption(stripped))
	}
	return assumptions
}

// ParseVerdictLabel extracts the trailing decision token from an evaluation
// response. The last token wins, since the reasoning text may mention labels
// it then rules out. Returns (INCONCLUSIVE, false) when no token is found.
func ParseVerdictLabel(text string) (model.VerdictLabel, bool) {
	matches := verdictToken.FindAllString(text, -1)
	if len(matches) == 0 {
		return model.LabelInconclusive, false
	}

	switch strings.ToUpper(matches[len(matches)-1]) {
	case "SUPPORTED":
		return model.LabelSupported, true
	case "CONTRADICTED":
		return model.LabelContradicted, true
	default:
		return model.LabelInconclusive, true
	}
}

// ParseFinalLabel extracts the overall REAL/FAKE decision from a synthesis
// response. Prefers an explicit "Final Result:" line; falls back to the last
// bare REAL/FAKE token. Returns (FAKE, false) when neither is present, so the
// caller can surface the forced default.
func ParseFinalLabel(text string) (model.FinalLabel, bool) {
	if m := finalToken.FindStringSubmatch(text); m != nil {
		return toFinalLabel(m[1]), true
	}

	matches := bareFinalToken.FindAllString(text, -1)
	if len(matches) > 0 {
		return toFinalLabel(matches[len(matches)-1]), true
	}

	return model.FinalFake, false
}

func toFinalLabel(token string) model.FinalLabel {
	if strings.EqualFold(token, "REAL") {
		return model.FinalReal
	}
	return model.FinalFake
}

// ExtractURLs extracts all URLs referenced in text, deduplicated, with
// trailing punctuation stripped.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)

	seen := make(map[string]bool)
	var unique []string
	for _, url := range matches {
		url = strings.TrimRight(url, ".,;:!?")
		if !seen[url] {
			seen[url] = true
			unique = append(unique, url)
		}
	}

	return unique
}
