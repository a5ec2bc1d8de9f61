package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

// renderJSON writes the full report as indented JSON
func renderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// renderMarkdown writes a human-readable report with expandable per-assumption
// detail
func renderMarkdown(report *model.Report, path string, includeFooter bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# News Verification Report\n\n")
	fmt.Fprintf(&b, "**Statement:** %s\n\n", report.Statement)
	fmt.Fprintf(&b, "**Verdict:** %s", report.Final.Label)
	if report.Final.Forced {
		fmt.Fprintf(&b, " (forced default)")
	}
	fmt.Fprintf(&b, "\n\n**Verified:** %s\n\n", report.VerifiedAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "## Overall Reasoning\n\n%s\n\n", report.Final.Rationale)

	fmt.Fprintf(&b, "## Assumptions (%d supported, %d contradicted, %d inconclusive)\n\n",
		report.Breakdown.Supported, report.Breakdown.Contradicted, report.Breakdown.Inconclusive)

	for i, v := range report.Verdicts {
		fmt.Fprintf(&b, "### %d. %s [%s]\n\n", i+1, v.Assumption, v.Label)
		fmt.Fprintf(&b, "<details>\n<summary>Reasoning</summary>\n\n%s\n\n</details>\n\n", v.Rationale)

		if len(v.CitedURLs) > 0 {
			fmt.Fprintf(&b, "Sources:\n")
			for _, url := range v.CitedURLs {
				fmt.Fprintf(&b, "- %s\n", url)
			}
			fmt.Fprintf(&b, "\n")
		}
	}

	fmt.Fprintf(&b, "## Evidence\n\n")
	for _, assumption := range report.Assumptions {
		items := report.Evidence[assumption]
		fmt.Fprintf(&b, "**%s** (%d results)\n\n", assumption, len(items))
		for _, item := range items {
			fmt.Fprintf(&b, "- [%s](%s) (%s)\n", item.Title, item.URL, item.Authority)
		}
		fmt.Fprintf(&b, "\n")
	}

	if includeFooter {
		fmt.Fprintf(&b, "---\nGenerated by fakenews in %s\n", report.Timing.Total.Round(time.Millisecond))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// renderSummary prints the terminal summary of a verification run
func renderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Verdict: %s", report.Final.Label)
	if report.Final.Forced {
		fmt.Fprintf(w, "  (forced default - model gave no explicit decision)")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Statement: %s\n\n", report.Statement)

	for i, v := range report.Verdicts {
		fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, v.Label, v.Assumption)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, report.Final.Rationale)
	fmt.Fprintln(w)

	// Deduplicated source list across all assumptions
	seen := make(map[string]bool)
	var sources []string
	for _, v := range report.Verdicts {
		for _, url := range v.CitedURLs {
			if !seen[url] {
				seen[url] = true
				sources = append(sources, url)
			}
		}
	}
	if len(sources) > 0 {
		fmt.Fprintln(w, "Sources:")
		for _, url := range sources {
			fmt.Fprintf(w, "  - %s\n", url)
		}
	}
}
