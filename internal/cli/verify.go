package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhindeves/fake-news-detector/internal/model"
	"github.com/abhindeves/fake-news-detector/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	maxResults  int
	noCache     bool
	enrichPages bool
	llmProvider string
	llmModel    string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <statement>",
	Short: "Verify a news statement and produce a REAL/FAKE verdict",
	Long: `Verify decomposes a news statement into checkable assumptions, gathers web
evidence for each one, evaluates every assumption against its evidence, and
synthesizes a single REAL/FAKE verdict with rationale and cited sources.

Requires TAVILY_API_KEY plus the API key for the chosen LLM provider
(GEMINI_API_KEY or OPENAI_API_KEY).

Example:
  fakenews verify "The moon landing in 1969 was staged"
  fakenews verify "..." --json report.json --md report.md
  fakenews verify "..." --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	// Output flags
	verifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	verifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")

	// Pipeline flags
	verifyCmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "overall verification timeout")
	verifyCmd.Flags().IntVar(&maxResults, "max-results", 5, "search hits kept per assumption")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search response cache")
	verifyCmd.Flags().BoolVar(&enrichPages, "enrich", false, "fetch evidence pages for longer excerpts")

	// LLM flags
	verifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "gemini", "LLM provider (gemini, openai, ollama)")
	verifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	statement := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Statement: %s\n", statement)
		fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		fmt.Fprintf(os.Stderr, "Search: %s (max %d results)\n", cfg.Search.Provider, cfg.Search.MaxResults)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	report, err := p.Verify(ctx, statement)
	if err != nil {
		return describeFailure(err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d assumptions\n", len(report.Assumptions))
		fmt.Fprintf(os.Stderr, "✓ Evaluated all assumptions (%d supported, %d contradicted, %d inconclusive)\n",
			report.Breakdown.Supported, report.Breakdown.Contradicted, report.Breakdown.Inconclusive)
		fmt.Fprintf(os.Stderr, "✓ Final verdict: %s\n\n", report.Final.Label)
	}

	if outJSON != "" {
		if err := renderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderMarkdown(report, outMD, cfg.Output.IncludeFooter); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderSummary(os.Stdout, report)
	return nil
}

// buildConfig assembles runtime configuration from defaults, flags and
// required environment credentials. Missing credentials fail here, before
// the pipeline is ever constructed.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	cfg.Search.MaxResults = maxResults
	cfg.Cache.Enabled = !noCache
	cfg.Enrich.Enabled = enrichPages
	cfg.Output.Verbose = verbose

	if cfg.Cache.Enabled {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".fakenews", "cache")
		}
	}

	switch strings.ToLower(llmProvider) {
	case "gemini", "google":
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		if llmModel == "" {
			cfg.LLM.Model = "gemini-1.5-flash"
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if llmModel == "" {
			cfg.LLM.Model = "gpt-4o-mini"
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
		if llmModel == "" {
			cfg.LLM.Model = "llama3.2"
		}
	}

	cfg.Search.APIKey = os.Getenv("TAVILY_API_KEY")
	if cfg.Search.APIKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY environment variable not set")
	}

	return cfg, nil
}

// describeFailure names the failed phase in the user-visible error
func describeFailure(err error) error {
	var extractErr *pipeline.ExtractionError
	var synthErr *pipeline.SynthesisError

	switch {
	case errors.Is(err, pipeline.ErrEmptyStatement):
		return fmt.Errorf("input cannot be empty: please provide a statement to verify")
	case errors.As(err, &extractErr):
		return fmt.Errorf("could not identify assumptions to check: %w", err)
	case errors.As(err, &synthErr):
		return fmt.Errorf("could not synthesize a final verdict: %w", err)
	default:
		return err
	}
}
