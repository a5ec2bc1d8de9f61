package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhindeves/fake-news-detector/internal/model"
	"github.com/abhindeves/fake-news-detector/internal/util"
	"github.com/abhindeves/fake-news-detector/internal/worker"
)

// TavilyProvider implements the Provider interface for the Tavily search API
type TavilyProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	classifier *AuthorityClassifier
	limiter    *worker.Limiter
}

// Tavily API structures
type tavilyRequest struct {
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results,omitempty"`
	SearchDepth string `json:"search_depth,omitempty"`
	Topic       string `json:"topic,omitempty"`
}

type tavilyResponse struct {
	Query   string `json:"query"`
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score,omitempty"`
	} `json:"results"`
}

type tavilyError struct {
	Detail struct {
		Error string `json:"error"`
	} `json:"detail"`
}

// NewTavilyProvider creates a new Tavily provider
func NewTavilyProvider(config Config) (*TavilyProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Tavily API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.tavily.com"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = 2.0
	}

	return &TavilyProvider{
		apiKey:  config.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
			},
		},
		classifier: NewAuthorityClassifier(),
		limiter:    worker.NewLimiter(rateLimit, config.RateBurst),
	}, nil
}

// Name returns the provider identifier
func (p *TavilyProvider) Name() string {
	return "tavily"
}

// Search queries the Tavily search endpoint and maps hits to evidence items.
// Hits with invalid or relative URLs are dropped; duplicates by URL are
// deduplicated; results are ordered most-authoritative-first.
func (p *TavilyProvider) Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	reqBody := tavilyRequest{
		Query:       query,
		MaxResults:  maxResults,
		SearchDepth: "basic",
		Topic:       "news",
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	if err := p.limiter.Wait(ctx, p.baseURL); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Tavily API request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr tavilyError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail.Error != "" {
			return nil, fmt.Errorf("Tavily API error (%d): %s", resp.StatusCode, apiErr.Detail.Error)
		}
		return nil, fmt.Errorf("Tavily API error: HTTP %d", resp.StatusCode)
	}

	var searchResp tavilyResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	seen := make(map[string]bool)
	var items []model.EvidenceItem
	for _, hit := range searchResp.Results {
		host, ok := validHost(hit.URL)
		if !ok || seen[hit.URL] {
			continue
		}
		seen[hit.URL] = true

		items = append(items, model.EvidenceItem{
			Title:     strings.TrimSpace(hit.Title),
			URL:       hit.URL,
			Snippet:   strings.TrimSpace(hit.Content),
			Host:      host,
			Authority: p.classifier.Classify(hit.URL),
		})
		if len(items) >= maxResults {
			break
		}
	}

	return SortByAuthority(items), nil
}

// validHost reports whether rawURL is a syntactically valid absolute
// http(s) URL, returning its host when it is.
func validHost(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", false
	}
	if parsed.Host == "" {
		return "", false
	}
	return parsed.Hostname(), true
}
