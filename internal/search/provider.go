package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

// Provider defines the interface for search backends. Used by the gatherer to
// fetch evidence for one assumption at a time.
type Provider interface {
	// Name returns the provider identifier (e.g., "tavily")
	Name() string

	// Search returns up to maxResults hits for the query
	Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error)
}

// Config holds search provider configuration
type Config struct {
	// Provider name: "tavily"
	Provider string

	// APIKey for the search backend
	APIKey string

	// BaseURL for custom endpoints (e.g., test servers)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// RateLimit is the request rate against the search backend, in
	// requests per second, with RateBurst as the bucket size
	RateLimit float64
	RateBurst int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// ConfigFromModel converts model.SearchConfig to search.Config
func ConfigFromModel(mc model.SearchConfig) Config {
	return Config{
		Provider:  mc.Provider,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		RateLimit: mc.RateLimit,
		RateBurst: mc.RateBurst,
	}
}

// NewProvider creates a new search provider based on configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "tavily", "":
		return NewTavilyProvider(config)

	default:
		return nil, fmt.Errorf("unknown search provider: %s (supported: tavily)", config.Provider)
	}
}
