package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Search      SearchConfig      `yaml:"search" json:"search"`
	Enrich      EnrichConfig      `yaml:"enrich" json:"enrich"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// LLMConfig configures the language-model backend
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // gemini, openai, ollama
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // Never serialized; from env only
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds, per call
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// SearchConfig configures the search backend
type SearchConfig struct {
	Provider   string  `yaml:"provider" json:"provider"` // tavily
	APIKey     string  `yaml:"-" json:"-"`
	BaseURL    string  `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	MaxResults int     `yaml:"max_results" json:"max_results"` // Hits kept per assumption
	Timeout    int     `yaml:"timeout" json:"timeout"`         // seconds, per query
	RateLimit  float64 `yaml:"rate_limit" json:"rate_limit"`   // requests per second
	RateBurst  int     `yaml:"rate_burst" json:"rate_burst"`
}

// EnrichConfig configures optional evidence page enrichment
type EnrichConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	MaxExcerpt   int           `yaml:"max_excerpt" json:"max_excerpt"` // Characters of page text kept
}

// CacheConfig configures search-response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig bounds fan-out within pipeline phases
type ConcurrencyConfig struct {
	GatherWorkers   int `yaml:"gather_workers" json:"gather_workers"`
	EvaluateWorkers int `yaml:"evaluate_workers" json:"evaluate_workers"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-1.5-flash",
			Timeout:   30,
			MaxTokens: 1024,
		},
		Search: SearchConfig{
			Provider:   "tavily",
			MaxResults: 5,
			Timeout:    15,
			RateLimit:  2.0,
			RateBurst:  5,
		},
		Enrich: EnrichConfig{
			Enabled:      false,
			Timeout:      10 * time.Second,
			UserAgent:    "fake-news-detector/0.1 (+https://github.com/abhindeves/fake-news-detector)",
			MaxBodyBytes: 1_000_000,
			MaxExcerpt:   1500,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			GatherWorkers:   8,
			EvaluateWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
