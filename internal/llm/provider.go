package llm

import (
	"context"

	"github.com/abhindeves/fake-news-detector/internal/model"
)

// Provider defines the interface for language-model backends. The pipeline
// only ever needs free-text generation; any backend satisfying this signature
// is pluggable.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces a completion for the given prompt
	Generate(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SystemInstruction frames every generation request. Mirrors the tone the
// verification prompts expect: neutral bullet points, no commentary.
const SystemInstruction = "You are an AI assistant designed to analyze the validity of news. " +
	"Your responses should be concise, formatted as bullet points, and avoid any additional " +
	"commentary. Maintain a neutral and objective tone."

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "gemini", "openai", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for Gemini/OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, test servers)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:   mc.Provider,
		Model:      mc.Model,
		APIKey:     mc.APIKey,
		BaseURL:    mc.BaseURL,
		Timeout:    mc.Timeout,
		MaxTokens:  mc.MaxTokens,
		HTTPProxy:  mc.HTTPProxy,
		HTTPSProxy: mc.HTTPSProxy,
		NoProxy:    mc.NoProxy,
	}
}
