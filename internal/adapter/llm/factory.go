package llm

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"ragdemo/config"
	"ragdemo/internal/port"
)

// New creates the LLM configured by cfg.
func New(cfg config.LLMConfig, logger *zap.Logger) (port.LLM, error) {
	opts := Options{
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Timeout:     time.Duration(cfg.TimeoutSec) * time.Second,
		MaxRetries:  cfg.MaxRetries,
		Logger:      logger,
	}

	switch cfg.Provider {
	case "openai", "deepseek":
		if cfg.Provider == "deepseek" && opts.BaseURL == "" {
			opts.BaseURL = deepSeekBaseURL
		}
		opts.APIKey = cfg.APIKey()
		if opts.APIKey == "" {
			return nil, fmt.Errorf("API key not found in environment variable: %s", cfg.APIKeyEnv)
		}
		return NewOpenAIClient(opts)
	case "ollama":
		if opts.BaseURL == "" {
			opts.BaseURL = ollamaBaseURL
		}
		opts.APIKey = "ollama"
		return NewOpenAIClient(opts)
	case "mock":
		return NewMockLLM(cfg.MockResponse), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
