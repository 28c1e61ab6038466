package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

const (
	openAIBaseURL   = "https://api.openai.com/v1"
	deepSeekBaseURL = "https://api.deepseek.com/v1"
	ollamaBaseURL   = "http://localhost:11434/v1"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

// Options configures an OpenAIClient.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
	Logger      *zap.Logger
}

func NewOpenAIClient(opts Options) (*OpenAIClient, error) {
	if opts.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = openAIBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	client := openai.NewClient(
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(strings.TrimRight(opts.BaseURL, "/")+"/"),
		option.WithMaxRetries(opts.MaxRetries),
	)

	return &OpenAIClient{
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
		logger:      opts.Logger,
	}, nil
}

// Generate sends prompt as a single user message.
func (c *OpenAIClient) Generate(prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	start := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	c.logger.Debug("chat completion",
		zap.String("model", c.model),
		zap.Int("prompt_chars", len(prompt)),
		zap.Int64("total_tokens", completion.Usage.TotalTokens),
		zap.Duration("elapsed", time.Since(start)),
	)

	return completion.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) ModelName() string {
	return c.model
}
