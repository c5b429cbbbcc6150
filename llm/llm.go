package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrEmptyCompletion is returned when the model answers with no text.
var ErrEmptyCompletion = errors.New("empty completion")

// Completer sends one prompt and returns the completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// GenAIClient talks to the Gemini API through the genai SDK.
type GenAIClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGenAIClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("LLM API key is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}
	return &GenAIClient{client: client, model: model, logger: logger}, nil
}

func (c *GenAIClient) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	})
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	c.logger.Debug("completion received",
		zap.String("model", c.model),
		zap.Int("prompt.length", len(prompt)),
		zap.Int("response.length", len(text)),
	)
	return text, nil
}

// Model returns the configured model name.
func (c *GenAIClient) Model() string {
	return c.model
}
