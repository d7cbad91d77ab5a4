package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

var ErrEmptyResponse = errors.New("completion service returned no choices")

// Completer turns a prompt into free-form text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configures the OpenAI client.
type Options struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
}

// Client wraps the OpenAI chat completion API.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *logrus.Logger
}

func NewClient(opts Options, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = openai.GPT4
	}

	return &Client{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: opts.Temperature,
		logger:      logger,
	}
}

// Complete sends prompt as a single user message and returns the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.WithFields(logrus.Fields{
		"model":         c.model,
		"prompt_length": len(prompt),
	}).Debug("Sending prompt to completion service")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	c.logger.WithFields(logrus.Fields{
		"model":           resp.Model,
		"response_length": len(content),
		"total_tokens":    resp.Usage.TotalTokens,
	}).Debug("Received completion")

	return content, nil
}
