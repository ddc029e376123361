// Package openai wraps the chat completion API used for word blending.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ds124wfegd/word-blender/internal/entity"
	goopenai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel       = "gpt-4o"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

// Config captures the runtime settings required to talk to the chat API.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

type Client struct {
	cfg Config
	api *goopenai.Client
}

// Option customizes the underlying go-openai client config.
type Option func(*goopenai.ClientConfig)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *goopenai.ClientConfig) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	// go-openai drops a zero temperature from the request
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}

	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	for _, opt := range opts {
		opt(&clientConfig)
	}

	return &Client{
		cfg: cfg,
		api: goopenai.NewClientWithConfig(clientConfig),
	}
}

func (c *Client) HasCredentials() bool {
	return c.cfg.APIKey != ""
}

// CompleteJSON issues a JSON-mode chat completion and returns the raw content
// of the first choice. The content is not parsed here.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.HasCredentials() {
		return "", fmt.Errorf("openai: %w", entity.ErrMissingCredential)
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
