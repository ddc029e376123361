// Package together talks to the Together image generation endpoint.
package together

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ds124wfegd/word-blender/internal/entity"
)

const (
	DefaultBaseURL = "https://api.together.xyz/v1"
	DefaultModel   = "black-forest-labs/FLUX.1-schnell"
	DefaultWidth   = 800
	DefaultHeight  = 608
	DefaultSteps   = 4

	responseFormatB64 = "b64_json"
	maxErrorBody      = 4 << 10
)

// Config captures the runtime settings required to talk to the image API.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Width   int
	Height  int
	Steps   int
	// VerifyPayload decodes the returned image before handing it on.
	VerifyPayload bool
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Steps <= 0 {
		cfg.Steps = DefaultSteps
	}

	client := &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) HasCredentials() bool {
	return c.cfg.APIKey != ""
}

type generateRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
	N              int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type generateResponse struct {
	Data []imageData `json:"data"`
}

type imageData struct {
	Index   int    `json:"index"`
	B64JSON string `json:"b64_json"`
	URL     string `json:"url,omitempty"`
}

type httpStatusError struct {
	StatusCode int
	Body       string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("together: http %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Generate requests a single image for prompt and returns it base64 encoded.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.HasCredentials() {
		return "", fmt.Errorf("together: %w", entity.ErrMissingCredential)
	}

	body, err := json.Marshal(generateRequest{
		Model:          c.cfg.Model,
		Prompt:         prompt,
		Width:          c.cfg.Width,
		Height:         c.cfg.Height,
		Steps:          c.cfg.Steps,
		N:              1,
		ResponseFormat: responseFormatB64,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &httpStatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", entity.ErrUpstreamFormat, err)
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return "", entity.ErrNoImageData
	}

	payload := out.Data[0].B64JSON
	if c.cfg.VerifyPayload {
		if _, err := DecodeImage(payload); err != nil {
			return "", err
		}
	}
	return payload, nil
}
