// Package llm wraps the Gemini text-generation API behind a small interface
// the report generator can be tested against.
package llm

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Generator is what the report orchestrator depends on.
type Generator interface {
	Generate(ctx context.Context, prompt, contextBlock string) (string, error)
}

type Client struct {
	client    *genai.Client
	model     string
	maxTokens int32
	limiter   *rate.Limiter
}

type Options struct {
	APIKey            string
	Model             string
	MaxTokens         int
	RequestsPerSecond float64
}

func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 4000
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 0.5
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:    client,
		model:     opts.Model,
		maxTokens: int32(opts.MaxTokens),
		limiter:   rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
	}, nil
}

// Generate submits prompt and context as a single user turn and returns the
// generated text. Errors come back as errors; the caller decides what a
// failed report looks like.
func (c *Client) Generate(ctx context.Context, prompt, contextBlock string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	full := prompt + "\n\n" + contextBlock
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: full}}},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// Ping performs a minimal generation to verify the key and connectivity.
// Used by the CLI test command.
func (c *Client) Ping(ctx context.Context) error {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: "ok"}}},
	}
	_, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: 1,
	})
	if err != nil {
		return fmt.Errorf("gemini API call failed: %w", err)
	}
	return nil
}
