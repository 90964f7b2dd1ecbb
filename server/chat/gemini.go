package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"
)

// Collaborator produces one assistant turn for the supplied session. The
// concrete implementation talks to an external generative-language service.
type Collaborator interface {
	Generate(ctx context.Context, session []ModelTurn) (string, error)
}

// GeminiClient implements Collaborator against the Google Gemini API. The
// underlying client is created lazily on first use so the process can start
// without a key and fail at the first request instead.
type GeminiClient struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient returns an unconnected client for the given model.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
	}
}

// IsConfigured reports whether an API key is present.
func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != ""
}

// ensureClient returns the shared genai client, creating it on first use.
// Generate runs on concurrent handler goroutines, so the check-then-create
// is serialized; a failed creation is retried by the next caller.
func (c *GeminiClient) ensureClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

// Generate sends the session to Gemini and returns the reply text with all
// candidate parts concatenated.
func (c *GeminiClient) Generate(ctx context.Context, session []ModelTurn) (string, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	contents := convertTurns(session)
	log.Debug("calling Gemini", "model", c.model, "turns", len(contents))

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: 2048,
	}
	result, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	var text strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text == "" || part.Thought {
				continue
			}
			text.WriteString(part.Text)
		}
	}

	log.Debug("Gemini reply received", "length", text.Len())
	return text.String(), nil
}

// convertTurns maps session turns to the Gemini wire representation.
func convertTurns(session []ModelTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(session))
	for _, turn := range session {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	return contents
}
