// Package ai is a minimal chat-completion client used to draft project
// descriptions. The feature is optional: without an API key the client
// reports service.ErrDisabled and the rest of the application is
// unaffected.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"gitfolio/internal/service"
)

const (
	DefaultBaseURL = "https://open.bigmodel.cn/api/paas/v4"
	defaultModel   = "glm-4-flash"
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// New builds a client. An empty apiKey is allowed; calls then fail with
// service.ErrDisabled.
func New(apiKey, baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   defaultModel,
		client:  client,
	}
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// DescribeProject drafts a one-or-two-sentence project description from
// the title and a content excerpt.
func (c *Client) DescribeProject(ctx context.Context, title, content string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short project description (one or two sentences) for a portfolio site.\n\nProject name: %s\n\nProject notes:\n%s\n\nReturn only the description text.",
		title, truncate(content, 400))
	return c.complete(ctx, prompt, 100)
}

// DescribeRepository drafts a description for an imported repository from
// its name, the merged language/topic tags, and a README excerpt.
func (c *Client) DescribeRepository(ctx context.Context, name string, tags []string, readme string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short description (one or two sentences) of a software repository for a portfolio site.\n\nRepository: %s\nTechnologies: %s\n\nREADME excerpt:\n%s\n\nReturn only the description text.",
		name, strings.Join(tags, ", "), truncate(readme, 200))
	return c.complete(ctx, prompt, 100)
}

// truncate caps s at max runes, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !c.Enabled() {
		return "", service.ErrDisabled
	}

	body, err := json.Marshal(completionRequest{
		Model:     c.model,
		Messages:  []message{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("completion request failed: %d %s", res.StatusCode, strings.TrimSpace(string(detail)))
	}

	var decoded completionResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("malformed completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response had no choices")
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
