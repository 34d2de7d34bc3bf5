// Package assistant drafts and optimizes outreach messages through an
// OpenAI-compatible chat-completions API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o"
)

// Client calls the chat-completions endpoint with JSON response format.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	logger  *slog.Logger
	http    *http.Client
}

// GenerateRequest carries the personalization inputs for a drafted message.
type GenerateRequest struct {
	ClientName      string
	Company         string
	Channel         string
	MessageType     string
	Context         string
	Tone            string
	LastInteraction string
}

// GeneratedMessage is the drafted result. Subject is only present for email.
type GeneratedMessage struct {
	Subject     string   `json:"subject,omitempty"`
	Content     string   `json:"content"`
	Tone        string   `json:"tone"`
	Suggestions []string `json:"suggestions"`
}

// OptimizedMessage is the rewrite result for an existing draft.
type OptimizedMessage struct {
	OptimizedContent string   `json:"optimizedContent"`
	Improvements     []string `json:"improvements"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient builds an assistant client; the api key is required, baseURL and
// model fall back to the OpenAI defaults.
func NewClient(log *slog.Logger, apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("assistant: api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		logger:  log.With(slog.String("name", "assistant")),
		http: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

const generateSystemPrompt = `You are an expert sales and relationship management assistant. Generate personalized business messages based on the provided context. Always maintain professionalism while adapting to the specified tone and channel.

For email messages, include a subject line. For LinkedIn messages, focus on being concise and engaging.

Respond with JSON in this exact format:
{
  "subject": "subject line for emails only",
  "content": "the message content",
  "tone": "description of the tone used",
  "suggestions": ["suggestion 1", "suggestion 2", "suggestion 3"]
}`

// GenerateMessage drafts a message for the given client and channel.
func (c *Client) GenerateMessage(ctx context.Context, req GenerateRequest) (*GeneratedMessage, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s message for %s with the following details:\n\n", req.MessageType, req.Channel)
	fmt.Fprintf(&b, "Client: %s", req.ClientName)
	if req.Company != "" {
		fmt.Fprintf(&b, " from %s", req.Company)
	}
	fmt.Fprintf(&b, "\nMessage Type: %s\nChannel: %s\nTone: %s\nContext: %s\n", req.MessageType, req.Channel, req.Tone, req.Context)
	if req.LastInteraction != "" {
		fmt.Fprintf(&b, "Last Interaction: %s\n", req.LastInteraction)
	}
	b.WriteString("\nGuidelines:\n")
	if req.Channel == "email" {
		b.WriteString("- Include a compelling subject line and professional email format\n")
	} else {
		b.WriteString("- Keep it concise (under 300 characters) and LinkedIn-appropriate\n")
	}
	fmt.Fprintf(&b, "- Tone should be %s but always professional\n", req.Tone)
	b.WriteString("- Personalize based on the context provided\n- Include a clear call-to-action\n- Make it engaging and likely to get a response")

	var result GeneratedMessage
	if err := c.complete(ctx, generateSystemPrompt, b.String(), 0.7, 800, &result); err != nil {
		return nil, err
	}
	if req.Channel != "email" {
		result.Subject = ""
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result, nil
}

const optimizeSystemPrompt = `You are an expert in optimizing business communications. Improve the given message for better engagement and response rates while maintaining the core message.

Respond with JSON in this format:
{
  "optimizedContent": "the improved message",
  "improvements": ["list of improvements made"]
}`

// OptimizeMessage rewrites an existing draft for the given channel and tone.
func (c *Client) OptimizeMessage(ctx context.Context, content, channel, tone string) (*OptimizedMessage, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Optimize this %s message", channel)
	if tone != "" {
		fmt.Fprintf(&b, " for a %s tone", tone)
	}
	fmt.Fprintf(&b, ":\n\nOriginal Message:\n%s\n\nGuidelines:\n", content)
	if channel == "email" {
		b.WriteString("- Optimize for email best practices\n")
	} else {
		b.WriteString("- Keep under 300 characters for LinkedIn\n")
	}
	b.WriteString("- Improve clarity and engagement\n- Enhance call-to-action\n- Maintain professional tone\n- Make it more likely to get a response")

	var result OptimizedMessage
	if err := c.complete(ctx, optimizeSystemPrompt, b.String(), 0.3, 0, &result); err != nil {
		return nil, err
	}
	if result.Improvements == nil {
		result.Improvements = []string{}
	}
	return &result, nil
}

func (c *Client) complete(ctx context.Context, system, user string, temperature float64, maxTokens int, out any) error {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("close response body failed", slog.Any("error", err))
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("assistant completion error: %s", strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return err
	}
	if len(parsed.Choices) == 0 {
		return errors.New("assistant completion empty response")
	}
	return json.Unmarshal([]byte(parsed.Choices[0].Message.Content), out)
}
