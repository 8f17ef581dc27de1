package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAICompatProvider talks to any OpenAI-compatible chat completions
// endpoint; xAI exposes the same wire format at its own base URL.
type OpenAICompatProvider struct {
	BaseProvider
	name         string
	apiKey       string
	baseURL      string
	defaultModel string
	httpClient   *http.Client
}

// NewOpenAIProvider creates a provider against api.openai.com.
func NewOpenAIProvider(apiKey string) *OpenAICompatProvider {
	return &OpenAICompatProvider{
		name:         "openai",
		apiKey:       apiKey,
		baseURL:      "https://api.openai.com/v1",
		defaultModel: ModelGPT4o,
		httpClient:   &http.Client{Timeout: 120 * time.Second},
	}
}

// NewXAIProvider creates a provider against api.x.ai.
func NewXAIProvider(apiKey string) *OpenAICompatProvider {
	return &OpenAICompatProvider{
		name:         "xai",
		apiKey:       apiKey,
		baseURL:      "https://api.x.ai/v1",
		defaultModel: ModelGrok,
		httpClient:   &http.Client{Timeout: 120 * time.Second},
	}
}

// Name implements Provider.
func (p *OpenAICompatProvider) Name() string { return p.name }

// Available implements Provider.
func (p *OpenAICompatProvider) Available() bool { return p.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	Stop        []string      `json:"stop,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateMessage implements Provider.
func (p *OpenAICompatProvider) CreateMessage(ctx context.Context, req *MessageRequest) (*MessageResponse, error) {
	if !p.Available() {
		return nil, ErrProviderNotAvailable(p.name)
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	messages := make([]chatMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stop:        req.StopSequences,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("%s API error (%s): %s", p.name, parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s API returned status %d", p.name, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%s API returned no choices", p.name)
	}

	p.TrackUsage(parsed.Usage.PromptTokens, parsed.Usage.CompletionTokens)
	return &MessageResponse{
		ID:         parsed.ID,
		Content:    parsed.Choices[0].Message.Content,
		Model:      parsed.Model,
		StopReason: parsed.Choices[0].FinishReason,
		Usage: ResponseUsage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
		},
	}, nil
}
