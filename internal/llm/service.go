package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resume-analyzer/pkg/httpclient"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

const (
	groqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
)

// GatewayError covers every failure mode of the external service boundary:
// network errors, rejected requests, and unusable payloads. Calls are never
// retried; the error propagates to the caller as-is.
type GatewayError struct {
	Provider Provider
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("llm gateway (%s): %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

type Service struct {
	provider Provider
	apiKey   string
	model    string
	client   *httpclient.Client
}

func NewService(provider, apiKey, model string, timeout time.Duration) *Service {
	return &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		client:   httpclient.NewClient(timeout),
	}
}

// Complete performs one chat-completion round trip and returns the raw
// completion text. One call per prompt; the caller's context bounds the
// request in addition to the client timeout.
func (s *Service) Complete(ctx context.Context, p Prompt) (string, error) {
	var endpoint string
	switch s.provider {
	case ProviderGroq:
		endpoint = groqEndpoint
	case ProviderOpenAI:
		endpoint = openAIEndpoint
	case ProviderNone:
		return "", &GatewayError{Provider: s.provider, Err: fmt.Errorf("LLM provider not configured")}
	default:
		return "", &GatewayError{Provider: s.provider, Err: fmt.Errorf("unknown provider: %s", s.provider)}
	}

	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": p.System,
			},
			{
				"role":    "user",
				"content": p.User,
			},
		},
		"temperature": p.Temperature,
		"max_tokens":  p.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &GatewayError{Provider: s.provider, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &GatewayError{Provider: s.provider, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &GatewayError{Provider: s.provider, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Provider: s.provider, Err: fmt.Errorf("API error: %d", resp.StatusCode)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &GatewayError{Provider: s.provider, Err: err}
	}

	if result.Error.Message != "" {
		return "", &GatewayError{Provider: s.provider, Err: fmt.Errorf("API error: %s", result.Error.Message)}
	}

	if len(result.Choices) == 0 {
		return "", &GatewayError{Provider: s.provider, Err: fmt.Errorf("no completion in response")}
	}

	return result.Choices[0].Message.Content, nil
}
