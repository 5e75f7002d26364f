package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderLangchain = "langchain"

	DefaultModel = "gpt-3.5-turbo"
)

var ErrMalformedResponse = errors.New("malformed completion response")

type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Completer issues a single text-completion request and returns the text of
// the first choice. Implementations must not retry.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type CompleterConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// NewCompleter returns nil when no API key is configured, which puts the
// generator in demo mode.
func NewCompleter(cfg CompleterConfig) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAICompleter(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderLangchain:
		completer, err := NewLangchainCompleter(cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		return completer, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider '%s'", cfg.Provider)
	}
}

func firstChoice(contents []string) (string, error) {
	if len(contents) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrMalformedResponse)
	}
	text := strings.TrimSpace(contents[0])
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformedResponse)
	}
	return text, nil
}
