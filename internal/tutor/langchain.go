package tutor

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type LangchainCompleter struct {
	llm *openai.LLM
}

func NewLangchainCompleter(apiKey, baseURL, model string) (*LangchainCompleter, error) {
	opts := []openai.Option{openai.WithToken(apiKey), openai.WithModel(model)}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create langchain openai client: %w", err)
	}
	return &LangchainCompleter{llm: llm}, nil
}

func (l *LangchainCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]llms.MessageContent, 0, 2)
	if len(req.SystemPrompt) > 0 {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemPrompt))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.UserPrompt))

	resp, err := l.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(req.MaxTokens),
		llms.WithTemperature(req.Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("langchain chat completion failed: %w", err)
	}

	contents := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		contents = append(contents, choice.Content)
	}
	return firstChoice(contents)
}
