package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAICompleter struct {
	client openai.Client
	model  string
}

func NewOpenAICompleter(apiKey, baseURL, model string) *OpenAICompleter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAICompleter{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (o *OpenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if len(req.SystemPrompt) > 0 {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       o.model,
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	}

	res, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	contents := make([]string, 0, len(res.Choices))
	for _, choice := range res.Choices {
		contents = append(contents, choice.Message.Content)
	}
	return firstChoice(contents)
}
