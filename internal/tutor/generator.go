package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

const (
	DefaultLearningStyle = "visual"
	DefaultTimeout       = 30 * time.Second

	answerMaxTokens     = 500
	answerTemperature   = 0.7
	simplifyMaxTokens   = 300
	simplifyTemperature = 0.5

	simplifySystemPrompt = "Simplify this text for children (5th grade or below) with emojis and concrete examples."
)

type AnswerResult struct {
	Answer           string
	VisualAids       []VisualAid
	SignLanguageInfo *SignLanguageInfo
	LearningStyle    string
}

// Generator produces answers for student questions. With a nil completer it
// runs in demo mode, and any failed remote call degrades to the same demo
// content instead of surfacing an error.
type Generator struct {
	completer Completer
	timeout   time.Duration
}

func NewGenerator(completer Completer, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{completer: completer, timeout: timeout}
}

func (g *Generator) DemoMode() bool {
	return g.completer == nil
}

func (g *Generator) GenerateAnswer(ctx context.Context, question, subject, learningStyle string, isDeafFriendly bool) AnswerResult {
	if learningStyle == "" {
		learningStyle = DefaultLearningStyle
	}

	if g.completer == nil {
		slog.Warn("no llm api key configured, returning demo response")
		return demoAnswer(question, subject)
	}

	answer, err := g.complete(ctx, CompletionRequest{
		SystemPrompt: answerSystemPrompt(learningStyle, isDeafFriendly),
		UserPrompt:   fmt.Sprintf("Subject: %s\nQuestion: %s", subject, question),
		MaxTokens:    answerMaxTokens,
		Temperature:  answerTemperature,
	})
	if err != nil {
		slog.Error("answer generation failed, returning demo response", "subject", subject, "cause", classifyFailure(err), "error", err)
		return demoAnswer(question, subject)
	}

	slog.Info("answer generated", "subject", subject, "learning_style", learningStyle)

	signInfo := Subject(subject).SignLanguageInfo()
	return AnswerResult{
		Answer:           answer,
		VisualAids:       Subject(subject).VisualAids(),
		SignLanguageInfo: &signInfo,
		LearningStyle:    learningStyle,
	}
}

func (g *Generator) SimplifyAnswer(ctx context.Context, originalAnswer, subject string) string {
	if g.completer == nil {
		return demoSimplified(originalAnswer)
	}

	simplified, err := g.complete(ctx, CompletionRequest{
		SystemPrompt: simplifySystemPrompt,
		UserPrompt:   originalAnswer,
		MaxTokens:    simplifyMaxTokens,
		Temperature:  simplifyTemperature,
	})
	if err != nil {
		slog.Error("simplification failed, returning original answer", "subject", subject, "cause", classifyFailure(err), "error", err)
		return demoSimplified(originalAnswer)
	}

	return simplified
}

func (g *Generator) complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.completer.Complete(ctx, req)
}

func answerSystemPrompt(learningStyle string, isDeafFriendly bool) string {
	deafFriendly := "NO"
	if isDeafFriendly {
		deafFriendly = "YES"
	}
	return fmt.Sprintf(
		"You are an educational AI assistant for children, deaf-friendly mode: %s, learning style: %s. "+
			"Use simple, clear language with visual examples and emojis. Max 300 words.",
		deafFriendly, learningStyle,
	)
}

// demoAnswer ignores the requested learning style and always reports visual.
func demoAnswer(question, subject string) AnswerResult {
	return AnswerResult{
		Answer:        fmt.Sprintf("💡 Demo response: \"%s\" (Subject: %s)", question, subject),
		VisualAids:    []VisualAid{},
		LearningStyle: DefaultLearningStyle,
	}
}

func demoSimplified(originalAnswer string) string {
	return "✨ Demo simplified: " + originalAnswer
}

const (
	failureAuth           = "auth"
	failureRateLimited    = "rate_limited"
	failureUpstreamStatus = "upstream_status"
	failureTimeout        = "timeout"
	failureCanceled       = "canceled"
	failureNetwork        = "network"
	failureMalformed      = "malformed"
	failureUnknown        = "unknown"
)

// classifyFailure separates the causes that all collapse into the demo
// fallback so they stay distinguishable in logs.
func classifyFailure(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return failureAuth
		case http.StatusTooManyRequests:
			return failureRateLimited
		default:
			return failureUpstreamStatus
		}
	}

	var netErr net.Error
	switch {
	case errors.Is(err, ErrMalformedResponse):
		return failureMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return failureTimeout
	case errors.Is(err, context.Canceled):
		return failureCanceled
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return failureTimeout
		}
		return failureNetwork
	}

	return failureUnknown
}
