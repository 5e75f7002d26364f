package tutor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCompleter struct {
	reply    string
	err      error
	requests []CompletionRequest
	block    bool
}

func (m *mockCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.requests = append(m.requests, req)
	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.reply, m.err
}

func TestGenerateAnswerDemoMode(t *testing.T) {
	gen := NewGenerator(nil, 0)
	assert.True(t, gen.DemoMode())

	for _, style := range []string{"", "visual", "auditory", "kinesthetic"} {
		res := gen.GenerateAnswer(context.Background(), "What is 2+2?", "mathematics", style, true)

		assert.Equal(t, `💡 Demo response: "What is 2+2?" (Subject: mathematics)`, res.Answer)
		assert.Contains(t, res.Answer, "What is 2+2?")
		assert.Contains(t, res.Answer, "mathematics")
		assert.Empty(t, res.VisualAids)
		assert.NotNil(t, res.VisualAids)
		assert.Nil(t, res.SignLanguageInfo)
		assert.Equal(t, "visual", res.LearningStyle)
	}
}

func TestGenerateAnswerSuccess(t *testing.T) {
	completer := &mockCompleter{reply: "2 + 2 = 4 🍎🍎🍎🍎"}
	gen := NewGenerator(completer, time.Second)

	res := gen.GenerateAnswer(context.Background(), "What is 2+2?", "mathematics", "auditory", true)

	assert.Equal(t, "2 + 2 = 4 🍎🍎🍎🍎", res.Answer)
	assert.Equal(t, []VisualAid{{Emoji: "🔢", Label: "Numbers"}, {Emoji: "➕", Label: "Add"}}, res.VisualAids)
	require.NotNil(t, res.SignLanguageInfo)
	assert.Equal(t, "Numbers, Count", res.SignLanguageInfo.KeyWords)
	assert.Equal(t, "auditory", res.LearningStyle)

	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	assert.Equal(t, "You are an educational AI assistant for children, deaf-friendly mode: YES, learning style: auditory. Use simple, clear language with visual examples and emojis. Max 300 words.", req.SystemPrompt)
	assert.Equal(t, "Subject: mathematics\nQuestion: What is 2+2?", req.UserPrompt)
	assert.Equal(t, 500, req.MaxTokens)
	assert.Equal(t, 0.7, req.Temperature)
}

func TestGenerateAnswerDefaults(t *testing.T) {
	completer := &mockCompleter{reply: "Plants need sunlight."}
	gen := NewGenerator(completer, time.Second)

	res := gen.GenerateAnswer(context.Background(), "How do plants eat?", "geography", "", false)

	assert.Equal(t, "visual", res.LearningStyle)
	assert.Equal(t, []VisualAid{{Emoji: "💡", Label: "Ideas"}}, res.VisualAids)
	assert.Equal(t, &SignLanguageInfo{KeyWords: "Learn, Question", SimpleExplanation: "Use visuals", MemoryTip: "Look and remember"}, res.SignLanguageInfo)
	assert.Contains(t, completer.requests[0].SystemPrompt, "deaf-friendly mode: NO, learning style: visual.")
}

func TestGenerateAnswerFallsBackOnFailure(t *testing.T) {
	failures := []error{
		errors.New("boom"),
		fmt.Errorf("%w: no choices returned", ErrMalformedResponse),
		&net.OpError{Op: "dial", Err: errors.New("connection refused")},
	}

	for _, failure := range failures {
		gen := NewGenerator(&mockCompleter{err: failure}, time.Second)
		res := gen.GenerateAnswer(context.Background(), "Who built the pyramids?", "history", "visual", false)

		assert.Equal(t, demoAnswer("Who built the pyramids?", "history"), res)
	}
}

func TestGenerateAnswerTimeout(t *testing.T) {
	completer := &mockCompleter{block: true}
	gen := NewGenerator(completer, 10*time.Millisecond)

	res := gen.GenerateAnswer(context.Background(), "Why?", "science", "visual", false)
	assert.Equal(t, demoAnswer("Why?", "science"), res)
}

func TestSimplifyAnswer(t *testing.T) {
	t.Run("DemoMode", func(t *testing.T) {
		gen := NewGenerator(nil, 0)
		assert.Equal(t, "✨ Demo simplified: Photosynthesis converts light.", gen.SimplifyAnswer(context.Background(), "Photosynthesis converts light.", "science"))
	})

	t.Run("Success", func(t *testing.T) {
		completer := &mockCompleter{reply: "Plants eat sunlight 🌞"}
		gen := NewGenerator(completer, time.Second)

		assert.Equal(t, "Plants eat sunlight 🌞", gen.SimplifyAnswer(context.Background(), "Photosynthesis converts light.", "science"))

		require.Len(t, completer.requests, 1)
		assert.Equal(t, simplifySystemPrompt, completer.requests[0].SystemPrompt)
		assert.Equal(t, "Photosynthesis converts light.", completer.requests[0].UserPrompt)
		assert.Equal(t, 300, completer.requests[0].MaxTokens)
		assert.Equal(t, 0.5, completer.requests[0].Temperature)
	})

	t.Run("Failure", func(t *testing.T) {
		gen := NewGenerator(&mockCompleter{err: errors.New("boom")}, time.Second)
		assert.Equal(t, "✨ Demo simplified: text", gen.SimplifyAnswer(context.Background(), "text", "science"))
	})
}

func TestClassifyFailure(t *testing.T) {
	assert.Equal(t, failureMalformed, classifyFailure(fmt.Errorf("wrapped: %w", ErrMalformedResponse)))
	assert.Equal(t, failureTimeout, classifyFailure(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.Equal(t, failureCanceled, classifyFailure(context.Canceled))
	assert.Equal(t, failureNetwork, classifyFailure(&net.OpError{Op: "dial", Err: errors.New("connection refused")}))
	assert.Equal(t, failureUnknown, classifyFailure(errors.New("boom")))
}

func TestNewCompleter(t *testing.T) {
	completer, err := NewCompleter(CompleterConfig{})
	require.NoError(t, err)
	assert.Nil(t, completer)

	completer, err = NewCompleter(CompleterConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAICompleter{}, completer)

	completer, err = NewCompleter(CompleterConfig{Provider: "langchain", APIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &LangchainCompleter{}, completer)

	_, err = NewCompleter(CompleterConfig{Provider: "carrier-pigeon", APIKey: "sk-test"})
	assert.Error(t, err)
}
