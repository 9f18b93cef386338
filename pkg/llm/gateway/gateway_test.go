package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireflow-be/internal/pkg/logger"
	"hireflow-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name  string
	text  string
	err   error
	delay time.Duration
	calls int
}

func (p *stubProvider) Name() string {
	return p.name
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.Generate(ctx, "", options...)
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.calls++
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return p.text, p.err
}

func newGateway(providers ...llm.LLMProvider) *Gateway {
	return New(providers, nil, 50*time.Millisecond, logger.NewNopLogger())
}

func TestFallbackToSecondProvider(t *testing.T) {
	slow := &stubProvider{name: "slow", text: "late", delay: time.Second}
	fast := &stubProvider{name: "fast", text: "a useful answer"}

	result := newGateway(slow, fast).Generate(context.Background(), "prompt")

	require.True(t, result.OK)
	assert.Equal(t, "a useful answer", result.Text)

	require.Len(t, result.Attempts, 2)
	assert.Equal(t, OutcomeTimeout, result.Attempts[0].Outcome)
	assert.Equal(t, OutcomeSuccess, result.Attempts[1].Outcome)
}

func TestEmptyResponseTriggersFallback(t *testing.T) {
	empty := &stubProvider{name: "empty", text: "   "}
	good := &stubProvider{name: "good", text: "content"}

	result := newGateway(empty, good).Generate(context.Background(), "prompt")

	require.True(t, result.OK)
	assert.Equal(t, "content", result.Text)
	assert.Equal(t, OutcomeEmpty, result.Attempts[0].Outcome)
}

func TestAllProvidersFailedReturnsSentinel(t *testing.T) {
	a := &stubProvider{name: "a", err: errors.New("boom")}
	b := &stubProvider{name: "b", err: errors.New("boom")}

	result := newGateway(a, b).Generate(context.Background(), "prompt")

	assert.False(t, result.OK)
	assert.Empty(t, result.Text)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, OutcomeError, result.Attempts[0].Outcome)
	assert.Equal(t, OutcomeError, result.Attempts[1].Outcome)
}

func TestFirstSuccessShortCircuits(t *testing.T) {
	first := &stubProvider{name: "first", text: "answer"}
	second := &stubProvider{name: "second", text: "unused"}

	result := newGateway(first, second).Generate(context.Background(), "prompt")

	require.True(t, result.OK)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestJSONModeStripsFence(t *testing.T) {
	fenced := &stubProvider{name: "fenced", text: "```json\n{\"score\": 80}\n```"}

	result := newGateway(fenced).Generate(context.Background(), "prompt", llm.WithJSONMode())

	require.True(t, result.OK)
	assert.Equal(t, `{"score": 80}`, result.Text)
}

func TestStripMarkdownFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with padding", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdownFence(tt.in))
		})
	}
}

func TestSpeakWithoutSynthesizerReturnsNil(t *testing.T) {
	g := newGateway(&stubProvider{name: "a", text: "x"})
	assert.Nil(t, g.Speak(context.Background(), "hello", ""))
}
