package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"hireflow-be/internal/pkg/logger"
	"hireflow-be/pkg/llm"
	"hireflow-be/pkg/speech"
)

// Outcome classifies a single provider attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeEmpty   Outcome = "EMPTY"
	OutcomeError   Outcome = "ERROR"
	OutcomeTimeout Outcome = "TIMEOUT"
)

// Attempt is transient bookkeeping for one provider call. Never persisted.
type Attempt struct {
	Provider string
	Latency  time.Duration
	Outcome  Outcome
}

// Result is what callers get back. OK == false is the "no result" sentinel:
// every provider in the chain failed and the caller must fall back to its
// own canned default. Generate never returns an error.
type Result struct {
	Text     string
	OK       bool
	Attempts []Attempt
}

// Gateway fronts an ordered list of interchangeable LLM providers plus one
// optional speech synthesizer. Fallback order is configuration, not code.
type Gateway struct {
	providers      []llm.LLMProvider
	synthesizer    speech.Synthesizer
	attemptTimeout time.Duration
	logger         logger.ILogger
}

func New(providers []llm.LLMProvider, synthesizer speech.Synthesizer, attemptTimeout time.Duration, log logger.ILogger) *Gateway {
	if attemptTimeout <= 0 {
		attemptTimeout = 20 * time.Second
	}
	return &Gateway{
		providers:      providers,
		synthesizer:    synthesizer,
		attemptTimeout: attemptTimeout,
		logger:         log,
	}
}

// Generate tries each provider in priority order until one returns usable
// text. Each attempt carries its own timeout and is abandoned (not awaited)
// on expiry so the next provider can be tried immediately.
func (g *Gateway) Generate(ctx context.Context, prompt string, opts ...llm.Option) Result {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	result := Result{Attempts: make([]Attempt, 0, len(g.providers))}

	for _, provider := range g.providers {
		start := time.Now()
		text, err := g.tryProvider(ctx, provider, prompt, opts...)
		latency := time.Since(start)

		attempt := Attempt{Provider: provider.Name(), Latency: latency}

		switch {
		case err != nil && errors.Is(err, context.DeadlineExceeded):
			attempt.Outcome = OutcomeTimeout
		case err != nil:
			attempt.Outcome = OutcomeError
		case strings.TrimSpace(text) == "":
			attempt.Outcome = OutcomeEmpty
		default:
			attempt.Outcome = OutcomeSuccess
		}
		result.Attempts = append(result.Attempts, attempt)

		if attempt.Outcome == OutcomeSuccess {
			if options.JSONMode {
				text = StripMarkdownFence(text)
			}
			result.Text = strings.TrimSpace(text)
			result.OK = true
			return result
		}

		g.logger.Warn("Gateway", "Provider attempt failed, trying next", map[string]interface{}{
			"provider": provider.Name(),
			"outcome":  string(attempt.Outcome),
			"latency":  latency.String(),
			"error":    errString(err),
		})
	}

	g.logger.Error("Gateway", "All providers exhausted", map[string]interface{}{
		"attempts": len(result.Attempts),
	})
	return result
}

// tryProvider runs one attempt under its own deadline. The provider goroutine
// is abandoned on timeout; the buffered channel lets it finish and be
// collected without blocking anyone.
func (g *Gateway) tryProvider(ctx context.Context, provider llm.LLMProvider, prompt string, opts ...llm.Option) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.attemptTimeout)
	defer cancel()

	type callResult struct {
		text string
		err  error
	}
	done := make(chan callResult, 1)

	go func() {
		text, err := provider.Generate(attemptCtx, prompt, opts...)
		done <- callResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-attemptCtx.Done():
		return "", attemptCtx.Err()
	}
}

// Speak renders text as audio through the single speech provider. Voice
// synthesis is never fatal: on any failure the caller gets nil bytes and the
// client substitutes local text-to-speech.
func (g *Gateway) Speak(ctx context.Context, text, voice string) []byte {
	if g.synthesizer == nil || strings.TrimSpace(text) == "" {
		return nil
	}

	attemptCtx, cancel := context.WithTimeout(ctx, g.attemptTimeout)
	defer cancel()

	audio, err := g.synthesizer.Synthesize(attemptCtx, text, voice)
	if err != nil {
		g.logger.Warn("Gateway", "Speech synthesis failed, client falls back to local TTS", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return audio
}

// StripMarkdownFence removes an enclosing ```json ... ``` (or plain ```)
// fence that some providers wrap around structured output.
func StripMarkdownFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
