package transcript

import (
	"context"
	"strings"

	"hireflow-be/internal/pkg/logger"
)

// NoContentMarker is what the polishing model returns when it found no
// extractable technical content in the input.
const NoContentMarker = "NO_CONTENT"

// Candidates are up to three independently captured renditions of one
// spoken answer. Any of them may be empty; the engine works over whatever
// subset is available.
type Candidates struct {
	// Batch is the high-fidelity, non-incremental recognition pass over
	// the fully captured audio buffer.
	Batch string

	// Incremental is the concatenation of all "final" partial results
	// from the low-latency streaming recognizer.
	Incremental string

	// Manual is whatever the user typed or edited directly.
	Manual string
}

// Polisher rewrites the chosen transcript for style. ok == false means the
// polish call failed or reported NO_CONTENT; the raw text wins then.
type Polisher interface {
	Polish(ctx context.Context, text string) (string, bool)
}

// defaultDenylist holds stock filler phrases speech models are known to
// emit on silence or noise input.
var defaultDenylist = []string{
	"thank you for watching",
	"thanks for watching",
	"please subscribe",
	"subtitles by",
	"I'm sorry, I didn't catch that",
}

// Fusion selects the single best transcript of a spoken answer and runs it
// through one polishing pass.
type Fusion struct {
	minLength int
	denylist  []string
	polisher  Polisher
	logger    logger.ILogger
}

func NewFusion(minLength int, denylist []string, polisher Polisher, log logger.ILogger) *Fusion {
	if minLength <= 0 {
		minLength = 12
	}
	if denylist == nil {
		denylist = defaultDenylist
	}
	return &Fusion{
		minLength: minLength,
		denylist:  denylist,
		polisher:  polisher,
		logger:    log,
	}
}

// Fuse picks the best candidate and polishes it. Longer is treated as a
// proxy for "more complete capture". If every candidate is filtered out,
// the batch transcript is used verbatim (even if short) rather than
// submitting an empty answer.
func (f *Fusion) Fuse(ctx context.Context, c Candidates) string {
	chosen := f.Select(c)
	if strings.TrimSpace(chosen) == "" {
		return ""
	}

	if f.polisher == nil {
		return chosen
	}

	polished, ok := f.polisher.Polish(ctx, chosen)
	if !ok || strings.TrimSpace(polished) == "" {
		// Polishing must never discard a substantive answer.
		f.logger.Warn("TranscriptFusion", "Polish pass rejected, keeping raw transcript", map[string]interface{}{
			"length": len(chosen),
		})
		return chosen
	}
	return polished
}

// Select applies the filter + longest-survivor rule without polishing.
func (f *Fusion) Select(c Candidates) string {
	candidates := []string{c.Batch, c.Incremental, c.Manual}

	best := ""
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) < f.minLength || f.isHallucination(trimmed) {
			continue
		}
		if len(trimmed) > len(best) {
			best = trimmed
		}
	}

	if best == "" {
		// Everything filtered: fall back to the batch pass verbatim.
		return strings.TrimSpace(c.Batch)
	}
	return best
}

func (f *Fusion) isHallucination(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range f.denylist {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
