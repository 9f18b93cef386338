package transcript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPolisher struct {
	out string
	ok  bool
}

func (p *stubPolisher) Polish(ctx context.Context, text string) (string, bool) {
	return p.out, p.ok
}

func TestSelectLongestSurvivor(t *testing.T) {
	f := NewFusion(12, nil, nil, testLogger())

	got := f.Select(Candidates{
		Batch:       "ok",
		Incremental: "a fairly complete technical answer about caching",
		Manual:      "a fairly complete technical answer about caching and eviction",
	})
	assert.Equal(t, "a fairly complete technical answer about caching and eviction", got)
}

func TestSelectFallsBackToBatchVerbatim(t *testing.T) {
	f := NewFusion(12, nil, nil, testLogger())

	// All three below minimum length: batch wins even though it is short.
	got := f.Select(Candidates{
		Batch:       "redis",
		Incremental: "uh",
		Manual:      "",
	})
	assert.Equal(t, "redis", got)
}

func TestSelectFiltersHallucinations(t *testing.T) {
	f := NewFusion(12, nil, nil, testLogger())

	got := f.Select(Candidates{
		Batch:       "I would shard the dataset across nodes",
		Incremental: "Thank you for watching, please subscribe to the channel",
		Manual:      "",
	})
	assert.Equal(t, "I would shard the dataset across nodes", got)
}

func TestSelectWorksOverAvailableSubset(t *testing.T) {
	f := NewFusion(12, nil, nil, testLogger())

	// Microphone denied: only the manual candidate exists.
	got := f.Select(Candidates{
		Manual: "I would use a write-through cache here",
	})
	assert.Equal(t, "I would use a write-through cache here", got)
}

func TestFuseKeepsRawWhenPolishRejects(t *testing.T) {
	raw := "a substantive answer about connection pooling"

	f := NewFusion(12, nil, &stubPolisher{ok: false}, testLogger())
	got := f.Fuse(context.Background(), Candidates{Batch: raw})
	assert.Equal(t, raw, got)
}

func TestFuseUsesPolishedText(t *testing.T) {
	f := NewFusion(12, nil, &stubPolisher{out: "a polished answer about connection pooling", ok: true}, testLogger())
	got := f.Fuse(context.Background(), Candidates{Batch: "a substantive answer about connection pooling"})
	assert.Equal(t, "a polished answer about connection pooling", got)
}

func TestFuseEmptyInputStaysEmpty(t *testing.T) {
	f := NewFusion(12, nil, &stubPolisher{out: "invented content", ok: true}, testLogger())
	got := f.Fuse(context.Background(), Candidates{})
	assert.Equal(t, "", got)
}
