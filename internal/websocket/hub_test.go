package websocket

import (
	"testing"
	"time"

	"hireflow-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newTestHub() *Hub {
	return NewHub(nil, logger.NewNopLogger())
}

func TestStopAndFlushJoinsFinalsInOrder(t *testing.T) {
	hub := newTestHub()

	hub.AppendFinal("sess-1", "I used goroutines")
	hub.AppendFinal("sess-1", "with a worker pool")
	hub.AppendFinal("sess-1", "behind a channel")

	got := hub.StopAndFlush("sess-1", 0)
	assert.Equal(t, "I used goroutines with a worker pool behind a channel", got)
}

func TestStopAndFlushClearsTheBuffer(t *testing.T) {
	hub := newTestHub()

	hub.AppendFinal("sess-1", "first answer")
	_ = hub.StopAndFlush("sess-1", 0)

	assert.Equal(t, "", hub.StopAndFlush("sess-1", 0))
}

func TestStopAndFlushUnknownSession(t *testing.T) {
	hub := newTestHub()
	assert.Equal(t, "", hub.StopAndFlush("never-seen", 0))
}

func TestAppendFinalIgnoresBlankSegments(t *testing.T) {
	hub := newTestHub()

	hub.AppendFinal("sess-1", "   ")
	hub.AppendFinal("sess-1", "")
	hub.AppendFinal("sess-1", "real content")

	assert.Equal(t, "real content", hub.StopAndFlush("sess-1", 0))
}

func TestBuffersAreIsolatedPerSession(t *testing.T) {
	hub := newTestHub()

	hub.AppendFinal("sess-a", "answer a")
	hub.AppendFinal("sess-b", "answer b")

	assert.Equal(t, "answer a", hub.StopAndFlush("sess-a", 0))
	assert.Equal(t, "answer b", hub.StopAndFlush("sess-b", 0))
}

func TestDiscardDropsBufferedSegments(t *testing.T) {
	hub := newTestHub()

	hub.AppendFinal("sess-1", "unwanted")
	hub.Discard("sess-1")

	assert.Equal(t, "", hub.StopAndFlush("sess-1", 0))
}

func TestStopAndFlushWaitsTheGracePeriod(t *testing.T) {
	hub := newTestHub()
	hub.AppendFinal("sess-1", "tail")

	grace := 30 * time.Millisecond
	start := time.Now()
	got := hub.StopAndFlush("sess-1", grace)

	assert.GreaterOrEqual(t, time.Since(start), grace)
	assert.Equal(t, "tail", got)
}

func TestStopAndFlushSkipsGraceWithoutCapture(t *testing.T) {
	hub := newTestHub()

	start := time.Now()
	got := hub.StopAndFlush("text-only-session", 200*time.Millisecond)

	assert.Equal(t, "", got)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
