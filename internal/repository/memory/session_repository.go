package memory

import (
	"time"

	"hireflow-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the in-process backing store for live interview
// sessions. The idle TTL reclaims sessions abandoned mid-interview so a
// candidate who disappears does not leak memory.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(idleTTL time.Duration) *SessionRepository {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	c := cache.New(idleTTL, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		ttl:   idleTTL,
	}
}

func (r *SessionRepository) Put(session *store.InterviewSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.InterviewSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.InterviewSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Touch resets the idle timer without mutating the session.
func (r *SessionRepository) Touch(sessionID string) {
	if x, found := r.cache.Get(sessionID); found {
		r.cache.Set(sessionID, x, cache.DefaultExpiration)
	}
}

// OnEvicted registers a callback fired when a session leaves the store,
// whether through the idle TTL janitor or an explicit Delete.
func (r *SessionRepository) OnEvicted(fn func(sessionID string)) {
	r.cache.OnEvicted(func(key string, _ interface{}) {
		fn(key)
	})
}
