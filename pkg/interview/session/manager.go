package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"hireflow-be/pkg/interview/flow"
	"hireflow-be/pkg/store"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput rejects a session start with no skill map.
	ErrInvalidInput = errors.New("interview session requires a non-empty skill map")

	// ErrSessionNotFound covers unknown tokens AND already-terminated
	// sessions. Callers must treat it as "restart the flow", never retry.
	ErrSessionNotFound = errors.New("interview session not found")
)

// Store abstracts the session backing store so the in-process map can be
// swapped for an external cache without touching orchestration.
type Store interface {
	Put(session *store.InterviewSession)
	Get(sessionID string) (*store.InterviewSession, bool)
	Delete(sessionID string)
	Touch(sessionID string)
}

// Evaluator scores one candidate answer. The bool result reports whether
// the evaluation itself succeeded; a failed evaluation never blocks a turn.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer, positionTitle string) (store.AnswerEvaluation, bool)
}

// NextTurn is the manager output for one advance call. Asked echoes the
// question this answer replied to, for audit trails.
type NextTurn struct {
	Question   string
	TurnNumber int
	Probed     bool
	Asked      string
	SubjectID  uuid.UUID
	PositionID uuid.UUID
}

// Completion is returned when the skill map is exhausted.
type Completion struct {
	Transcript []store.Turn
	Scores     []int
	Asked      string
	SubjectID  uuid.UUID
	PositionID uuid.UUID
	Position   string
}

// Manager owns the lifetime of interview sessions: creation, per-turn
// advancement, termination. Distinct sessions run fully parallel; calls on
// the same session are linearized by a per-session mutex, never a global
// lock.
type Manager struct {
	sessions Store
	machine  *flow.Machine

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(sessions Store, machine *flow.Machine) *Manager {
	m := &Manager{
		sessions: sessions,
		machine:  machine,
		locks:    make(map[string]*sync.Mutex),
	}

	// Stores with eviction (the TTL-backed one) reclaim the per-session
	// lock when a session expires; otherwise abandoned sessions would
	// leave lock entries behind forever.
	if ev, ok := sessions.(interface{ OnEvicted(func(sessionID string)) }); ok {
		ev.OnEvicted(m.releaseLock)
	}
	return m
}

// Create allocates a session keyed by a cryptographically random token and
// emits the opening question as the first interviewer turn.
func (m *Manager) Create(subjectID, positionID uuid.UUID, positionTitle string, skillMap []store.SkillNode) (*store.InterviewSession, string, error) {
	if len(skillMap) == 0 {
		return nil, "", ErrInvalidInput
	}

	session := &store.InterviewSession{
		ID:         newSessionToken(),
		SubjectID:  subjectID,
		PositionID: positionID,
		Position:   positionTitle,
		SkillMap:   skillMap,
		State:      store.FlowState{Phase: store.PhasePrimary},
		CreatedAt:  time.Now(),
	}

	question := m.machine.FirstQuestion(session)
	session.Turns = append(session.Turns, store.Turn{Role: store.RoleInterviewer, Content: question})

	m.sessions.Put(session)
	return session, question, nil
}

// Advance appends the candidate turn, runs the orchestrator transition and
// appends the next interviewer turn. Returns a Completion instead when the
// skill map is exhausted; the session stays in the store until Terminate.
func (m *Manager) Advance(ctx context.Context, sessionID, answer string, evaluator Evaluator) (*NextTurn, *Completion, error) {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, found := m.sessions.Get(sessionID)
	if !found {
		// Unknown or expired token: drop the lock entry allocated above,
		// or bogus tokens would grow the lock map without bound.
		m.releaseLock(sessionID)
		return nil, nil, ErrSessionNotFound
	}

	question := session.LastQuestion()
	session.Turns = append(session.Turns, store.Turn{Role: store.RoleCandidate, Content: answer})

	// The evaluator call is the slow part (multi-second provider latency).
	// Only this session is held up by it; the store itself is not locked.
	eval, evalOK := evaluator.Evaluate(ctx, question, answer, session.Position)
	if evalOK {
		session.Scores = append(session.Scores, eval.Score)
	}

	decision := m.machine.Next(session, eval, evalOK)
	if decision.Complete {
		m.sessions.Put(session)
		return nil, &Completion{
			Transcript: session.Turns,
			Scores:     session.Scores,
			Asked:      question,
			SubjectID:  session.SubjectID,
			PositionID: session.PositionID,
			Position:   session.Position,
		}, nil
	}

	session.Turns = append(session.Turns, store.Turn{Role: store.RoleInterviewer, Content: decision.Question})
	m.sessions.Put(session)

	return &NextTurn{
		Question:   decision.Question,
		TurnNumber: len(session.Turns),
		Probed:     decision.Probed,
		Asked:      question,
		SubjectID:  session.SubjectID,
		PositionID: session.PositionID,
	}, nil, nil
}

// Terminate removes the session and returns the full turn history for
// scoring. A second call returns ErrSessionNotFound, which callers treat
// as "already finalized".
func (m *Manager) Terminate(sessionID string) ([]store.Turn, error) {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, found := m.sessions.Get(sessionID)
	if !found {
		m.releaseLock(sessionID)
		return nil, ErrSessionNotFound
	}

	m.sessions.Delete(sessionID)
	m.releaseLock(sessionID)
	return session.Turns, nil
}

// Touch resets the idle timer, e.g. while audio capture is still running.
// Returns false for unknown or expired sessions.
func (m *Manager) Touch(sessionID string) bool {
	if _, found := m.sessions.Get(sessionID); !found {
		return false
	}
	m.sessions.Touch(sessionID)
	return true
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}

func (m *Manager) releaseLock(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, sessionID)
}

func newSessionToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// fall back to a UUID rather than crash mid-interview.
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}
