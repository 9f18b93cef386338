package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hireflow-be/internal/repository/memory"
	"hireflow-be/pkg/interview/flow"
	"hireflow-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedEvaluator struct {
	mu    sync.Mutex
	evals []store.AnswerEvaluation
	fail  bool
}

func (e *scriptedEvaluator) Evaluate(ctx context.Context, question, answer, positionTitle string) (store.AnswerEvaluation, bool) {
	if e.fail {
		return store.AnswerEvaluation{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.evals) == 0 {
		return store.AnswerEvaluation{Score: 50}, true
	}
	eval := e.evals[0]
	e.evals = e.evals[1:]
	return eval, true
}

func testSkillMap(skills int) []store.SkillNode {
	nodes := make([]store.SkillNode, 0, skills)
	for i := 0; i < skills; i++ {
		nodes = append(nodes, store.SkillNode{
			Skill:      fmt.Sprintf("skill-%d", i),
			Primary:    fmt.Sprintf("skill-%d primary", i),
			DrillDown:  fmt.Sprintf("skill-%d drill", i),
			StressTest: fmt.Sprintf("skill-%d stress", i),
		})
	}
	return nodes
}

func newTestManager() *Manager {
	repo := memory.NewSessionRepository(time.Hour)
	return NewManager(repo, flow.NewMachine(70, 1))
}

func TestCreateRejectsEmptySkillMap(t *testing.T) {
	m := newTestManager()
	_, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateOpensWithFirstPrimaryQuestion(t *testing.T) {
	m := newTestManager()
	session, question, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(2))
	require.NoError(t, err)

	assert.Equal(t, "skill-0 primary", question)
	assert.NotEmpty(t, session.ID)
	require.Len(t, session.Turns, 1)
	assert.Equal(t, store.RoleInterviewer, session.Turns[0].Role)
}

func TestAdvanceUnknownSession(t *testing.T) {
	m := newTestManager()
	_, _, err := m.Advance(context.Background(), "no-such-token", "answer", &scriptedEvaluator{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStrongAnswersEscalateThenMoveToNextSkill(t *testing.T) {
	m := newTestManager()
	session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(3))
	require.NoError(t, err)

	evaluator := &scriptedEvaluator{evals: []store.AnswerEvaluation{
		{Score: 85}, {Score: 85}, {Score: 85},
	}}

	// Three strong answers walk skill 0 through PRIMARY -> DRILL_DOWN ->
	// STRESS_TEST, then land on skill 1 at PRIMARY.
	next, done, err := m.Advance(context.Background(), session.ID, "strong answer", evaluator)
	require.NoError(t, err)
	require.Nil(t, done)
	assert.Equal(t, "skill-0 drill", next.Question)

	next, done, err = m.Advance(context.Background(), session.ID, "strong answer", evaluator)
	require.NoError(t, err)
	require.Nil(t, done)
	assert.Equal(t, "skill-0 stress", next.Question)

	next, done, err = m.Advance(context.Background(), session.ID, "strong answer", evaluator)
	require.NoError(t, err)
	require.Nil(t, done)
	assert.Equal(t, "skill-1 primary", next.Question)

	current, found := memoryGet(m, session.ID)
	require.True(t, found)
	assert.Equal(t, 1, current.State.SkillIndex)
	assert.Equal(t, store.PhasePrimary, current.State.Phase)
}

func TestWeakAnswersExhaustMapAndComplete(t *testing.T) {
	m := newTestManager()
	session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(2))
	require.NoError(t, err)

	evaluator := &scriptedEvaluator{evals: []store.AnswerEvaluation{
		{Score: 30}, {Score: 30},
	}}

	_, done, err := m.Advance(context.Background(), session.ID, "weak", evaluator)
	require.NoError(t, err)
	require.Nil(t, done)

	_, done, err = m.Advance(context.Background(), session.ID, "weak", evaluator)
	require.NoError(t, err)
	require.NotNil(t, done)

	// Transcript alternates roles strictly.
	for i, turn := range done.Transcript {
		if i%2 == 0 {
			assert.Equal(t, store.RoleInterviewer, turn.Role, "turn %d", i)
		} else {
			assert.Equal(t, store.RoleCandidate, turn.Role, "turn %d", i)
		}
	}
}

func TestEvaluatorOutageNeverStallsTheSession(t *testing.T) {
	m := newTestManager()
	session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(2))
	require.NoError(t, err)

	next, done, err := m.Advance(context.Background(), session.ID, "answer", &scriptedEvaluator{fail: true})
	require.NoError(t, err)
	require.Nil(t, done)
	assert.Equal(t, "skill-1 primary", next.Question)
}

func TestTerminateIsIdempotentViaNotFound(t *testing.T) {
	m := newTestManager()
	session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(1))
	require.NoError(t, err)

	transcript, err := m.Terminate(session.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, transcript)

	_, err = m.Terminate(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestParallelSessionsDoNotInterfere(t *testing.T) {
	m := newTestManager()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(2))
			if err != nil {
				t.Error(err)
				return
			}
			evaluator := &scriptedEvaluator{evals: []store.AnswerEvaluation{{Score: 40}, {Score: 40}}}
			for {
				_, done, err := m.Advance(context.Background(), session.ID, "answer", evaluator)
				if err != nil {
					t.Error(err)
					return
				}
				if done != nil {
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestBogusTokensDoNotRetainLocks(t *testing.T) {
	m := newTestManager()

	for i := 0; i < 1000; i++ {
		_, _, err := m.Advance(context.Background(), fmt.Sprintf("bogus-%d", i), "answer", &scriptedEvaluator{})
		require.ErrorIs(t, err, ErrSessionNotFound)
	}

	assert.Zero(t, lockCount(m))
}

func TestTerminateMissDoesNotRetainLock(t *testing.T) {
	m := newTestManager()
	session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(1))
	require.NoError(t, err)

	_, err = m.Terminate(session.ID)
	require.NoError(t, err)
	_, err = m.Terminate(session.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)

	assert.Zero(t, lockCount(m))
}

func TestStoreEvictionReclaimsSessionLock(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	m := NewManager(repo, flow.NewMachine(70, 1))

	session, _, err := m.Create(uuid.New(), uuid.New(), "Backend Engineer", testSkillMap(2))
	require.NoError(t, err)

	_, _, err = m.Advance(context.Background(), session.ID, "answer", &scriptedEvaluator{})
	require.NoError(t, err)
	require.Equal(t, 1, lockCount(m))

	// Explicit Delete drives the same eviction callback the TTL janitor
	// uses for abandoned sessions.
	repo.Delete(session.ID)
	assert.Zero(t, lockCount(m))
}

func lockCount(m *Manager) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

// memoryGet reaches through the manager's store for assertions.
func memoryGet(m *Manager, sessionID string) (*store.InterviewSession, bool) {
	return m.sessions.Get(sessionID)
}
