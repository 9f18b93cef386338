package flow

import (
	"testing"

	"hireflow-be/pkg/store"
)

func newTestSession(skills int) *store.InterviewSession {
	session := &store.InterviewSession{
		ID:    "test-session",
		State: store.FlowState{Phase: store.PhasePrimary},
	}
	for i := 0; i < skills; i++ {
		session.SkillMap = append(session.SkillMap, store.SkillNode{
			Skill:      "skill",
			Primary:    "primary question",
			DrillDown:  "drill-down question",
			StressTest: "stress-test question",
		})
	}
	return session
}

func TestEscalationOnStrongAnswers(t *testing.T) {
	m := NewMachine(70, 1)
	session := newTestSession(3)

	strong := store.AnswerEvaluation{Score: 85}

	d := m.Next(session, strong, true)
	if d.Complete || session.State.Phase != store.PhaseDrillDown {
		t.Fatalf("expected DRILL_DOWN after first strong answer, got %v complete=%v", session.State.Phase, d.Complete)
	}

	d = m.Next(session, strong, true)
	if d.Complete || session.State.Phase != store.PhaseStressTest {
		t.Fatalf("expected STRESS_TEST after second strong answer, got %v", session.State.Phase)
	}

	// Strong answer at max depth moves to the next skill at PRIMARY.
	d = m.Next(session, strong, true)
	if d.Complete {
		t.Fatal("expected next skill, got completion")
	}
	if session.State.SkillIndex != 1 || session.State.Phase != store.PhasePrimary {
		t.Fatalf("expected skill 1 at PRIMARY, got skill %d phase %v", session.State.SkillIndex, session.State.Phase)
	}
	if d.Question != "primary question" {
		t.Fatalf("unexpected question: %q", d.Question)
	}
}

func TestWeakAnswerMovesOn(t *testing.T) {
	m := NewMachine(70, 1)
	session := newTestSession(2)

	d := m.Next(session, store.AnswerEvaluation{Score: 40}, true)
	if d.Complete {
		t.Fatal("expected next skill, got completion")
	}
	if session.State.SkillIndex != 1 || session.State.Phase != store.PhasePrimary {
		t.Fatalf("expected skill 1 at PRIMARY, got skill %d phase %v", session.State.SkillIndex, session.State.Phase)
	}

	d = m.Next(session, store.AnswerEvaluation{Score: 40}, true)
	if !d.Complete {
		t.Fatal("expected completion after last skill")
	}
}

func TestProbeCapForcesAdvance(t *testing.T) {
	m := NewMachine(70, 1)
	session := newTestSession(2)

	probing := store.AnswerEvaluation{Score: 60, NeedsProbe: true, ProbeText: "can you clarify?"}

	d := m.Next(session, probing, true)
	if !d.Probed || d.Question != "can you clarify?" {
		t.Fatalf("expected probe question, got %+v", d)
	}
	if session.State.SkillIndex != 0 || session.State.Phase != store.PhasePrimary {
		t.Fatal("probe must not advance skill or phase")
	}

	// Second probe request on the same node is treated as a normal transition.
	d = m.Next(session, probing, true)
	if d.Probed {
		t.Fatal("second probe on the same node must not be honored")
	}
	if session.State.SkillIndex != 1 {
		t.Fatalf("expected forced advance to skill 1, got %d", session.State.SkillIndex)
	}
}

func TestEvaluatorFailureAdvancesWithoutEscalation(t *testing.T) {
	m := NewMachine(70, 1)
	session := newTestSession(2)

	// Even a "strong-looking" evaluation is ignored when the evaluator failed.
	d := m.Next(session, store.AnswerEvaluation{Score: 95, NeedsProbe: true, ProbeText: "probe"}, false)
	if d.Probed || d.Complete {
		t.Fatalf("expected plain advance, got %+v", d)
	}
	if session.State.SkillIndex != 1 || session.State.Phase != store.PhasePrimary {
		t.Fatalf("expected skill 1 at PRIMARY, got skill %d phase %v", session.State.SkillIndex, session.State.Phase)
	}
}

func TestSkillIndexMonotonicAndPhaseResetOnlyOnIncrement(t *testing.T) {
	m := NewMachine(70, 1)
	session := newTestSession(3)

	evals := []store.AnswerEvaluation{
		{Score: 90},
		{Score: 90},
		{Score: 20},
		{Score: 90},
		{Score: 20},
		{Score: 20},
	}

	lastIndex := 0
	for _, eval := range evals {
		prevIndex := session.State.SkillIndex
		prevPhase := session.State.Phase

		d := m.Next(session, eval, true)
		if d.Complete {
			break
		}

		if session.State.SkillIndex < prevIndex {
			t.Fatalf("skill index went backwards: %d -> %d", prevIndex, session.State.SkillIndex)
		}
		if session.State.Phase == store.PhasePrimary && prevPhase != store.PhasePrimary {
			if session.State.SkillIndex == prevIndex {
				t.Fatal("phase reset to PRIMARY without a skill-index increment")
			}
		}
		lastIndex = session.State.SkillIndex
	}

	if lastIndex < 1 {
		t.Fatal("expected the interview to progress past the first skill")
	}
}
