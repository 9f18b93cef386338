package flow

import (
	"hireflow-be/pkg/store"
)

// Decision is the orchestrator output for one candidate answer.
type Decision struct {
	Complete bool
	Question string
	Probed   bool // Question is a barge-in follow-up, not a map node
}

// Machine walks a session through its skill map: three depth phases per
// skill, escalating on strong answers, moving on otherwise. One probe per
// node at most, so worst-case turns per node is 2.
type Machine struct {
	passingScore int
	probeLimit   int
}

func NewMachine(passingScore, probeLimit int) *Machine {
	if passingScore <= 0 {
		passingScore = 70
	}
	if probeLimit < 0 {
		probeLimit = 1
	}
	return &Machine{
		passingScore: passingScore,
		probeLimit:   probeLimit,
	}
}

// FirstQuestion returns the opening question for a fresh session.
func (m *Machine) FirstQuestion(session *store.InterviewSession) string {
	return session.SkillMap[0].Question(store.PhasePrimary)
}

// Next applies the transition rule for the just-answered node and mutates
// session state. evalOK is false when the evaluator itself failed; that is
// treated as a non-probe, non-escalating advance so the candidate is never
// blocked by an evaluator outage.
func (m *Machine) Next(session *store.InterviewSession, eval store.AnswerEvaluation, evalOK bool) Decision {
	state := &session.State

	if evalOK && eval.NeedsProbe && eval.ProbeText != "" && state.ProbesUsed < m.probeLimit {
		// Barge-in: address the ambiguous answer without advancing.
		state.ProbesUsed++
		return Decision{Question: eval.ProbeText, Probed: true}
	}

	if evalOK && eval.Score > m.passingScore && state.Phase != store.PhaseStressTest {
		// Strong answer below max depth: escalate on the same skill.
		state.Phase = nextPhase(state.Phase)
		state.ProbesUsed = 0
		return Decision{Question: session.SkillMap[state.SkillIndex].Question(state.Phase)}
	}

	// Skill mastered at max depth, or answer too weak to dwell on: move on.
	state.SkillIndex++
	state.Phase = store.PhasePrimary
	state.NodesCompleted++
	state.ProbesUsed = 0

	if state.SkillIndex >= len(session.SkillMap) {
		return Decision{Complete: true}
	}

	return Decision{Question: session.SkillMap[state.SkillIndex].Question(store.PhasePrimary)}
}

func nextPhase(phase store.Phase) store.Phase {
	switch phase {
	case store.PhasePrimary:
		return store.PhaseDrillDown
	default:
		return store.PhaseStressTest
	}
}
