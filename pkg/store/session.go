package store

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the depth level currently being probed for one skill.
type Phase string

const (
	PhasePrimary    Phase = "PRIMARY"
	PhaseDrillDown  Phase = "DRILL_DOWN"
	PhaseStressTest Phase = "STRESS_TEST"
)

// Turn roles. History must alternate strictly.
const (
	RoleInterviewer = "INTERVIEWER"
	RoleCandidate   = "CANDIDATE"
)

// SkillNode carries the three pre-generated questions for one skill,
// ordered by increasing expected depth. Immutable once the skill map is
// generated for a session.
type SkillNode struct {
	Skill      string `json:"skill"`
	Primary    string `json:"primary"`
	DrillDown  string `json:"drill_down"`
	StressTest string `json:"stress_test"`
}

// Question returns the sub-question for the given phase.
func (n SkillNode) Question(phase Phase) string {
	switch phase {
	case PhaseDrillDown:
		return n.DrillDown
	case PhaseStressTest:
		return n.StressTest
	default:
		return n.Primary
	}
}

// Turn is one utterance in the interview.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FlowState is the orchestrator position inside the skill map.
// SkillIndex is always < len(SkillMap) while the session is open.
type FlowState struct {
	SkillIndex     int   `json:"skill_index"`
	Phase          Phase `json:"phase"`
	NodesCompleted int   `json:"nodes_completed"`

	// ProbesUsed counts barge-in follow-ups on the current node.
	// Capped so a node can never probe forever.
	ProbesUsed int `json:"probes_used"`
}

// AnswerEvaluation is produced once per candidate turn, never mutated.
type AnswerEvaluation struct {
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	NeedsProbe bool   `json:"needs_probe"`
	ProbeText  string `json:"probe_text,omitempty"`
}

// InterviewSession is the ephemeral per-interview state held in the
// in-memory store. Owned exclusively by the session manager.
type InterviewSession struct {
	ID         string      `json:"id"`
	SubjectID  uuid.UUID   `json:"subject_id"`
	PositionID uuid.UUID   `json:"position_id"`
	Position   string      `json:"position"` // Title, passed to the evaluator
	SkillMap   []SkillNode `json:"skill_map"`
	State      FlowState   `json:"state"`
	Turns      []Turn      `json:"turns"`
	Scores     []int       `json:"scores"` // One entry per successfully evaluated answer
	CreatedAt  time.Time   `json:"created_at"`
}

// LastQuestion returns the most recent interviewer turn, or "" when the
// session has no turns yet.
func (s *InterviewSession) LastQuestion() string {
	for i := len(s.Turns) - 1; i >= 0; i-- {
		if s.Turns[i].Role == RoleInterviewer {
			return s.Turns[i].Content
		}
	}
	return ""
}
