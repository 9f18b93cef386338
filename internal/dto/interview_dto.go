package dto

import (
	"github.com/google/uuid"
)

type StartSessionRequest struct {
	PositionId uuid.UUID `json:"positionId" validate:"required"`
	SubjectId  uuid.UUID `json:"subjectId" validate:"required"`
}

type StartSessionResponse struct {
	SessionId string `json:"sessionId"`
	Question  string `json:"question"`
	Audio     []byte `json:"audio,omitempty"`
}

type AdvanceSessionRequest struct {
	SessionId  string `json:"sessionId" validate:"required"`
	AnswerText string `json:"answerText"`

	// Optional capture renditions; AnswerText doubles as the manual edit.
	BatchTranscript       string `json:"batchTranscript,omitempty"`
	IncrementalTranscript string `json:"incrementalTranscript,omitempty"`
}

type AdvanceSessionResponse struct {
	HasNext    bool   `json:"hasNext"`
	Question   string `json:"question,omitempty"`
	Audio      []byte `json:"audio,omitempty"`
	TurnNumber int    `json:"turnNumber,omitempty"`
	FinalScore int    `json:"finalScore,omitempty"`
	Feedback   string `json:"feedback,omitempty"`
}

type RecordTurnRequest struct {
	PositionId uuid.UUID `json:"positionId" validate:"required"`
	SubjectId  uuid.UUID `json:"subjectId" validate:"required"`
	Question   string    `json:"question" validate:"required"`
	Answer     string    `json:"answer"`
}

type RecordTurnResponse struct {
	Ok bool `json:"ok"`
}

type EvaluateAnswerRequest struct {
	Question      string `json:"question" validate:"required"`
	Answer        string `json:"answer"`
	PositionTitle string `json:"positionTitle" validate:"required"`
}

type EvaluateAnswerResponse struct {
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	NeedsProbe bool   `json:"needsProbe"`
	ProbeText  string `json:"probeText,omitempty"`
}
