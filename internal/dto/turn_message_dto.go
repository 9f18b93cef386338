package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublishTurnMessage travels over the in-process turn audit pipeline.
type PublishTurnMessage struct {
	CandidateId uuid.UUID `json:"candidateId"`
	PositionId  uuid.UUID `json:"positionId"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	AskedAt     time.Time `json:"askedAt"`
}
