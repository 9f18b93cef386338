package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterviewTurn is one row of the append-only turn audit log.
type InterviewTurn struct {
	Id          uuid.UUID
	CandidateId uuid.UUID
	PositionId  uuid.UUID
	Question    string
	Answer      string
	CreatedAt   time.Time
}
