package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewTurn struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId uuid.UUID `gorm:"type:uuid;not null;index:idx_interview_turns_candidate_position"`
	PositionId  uuid.UUID `gorm:"type:uuid;not null;index:idx_interview_turns_candidate_position"`
	Question    string    `gorm:"type:text;not null"`
	Answer      string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"default:now();not null"`
}

func (InterviewTurn) TableName() string {
	return "interview_turns"
}
