package dto

import (
	"time"

	"hireflow-be/internal/entity"

	"github.com/google/uuid"
)

type FinalizeScoreRequest struct {
	PositionId      uuid.UUID `json:"positionId" validate:"required"`
	SubjectId       uuid.UUID `json:"subjectId" validate:"required"`
	ResumeMatch     *int      `json:"resumeMatch,omitempty" validate:"omitempty,min=0,max=100"`
	AssessmentScore *int      `json:"assessmentScore,omitempty" validate:"omitempty,min=0,max=100"`
	InterviewScore  *int      `json:"interviewScore,omitempty" validate:"omitempty,min=0,max=100"`
}

type ApplicationResponse struct {
	Id                 uuid.UUID           `json:"id"`
	CandidateId        uuid.UUID           `json:"candidateId"`
	PositionId         uuid.UUID           `json:"positionId"`
	ResumeMatchPercent *int                `json:"resumeMatchPercent,omitempty"`
	AssessmentScore    *int                `json:"assessmentScore,omitempty"`
	InterviewScore     *int                `json:"interviewScore,omitempty"`
	FinalScore         *int                `json:"finalScore,omitempty"`
	Status             string              `json:"status"`
	InterviewLog       []entity.TurnRecord `json:"interviewLog,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          *time.Time          `json:"updatedAt,omitempty"`
}
