package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// TurnRecord is one utterance of the persisted interview log.
type TurnRecord struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Application is the persisted record per (candidate, position) pair.
// Component scores are nullable until computed; FinalScore is recomputed
// idempotently from whichever components are present.
type Application struct {
	Id                 uuid.UUID
	CandidateId        uuid.UUID
	PositionId         uuid.UUID
	ResumeMatchPercent *int
	AssessmentScore    *int
	InterviewScore     *int
	FinalScore         *int
	Feedback           *string
	Status             ApplicationStatus
	InterviewLog       []TurnRecord
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Position is the slim view of a job posting this core needs: its title
// (fed to the evaluator) and the recruiter who owns it (ledger credits,
// shortlist notifications).
type Position struct {
	Id             uuid.UUID
	Title          string
	RecruiterId    uuid.UUID
	RecruiterEmail string
	CreatedAt      time.Time
}

// ResumeAnalysis is the prerequisite record a session start requires.
type ResumeAnalysis struct {
	Id           uuid.UUID
	CandidateId  uuid.UUID
	PositionId   uuid.UUID
	MatchPercent int
	Skills       []string
	Summary      string
	CreatedAt    time.Time
}
