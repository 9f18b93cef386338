package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Application struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_position"`
	PositionId         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_position"`
	ResumeMatchPercent *int           `gorm:"type:int"`
	AssessmentScore    *int           `gorm:"type:int"`
	InterviewScore     *int           `gorm:"type:int"`
	FinalScore         *int           `gorm:"type:int"`
	Feedback           *string        `gorm:"type:text"`
	Status             string         `gorm:"type:text;not null;default:'applied'"`
	InterviewLog       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (Application) TableName() string {
	return "applications"
}

type Position struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string    `gorm:"type:text;not null"`
	RecruiterId    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecruiterEmail string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Position) TableName() string {
	return "positions"
}

type ResumeAnalysis struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_resume_analyses_candidate_position"`
	PositionId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_resume_analyses_candidate_position"`
	MatchPercent int            `gorm:"not null"`
	Skills       datatypes.JSON `gorm:"type:jsonb"`
	Summary      string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}
