package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCandidateAndPosition is the natural identity of an application record.
type ByCandidateAndPosition struct {
	CandidateID uuid.UUID
	PositionID  uuid.UUID
}

func (s ByCandidateAndPosition) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("candidate_id = ? AND position_id = ?", s.CandidateID, s.PositionID)
}

// ByStatus filters applications by status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
