package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeInterviewCompleted   = "INTERVIEW_COMPLETED"
	TypeCandidateShortlisted = "CANDIDATE_SHORTLISTED"
)

func NewInterviewCompleted(subjectId, positionId uuid.UUID, interviewScore int) Event {
	return BaseEvent{
		Type: TypeInterviewCompleted,
		Data: map[string]interface{}{
			"subject_id":      subjectId.String(),
			"position_id":     positionId.String(),
			"interview_score": interviewScore,
		},
		OccurredAt: time.Now(),
	}
}

func NewCandidateShortlisted(subjectId, positionId, recruiterId uuid.UUID, finalScore int) Event {
	return BaseEvent{
		Type: TypeCandidateShortlisted,
		Data: map[string]interface{}{
			"subject_id":   subjectId.String(),
			"position_id":  positionId.String(),
			"recruiter_id": recruiterId.String(),
			"final_score":  finalScore,
		},
		OccurredAt: time.Now(),
	}
}
