package mapper

import (
	"encoding/json"
	"time"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/model"
)

type ApplicationMapper struct{}

func NewApplicationMapper() *ApplicationMapper {
	return &ApplicationMapper{}
}

func (m *ApplicationMapper) ToEntity(a *model.Application) *entity.Application {
	if a == nil {
		return nil
	}

	var turns []entity.TurnRecord
	if len(a.InterviewLog) > 0 {
		// Corrupted log JSON is tolerated; the scores are the system of record.
		_ = json.Unmarshal(a.InterviewLog, &turns)
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Application{
		Id:                 a.Id,
		CandidateId:        a.CandidateId,
		PositionId:         a.PositionId,
		ResumeMatchPercent: a.ResumeMatchPercent,
		AssessmentScore:    a.AssessmentScore,
		InterviewScore:     a.InterviewScore,
		FinalScore:         a.FinalScore,
		Feedback:           a.Feedback,
		Status:             entity.ApplicationStatus(a.Status),
		InterviewLog:       turns,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ApplicationMapper) ToModel(a *entity.Application) *model.Application {
	if a == nil {
		return nil
	}

	var log []byte
	if len(a.InterviewLog) > 0 {
		log, _ = json.Marshal(a.InterviewLog)
	}

	out := &model.Application{
		Id:                 a.Id,
		CandidateId:        a.CandidateId,
		PositionId:         a.PositionId,
		ResumeMatchPercent: a.ResumeMatchPercent,
		AssessmentScore:    a.AssessmentScore,
		InterviewScore:     a.InterviewScore,
		FinalScore:         a.FinalScore,
		Feedback:           a.Feedback,
		Status:             string(a.Status),
		InterviewLog:       log,
		CreatedAt:          a.CreatedAt,
	}
	if a.UpdatedAt != nil {
		out.UpdatedAt = *a.UpdatedAt
	}
	return out
}

func (m *ApplicationMapper) PositionToEntity(p *model.Position) *entity.Position {
	if p == nil {
		return nil
	}
	return &entity.Position{
		Id:             p.Id,
		Title:          p.Title,
		RecruiterId:    p.RecruiterId,
		RecruiterEmail: p.RecruiterEmail,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *ApplicationMapper) ResumeAnalysisToEntity(r *model.ResumeAnalysis) *entity.ResumeAnalysis {
	if r == nil {
		return nil
	}

	var skills []string
	if len(r.Skills) > 0 {
		_ = json.Unmarshal(r.Skills, &skills)
	}

	return &entity.ResumeAnalysis{
		Id:           r.Id,
		CandidateId:  r.CandidateId,
		PositionId:   r.PositionId,
		MatchPercent: r.MatchPercent,
		Skills:       skills,
		Summary:      r.Summary,
		CreatedAt:    r.CreatedAt,
	}
}
