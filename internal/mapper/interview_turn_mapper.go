package mapper

import (
	"hireflow-be/internal/entity"
	"hireflow-be/internal/model"
)

type InterviewTurnMapper struct{}

func NewInterviewTurnMapper() *InterviewTurnMapper {
	return &InterviewTurnMapper{}
}

func (m *InterviewTurnMapper) ToEntity(t *model.InterviewTurn) *entity.InterviewTurn {
	if t == nil {
		return nil
	}
	return &entity.InterviewTurn{
		Id:          t.Id,
		CandidateId: t.CandidateId,
		PositionId:  t.PositionId,
		Question:    t.Question,
		Answer:      t.Answer,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *InterviewTurnMapper) ToModel(t *entity.InterviewTurn) *model.InterviewTurn {
	if t == nil {
		return nil
	}
	return &model.InterviewTurn{
		Id:          t.Id,
		CandidateId: t.CandidateId,
		PositionId:  t.PositionId,
		Question:    t.Question,
		Answer:      t.Answer,
		CreatedAt:   t.CreatedAt,
	}
}
