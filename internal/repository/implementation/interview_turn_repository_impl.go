package implementation

import (
	"context"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/mapper"
	"hireflow-be/internal/model"
	"hireflow-be/internal/repository/contract"
	"hireflow-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InterviewTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewTurnMapper
}

func NewInterviewTurnRepository(db *gorm.DB) contract.InterviewTurnRepository {
	return &InterviewTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewTurnMapper(),
	}
}

func (r *InterviewTurnRepositoryImpl) Create(ctx context.Context, turn *entity.InterviewTurn) error {
	m := r.mapper.ToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterviewTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewTurn, error) {
	var models []*model.InterviewTurn
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InterviewTurn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *InterviewTurnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.InterviewTurn{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
