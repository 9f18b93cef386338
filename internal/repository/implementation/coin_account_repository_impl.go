package implementation

import (
	"context"
	"errors"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/mapper"
	"hireflow-be/internal/model"
	"hireflow-be/internal/repository/contract"
	"hireflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoinAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CoinMapper
}

func NewCoinAccountRepository(db *gorm.DB) contract.CoinAccountRepository {
	return &CoinAccountRepositoryImpl{
		db:     db,
		mapper: mapper.NewCoinMapper(),
	}
}

func (r *CoinAccountRepositoryImpl) Create(ctx context.Context, account *entity.CoinAccount) error {
	m := r.mapper.ToModel(account)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.ToEntity(m)
	return nil
}

func (r *CoinAccountRepositoryImpl) Update(ctx context.Context, account *entity.CoinAccount) error {
	m := r.mapper.ToModel(account)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.ToEntity(m)
	return nil
}

func (r *CoinAccountRepositoryImpl) FindByOwner(ctx context.Context, ownerId uuid.UUID) (*entity.CoinAccount, error) {
	var m model.CoinAccount
	if err := r.db.WithContext(ctx).Where("id = ?", ownerId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CoinAccountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoinAccount, error) {
	var models []*model.CoinAccount
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CoinAccount, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
