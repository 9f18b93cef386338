package contract

import (
	"context"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CoinAccountRepository interface {
	Create(ctx context.Context, account *entity.CoinAccount) error
	Update(ctx context.Context, account *entity.CoinAccount) error
	FindByOwner(ctx context.Context, ownerId uuid.UUID) (*entity.CoinAccount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoinAccount, error)
}
