package contract

import (
	"context"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/repository/specification"
)

// InterviewTurnRepository is append-only; turns are never updated or
// deleted once recorded.
type InterviewTurnRepository interface {
	Create(ctx context.Context, turn *entity.InterviewTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
