package contract

import (
	"context"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/repository/specification"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	Update(ctx context.Context, application *entity.Application) error

	// Upsert converges on the (candidate, position) natural key so retried
	// finalize calls never create duplicate records.
	Upsert(ctx context.Context, application *entity.Application) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PositionRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Position, error)
}

type ResumeAnalysisRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResumeAnalysis, error)
}
