package unitofwork

import (
	"context"

	"hireflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ApplicationRepository() contract.ApplicationRepository
	PositionRepository() contract.PositionRepository
	ResumeAnalysisRepository() contract.ResumeAnalysisRepository
	CoinAccountRepository() contract.CoinAccountRepository
	InterviewTurnRepository() contract.InterviewTurnRepository
}
