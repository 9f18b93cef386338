package unitofwork

import (
	"context"
	"fmt"

	"hireflow-be/internal/repository/contract"
	"hireflow-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // The active transaction, nil outside of Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ApplicationRepository() contract.ApplicationRepository {
	return implementation.NewApplicationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PositionRepository() contract.PositionRepository {
	return implementation.NewPositionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ResumeAnalysisRepository() contract.ResumeAnalysisRepository {
	return implementation.NewResumeAnalysisRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CoinAccountRepository() contract.CoinAccountRepository {
	return implementation.NewCoinAccountRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InterviewTurnRepository() contract.InterviewTurnRepository {
	return implementation.NewInterviewTurnRepository(u.getDB())
}
