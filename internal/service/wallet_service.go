package service

import (
	"context"
	"fmt"
	"time"

	"hireflow-be/internal/dto"
	"hireflow-be/internal/entity"
	"hireflow-be/internal/pkg/logger"
	"hireflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWalletService interface {
	// CreditOnce appends a credit unless an entry with the same reason
	// already exists. Returns whether the credit was applied.
	CreditOnce(ctx context.Context, ownerId uuid.UUID, amount int, reason string) (bool, error)

	// Debit is best-effort: when the account is missing or short on
	// coins it logs a warning and returns the current balance untouched.
	Debit(ctx context.Context, ownerId uuid.UUID, amount int, reason string) (int, error)

	UnlockAssessment(ctx context.Context, ownerId uuid.UUID, positionId uuid.UUID) (*dto.WalletBalanceResponse, error)
	Balance(ctx context.Context, ownerId uuid.UUID) (*dto.WalletBalanceResponse, error)
	History(ctx context.Context, ownerId uuid.UUID) (*dto.WalletHistoryResponse, error)
}

type walletService struct {
	uowFactory           unitofwork.RepositoryFactory
	assessmentUnlockCost int
	logger               logger.ILogger
}

func NewWalletService(uowFactory unitofwork.RepositoryFactory, assessmentUnlockCost int, log logger.ILogger) IWalletService {
	return &walletService{
		uowFactory:           uowFactory,
		assessmentUnlockCost: assessmentUnlockCost,
		logger:               log,
	}
}

func (s *walletService) CreditOnce(ctx context.Context, ownerId uuid.UUID, amount int, reason string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	account, err := uow.CoinAccountRepository().FindByOwner(ctx, ownerId)
	if err != nil {
		return false, err
	}

	if account == nil {
		account = &entity.CoinAccount{Id: ownerId, CreatedAt: time.Now()}
		if err := uow.CoinAccountRepository().Create(ctx, account); err != nil {
			return false, err
		}
	}

	// Reason doubles as the idempotency key: a replayed finalize call
	// must not double-credit.
	if account.HasReason(reason) {
		s.logger.Info("WalletService", "Duplicate credit skipped", map[string]interface{}{
			"owner_id": ownerId.String(),
			"reason":   reason,
		})
		return false, nil
	}

	account.Balance += amount
	account.History = append(account.History, entity.CoinEntry{
		Amount:    amount,
		Direction: entity.CoinDirectionCredit,
		Reason:    reason,
		CreatedAt: time.Now(),
	})

	if err := uow.CoinAccountRepository().Update(ctx, account); err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}

	s.logger.Info("WalletService", "Credit applied", map[string]interface{}{
		"owner_id": ownerId.String(),
		"amount":   amount,
		"reason":   reason,
	})
	return true, nil
}

func (s *walletService) Debit(ctx context.Context, ownerId uuid.UUID, amount int, reason string) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	account, err := uow.CoinAccountRepository().FindByOwner(ctx, ownerId)
	if err != nil {
		return 0, err
	}
	if account == nil {
		s.logger.Warn("WalletService", "Debit skipped, no coin account", map[string]interface{}{
			"owner_id": ownerId.String(),
			"reason":   reason,
		})
		return 0, nil
	}
	if account.Balance < amount {
		s.logger.Warn("WalletService", "Debit skipped, insufficient balance", map[string]interface{}{
			"owner_id": ownerId.String(),
			"balance":  account.Balance,
			"amount":   amount,
			"reason":   reason,
		})
		return account.Balance, nil
	}

	account.Balance -= amount
	account.History = append(account.History, entity.CoinEntry{
		Amount:    amount,
		Direction: entity.CoinDirectionDebit,
		Reason:    reason,
		CreatedAt: time.Now(),
	})

	if err := uow.CoinAccountRepository().Update(ctx, account); err != nil {
		return 0, err
	}
	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (s *walletService) UnlockAssessment(ctx context.Context, ownerId uuid.UUID, positionId uuid.UUID) (*dto.WalletBalanceResponse, error) {
	reason := fmt.Sprintf("assessment-unlock:%s", positionId)
	balance, err := s.Debit(ctx, ownerId, s.assessmentUnlockCost, reason)
	if err != nil {
		return nil, err
	}
	return &dto.WalletBalanceResponse{Balance: balance}, nil
}

func (s *walletService) Balance(ctx context.Context, ownerId uuid.UUID) (*dto.WalletBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.CoinAccountRepository().FindByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	balance := 0
	if account != nil {
		balance = account.Balance
	}
	return &dto.WalletBalanceResponse{Balance: balance}, nil
}

func (s *walletService) History(ctx context.Context, ownerId uuid.UUID) (*dto.WalletHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.CoinAccountRepository().FindByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	resp := &dto.WalletHistoryResponse{History: []dto.CoinEntryResponse{}}
	if account == nil {
		return resp, nil
	}

	resp.Balance = account.Balance
	for _, entry := range account.History {
		resp.History = append(resp.History, dto.CoinEntryResponse{
			Amount:    entry.Amount,
			Direction: string(entry.Direction),
			Reason:    entry.Reason,
			CreatedAt: entry.CreatedAt,
		})
	}
	return resp, nil
}
