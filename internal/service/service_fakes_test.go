package service

import (
	"context"
	"sync"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/repository/contract"
	"hireflow-be/internal/repository/specification"
	"hireflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// memStore backs the fake unit of work with plain in-memory tables so
// service behavior can be exercised without a database.
type memStore struct {
	mu           sync.Mutex
	applications []*entity.Application
	positions    []*entity.Position
	analyses     []*entity.ResumeAnalysis
	accounts     map[uuid.UUID]*entity.CoinAccount
	turns        []*entity.InterviewTurn
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[uuid.UUID]*entity.CoinAccount)}
}

type memUowFactory struct {
	store *memStore
}

func newMemUowFactory(store *memStore) unitofwork.RepositoryFactory {
	return &memUowFactory{store: store}
}

func (f *memUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{store: f.store}
}

type memUow struct {
	store *memStore
}

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) ApplicationRepository() contract.ApplicationRepository {
	return &memApplicationRepository{store: u.store}
}

func (u *memUow) PositionRepository() contract.PositionRepository {
	return &memPositionRepository{store: u.store}
}

func (u *memUow) ResumeAnalysisRepository() contract.ResumeAnalysisRepository {
	return &memResumeAnalysisRepository{store: u.store}
}

func (u *memUow) CoinAccountRepository() contract.CoinAccountRepository {
	return &memCoinAccountRepository{store: u.store}
}

func (u *memUow) InterviewTurnRepository() contract.InterviewTurnRepository {
	return &memInterviewTurnRepository{store: u.store}
}

type memApplicationRepository struct {
	store *memStore
}

func (r *memApplicationRepository) Create(ctx context.Context, application *entity.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.applications = append(r.store.applications, copyApplication(application))
	return nil
}

func (r *memApplicationRepository) Update(ctx context.Context, application *entity.Application) error {
	return r.Upsert(ctx, application)
}

func (r *memApplicationRepository) Upsert(ctx context.Context, application *entity.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.applications {
		if existing.CandidateId == application.CandidateId && existing.PositionId == application.PositionId {
			r.store.applications[i] = copyApplication(application)
			return nil
		}
	}
	r.store.applications = append(r.store.applications, copyApplication(application))
	return nil
}

func (r *memApplicationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *memApplicationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matches := make([]*entity.Application, 0)
	for _, app := range r.store.applications {
		if applicationMatches(app, specs) {
			matches = append(matches, copyApplication(app))
		}
	}
	return matches, nil
}

func (r *memApplicationRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func applicationMatches(app *entity.Application, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByCandidateAndPosition:
			if app.CandidateId != s.CandidateID || app.PositionId != s.PositionID {
				return false
			}
		case specification.ByID:
			if app.Id != s.ID {
				return false
			}
		case specification.ByStatus:
			if string(app.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

type memPositionRepository struct {
	store *memStore
}

func (r *memPositionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Position, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, position := range r.store.positions {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByID); ok && position.Id != s.ID {
				match = false
			}
		}
		if match {
			clone := *position
			return &clone, nil
		}
	}
	return nil, nil
}

type memResumeAnalysisRepository struct {
	store *memStore
}

func (r *memResumeAnalysisRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResumeAnalysis, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, analysis := range r.store.analyses {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if analysis.Id != s.ID {
					match = false
				}
			case specification.ByCandidateAndPosition:
				if analysis.CandidateId != s.CandidateID || analysis.PositionId != s.PositionID {
					match = false
				}
			}
		}
		if match {
			clone := *analysis
			return &clone, nil
		}
	}
	return nil, nil
}

type memCoinAccountRepository struct {
	store *memStore
}

func (r *memCoinAccountRepository) Create(ctx context.Context, account *entity.CoinAccount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.accounts[account.Id] = copyCoinAccount(account)
	return nil
}

func (r *memCoinAccountRepository) Update(ctx context.Context, account *entity.CoinAccount) error {
	return r.Create(ctx, account)
}

func (r *memCoinAccountRepository) FindByOwner(ctx context.Context, ownerId uuid.UUID) (*entity.CoinAccount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[ownerId]
	if !ok {
		return nil, nil
	}
	return copyCoinAccount(account), nil
}

func (r *memCoinAccountRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoinAccount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	accounts := make([]*entity.CoinAccount, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		accounts = append(accounts, copyCoinAccount(account))
	}
	return accounts, nil
}

type memInterviewTurnRepository struct {
	store *memStore
}

func (r *memInterviewTurnRepository) Create(ctx context.Context, turn *entity.InterviewTurn) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *turn
	r.store.turns = append(r.store.turns, &clone)
	return nil
}

func (r *memInterviewTurnRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewTurn, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	turns := make([]*entity.InterviewTurn, 0, len(r.store.turns))
	for _, turn := range r.store.turns {
		clone := *turn
		turns = append(turns, &clone)
	}
	return turns, nil
}

func (r *memInterviewTurnRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.turns)), nil
}

func copyApplication(app *entity.Application) *entity.Application {
	clone := *app
	clone.ResumeMatchPercent = copyIntPtr(app.ResumeMatchPercent)
	clone.AssessmentScore = copyIntPtr(app.AssessmentScore)
	clone.InterviewScore = copyIntPtr(app.InterviewScore)
	clone.FinalScore = copyIntPtr(app.FinalScore)
	clone.InterviewLog = append([]entity.TurnRecord(nil), app.InterviewLog...)
	return &clone
}

func copyCoinAccount(account *entity.CoinAccount) *entity.CoinAccount {
	clone := *account
	clone.History = append([]entity.CoinEntry(nil), account.History...)
	return &clone
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}
