package service

import (
	"context"
	"testing"
	"time"

	"hireflow-be/internal/config"
	"hireflow-be/internal/dto"
	"hireflow-be/internal/entity"
	"hireflow-be/internal/pkg/logger"
	"hireflow-be/pkg/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoringFixture struct {
	store   *memStore
	wallet  IWalletService
	scoring IScoringService
}

func newScoringFixture() *scoringFixture {
	store := newMemStore()
	factory := newMemUowFactory(store)
	cfg := config.InterviewConfig{
		PassingScore:         70,
		EliteThreshold:       60,
		InterviewScoreFloor:  25,
		EliteReferralCoins:   50,
		AssessmentUnlockCost: 10,
	}
	wallet := NewWalletService(factory, cfg.AssessmentUnlockCost, logger.NewNopLogger())
	aggregator := scoring.NewAggregator(cfg.EliteThreshold, cfg.InterviewScoreFloor)
	return &scoringFixture{
		store:   store,
		wallet:  wallet,
		scoring: NewScoringService(factory, aggregator, wallet, nil, cfg, logger.NewNopLogger()),
	}
}

func (f *scoringFixture) seedPosition(recruiterId uuid.UUID) uuid.UUID {
	positionId := uuid.New()
	f.store.positions = append(f.store.positions, &entity.Position{
		Id:          positionId,
		Title:       "Backend Engineer",
		RecruiterId: recruiterId,
		CreatedAt:   time.Now(),
	})
	return positionId
}

func intPtr(v int) *int { return &v }

func TestFinalizeCreditsRecruiterExactlyOnce(t *testing.T) {
	f := newScoringFixture()
	recruiterId := uuid.New()
	positionId := f.seedPosition(recruiterId)
	candidateId := uuid.New()

	request := &dto.FinalizeScoreRequest{
		SubjectId:      candidateId,
		PositionId:     positionId,
		ResumeMatch:    intPtr(80),
		InterviewScore: intPtr(70),
	}

	first, err := f.scoring.Finalize(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, first.FinalScore)
	assert.Equal(t, 75, *first.FinalScore)
	assert.Equal(t, string(entity.ApplicationStatusShortlisted), first.Status)

	// Replaying the identical finalize must not double-credit.
	second, err := f.scoring.Finalize(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 75, *second.FinalScore)

	history, err := f.wallet.History(context.Background(), recruiterId)
	require.NoError(t, err)
	assert.Equal(t, 50, history.Balance)
	require.Len(t, history.History, 1)
	assert.Equal(t, 50, history.History[0].Amount)
	assert.Equal(t, string(entity.CoinDirectionCredit), history.History[0].Direction)
}

func TestFinalizeBelowThresholdDoesNotCredit(t *testing.T) {
	f := newScoringFixture()
	recruiterId := uuid.New()
	positionId := f.seedPosition(recruiterId)

	res, err := f.scoring.Finalize(context.Background(), &dto.FinalizeScoreRequest{
		SubjectId:      uuid.New(),
		PositionId:     positionId,
		ResumeMatch:    intPtr(40),
		InterviewScore: intPtr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 45, *res.FinalScore)
	assert.Equal(t, string(entity.ApplicationStatusUnderReview), res.Status)

	balance, err := f.wallet.Balance(context.Background(), recruiterId)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Balance)
}

func TestFinalizeMergesComponentsAcrossCalls(t *testing.T) {
	f := newScoringFixture()
	positionId := f.seedPosition(uuid.New())
	candidateId := uuid.New()

	first, err := f.scoring.Finalize(context.Background(), &dto.FinalizeScoreRequest{
		SubjectId:   candidateId,
		PositionId:  positionId,
		ResumeMatch: intPtr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, 80, *first.FinalScore)

	second, err := f.scoring.Finalize(context.Background(), &dto.FinalizeScoreRequest{
		SubjectId:      candidateId,
		PositionId:     positionId,
		InterviewScore: intPtr(60),
	})
	require.NoError(t, err)
	require.NotNil(t, second.ResumeMatchPercent)
	assert.Equal(t, 80, *second.ResumeMatchPercent)
	assert.Equal(t, 70, *second.FinalScore)
}

func TestRecordInterviewOutcomeReturnsComposite(t *testing.T) {
	f := newScoringFixture()
	positionId := f.seedPosition(uuid.New())
	candidateId := uuid.New()

	_, err := f.scoring.Finalize(context.Background(), &dto.FinalizeScoreRequest{
		SubjectId:   candidateId,
		PositionId:  positionId,
		ResumeMatch: intPtr(80),
	})
	require.NoError(t, err)

	// Interview mean is 60, but resume match 80 is already on record so
	// the returned score is the recomputed composite.
	final, err := f.scoring.RecordInterviewOutcome(
		context.Background(), candidateId, positionId, []int{60, 60}, nil)
	require.NoError(t, err)
	assert.Equal(t, 70, final)
}

func TestRecordInterviewOutcomeInterviewOnly(t *testing.T) {
	f := newScoringFixture()
	positionId := f.seedPosition(uuid.New())

	final, err := f.scoring.RecordInterviewOutcome(
		context.Background(), uuid.New(), positionId, []int{55, 65}, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, final)
}

func TestRecordInterviewOutcomeEmptyScores(t *testing.T) {
	f := newScoringFixture()
	positionId := f.seedPosition(uuid.New())

	final, err := f.scoring.RecordInterviewOutcome(
		context.Background(), uuid.New(), positionId, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, final)
}

func TestRecordInterviewOutcomePersistsTranscript(t *testing.T) {
	f := newScoringFixture()
	positionId := f.seedPosition(uuid.New())
	candidateId := uuid.New()

	transcript := []entity.TurnRecord{
		{Role: "interviewer", Content: "Tell me about Go."},
		{Role: "candidate", Content: "I use it daily."},
	}
	_, err := f.scoring.RecordInterviewOutcome(
		context.Background(), candidateId, positionId, []int{70}, transcript)
	require.NoError(t, err)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	require.Len(t, f.store.applications, 1)
	assert.Equal(t, transcript, f.store.applications[0].InterviewLog)
}
