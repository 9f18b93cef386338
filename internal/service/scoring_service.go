package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"hireflow-be/internal/config"
	"hireflow-be/internal/constant"
	"hireflow-be/internal/dto"
	"hireflow-be/internal/entity"
	"hireflow-be/internal/pkg/logger"
	"hireflow-be/internal/repository/specification"
	"hireflow-be/internal/repository/unitofwork"
	"hireflow-be/pkg/events"
	pktNats "hireflow-be/pkg/nats"
	"hireflow-be/pkg/scoring"

	"github.com/google/uuid"
)

type IScoringService interface {
	// Finalize merges the supplied component scores into the candidate's
	// application record and recomputes the composite. Idempotent on the
	// (candidate, position) key.
	Finalize(ctx context.Context, request *dto.FinalizeScoreRequest) (*dto.ApplicationResponse, error)

	// RecordInterviewOutcome folds a finished interview into the
	// application record and returns the resulting composite score, or
	// the clamped interview score when other components are still absent.
	RecordInterviewOutcome(ctx context.Context, subjectId, positionId uuid.UUID, scores []int, transcript []entity.TurnRecord) (int, error)
}

type scoringService struct {
	uowFactory     unitofwork.RepositoryFactory
	aggregator     *scoring.Aggregator
	walletService  IWalletService
	eventPublisher *pktNats.Publisher
	cfg            config.InterviewConfig
	logger         logger.ILogger
}

func NewScoringService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *scoring.Aggregator,
	walletService IWalletService,
	eventPublisher *pktNats.Publisher,
	cfg config.InterviewConfig,
	log logger.ILogger,
) IScoringService {
	return &scoringService{
		uowFactory:     uowFactory,
		aggregator:     aggregator,
		walletService:  walletService,
		eventPublisher: eventPublisher,
		cfg:            cfg,
		logger:         log,
	}
}

func (s *scoringService) Finalize(ctx context.Context, request *dto.FinalizeScoreRequest) (*dto.ApplicationResponse, error) {
	app, err := s.apply(ctx, request.SubjectId, request.PositionId, func(app *entity.Application) {
		if request.ResumeMatch != nil {
			app.ResumeMatchPercent = request.ResumeMatch
		}
		if request.AssessmentScore != nil {
			app.AssessmentScore = request.AssessmentScore
		}
		if request.InterviewScore != nil {
			app.InterviewScore = request.InterviewScore
		}
	})
	if err != nil {
		return nil, err
	}

	return toApplicationResponse(app), nil
}

func (s *scoringService) RecordInterviewOutcome(ctx context.Context, subjectId, positionId uuid.UUID, scores []int, transcript []entity.TurnRecord) (int, error) {
	interviewScore := s.aggregator.ClampInterview(meanScore(scores))

	app, err := s.apply(ctx, subjectId, positionId, func(app *entity.Application) {
		app.InterviewScore = &interviewScore
		app.InterviewLog = transcript
	})
	if err != nil {
		return 0, err
	}

	if s.eventPublisher != nil {
		evt := events.NewInterviewCompleted(subjectId, positionId, interviewScore)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ScoringService", "Failed to publish interview completed event", map[string]interface{}{"error": err.Error()})
		}
	}

	finalScore := interviewScore
	if app.FinalScore != nil {
		finalScore = *app.FinalScore
	}
	return finalScore, nil
}

// apply runs one read-merge-upsert cycle on the application record and
// then performs the elite side effects outside the transaction.
func (s *scoringService) apply(ctx context.Context, candidateId, positionId uuid.UUID, mutate func(app *entity.Application)) (*entity.Application, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByCandidateAndPosition{
		CandidateID: candidateId,
		PositionID:  positionId,
	})
	if err != nil {
		return nil, err
	}
	if app == nil {
		app = &entity.Application{
			Id:          uuid.New(),
			CandidateId: candidateId,
			PositionId:  positionId,
			Status:      entity.ApplicationStatusApplied,
			CreatedAt:   time.Now(),
		}
	}

	mutate(app)

	wasShortlisted := app.Status == entity.ApplicationStatusShortlisted

	elite := false
	if final, ok := s.aggregator.Composite(app.ResumeMatchPercent, app.AssessmentScore, app.InterviewScore); ok {
		app.FinalScore = &final
		elite = s.aggregator.IsElite(final)
	}

	// Shortlisting is sticky: a later weaker component never demotes.
	if elite {
		app.Status = entity.ApplicationStatusShortlisted
	} else if app.Status == entity.ApplicationStatusApplied {
		app.Status = entity.ApplicationStatusUnderReview
	}

	now := time.Now()
	app.UpdatedAt = &now

	if err := uow.ApplicationRepository().Upsert(ctx, app); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if elite && !wasShortlisted {
		s.rewardElite(ctx, app)
	}

	return app, nil
}

// rewardElite credits the recruiter's ledger and announces the shortlist.
// Both are soft failures: the finalized score is already durable and a
// ledger or bus outage must not fail the API call.
func (s *scoringService) rewardElite(ctx context.Context, app *entity.Application) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	position, err := uow.PositionRepository().FindOne(ctx, specification.ByID{ID: app.PositionId})
	if err != nil || position == nil {
		s.logger.Warn("ScoringService", "Elite reward skipped, position lookup failed", map[string]interface{}{
			"position_id": app.PositionId.String(),
		})
		return
	}

	reason := fmt.Sprintf("elite-referral:%s:%s", app.CandidateId, app.PositionId)
	if _, err := s.walletService.CreditOnce(ctx, position.RecruiterId, s.cfg.EliteReferralCoins, reason); err != nil {
		s.logger.Warn("ScoringService", "Elite referral credit failed", map[string]interface{}{
			"recruiter_id": position.RecruiterId.String(),
			"error":        err.Error(),
		})
	}

	if s.eventPublisher != nil {
		finalScore := 0
		if app.FinalScore != nil {
			finalScore = *app.FinalScore
		}
		evt := events.NewCandidateShortlisted(app.CandidateId, app.PositionId, position.RecruiterId, finalScore)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ScoringService", "Failed to publish shortlist event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func meanScore(scores []int) int {
	if len(scores) == 0 {
		return constant.DefaultFallbackScore
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func toApplicationResponse(app *entity.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		Id:                 app.Id,
		CandidateId:        app.CandidateId,
		PositionId:         app.PositionId,
		ResumeMatchPercent: app.ResumeMatchPercent,
		AssessmentScore:    app.AssessmentScore,
		InterviewScore:     app.InterviewScore,
		FinalScore:         app.FinalScore,
		Status:             string(app.Status),
		InterviewLog:       app.InterviewLog,
		CreatedAt:          app.CreatedAt,
		UpdatedAt:          app.UpdatedAt,
	}
}
