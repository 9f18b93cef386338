package service

import (
	"context"
	"fmt"

	"hireflow-be/internal/pkg/logger"
	"hireflow-be/internal/pkg/mailer"
	"hireflow-be/internal/repository/specification"
	"hireflow-be/internal/repository/unitofwork"
	"hireflow-be/pkg/events"
	pktNats "hireflow-be/pkg/nats"

	"github.com/google/uuid"
)

// NotifierService listens on the event bus and emails recruiters when one
// of their candidates gets shortlisted.
type NotifierService struct {
	subscriber *pktNats.Subscriber
	uowFactory unitofwork.RepositoryFactory
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotifierService(sub *pktNats.Subscriber, uowFactory unitofwork.RepositoryFactory, email mailer.IEmailService, log logger.ILogger) *NotifierService {
	return &NotifierService{
		subscriber: sub,
		uowFactory: uowFactory,
		mailer:     email,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotifierService) Start() {
	err := s.subscriber.Subscribe("events."+events.TypeCandidateShortlisted, "shortlist-notifier", s.handleEvent)
	if err != nil {
		s.logger.Error("NotifierService", "Failed to start shortlist subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotifierService", "Shortlist notifier started", nil)
}

func (s *NotifierService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	positionIdStr, _ := payload["position_id"].(string)
	positionId, err := uuid.Parse(positionIdStr)
	if err != nil {
		s.logger.Warn("NotifierService", "Shortlist event without a valid position id", map[string]interface{}{
			"payload": fmt.Sprintf("%v", payload),
		})
		return nil
	}

	finalScore := 0
	if v, ok := payload["final_score"].(float64); ok {
		finalScore = int(v)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	position, err := uow.PositionRepository().FindOne(ctx, specification.ByID{ID: positionId})
	if err != nil {
		return err // Retriable, let the bus redeliver
	}
	if position == nil || position.RecruiterEmail == "" {
		s.logger.Warn("NotifierService", "No recruiter email for shortlisted candidate", map[string]interface{}{
			"position_id": positionId.String(),
		})
		return nil
	}

	if err := s.mailer.SendShortlistNotification(position.RecruiterEmail, position.Title, finalScore); err != nil {
		// Mail failures are logged inside the mailer; do not redeliver,
		// the recruiter still sees the shortlist in the dashboard.
		return nil
	}

	return nil
}
