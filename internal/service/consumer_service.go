package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hireflow-be/internal/dto"
	"hireflow-be/internal/entity"
	"hireflow-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the turn audit pipeline and persists each
// question/answer pair. Audit writes are decoupled from the interview
// hot path so a slow database never delays the next question.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	askedAt := payload.AskedAt
	if askedAt.IsZero() {
		askedAt = time.Now()
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err := uow.InterviewTurnRepository().Create(ctx, &entity.InterviewTurn{
		Id:          uuid.New(),
		CandidateId: payload.CandidateId,
		PositionId:  payload.PositionId,
		Question:    payload.Question,
		Answer:      payload.Answer,
		CreatedAt:   askedAt,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to persist interview turn for candidate %s: %v", payload.CandidateId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
