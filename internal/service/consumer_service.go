package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the analytics topic and persists each event as an
// analytics row. Runs for the lifetime of the process.
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
	var payload dto.TrackEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal analytics message: %v", err)
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	entry := entity.AnalyticsEntry{
		Id:         uuid.New(),
		CloneId:    payload.CloneId,
		UserId:     payload.UserId,
		EventType:  payload.EventType,
		EventData:  payload.EventData,
		OccurredAt: time.Now(),
	}

	if err := uow.AnalyticsRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to persist analytics event %s: %v", payload.EventType, err)
		// Nack for retriable errors
		msg.Nack()
		return
	}

	msg.Ack()
}
