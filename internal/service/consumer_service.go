package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-onboarding-be/internal/dto"
	"ai-onboarding-be/internal/entity"
	"ai-onboarding-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService drains the audit topic and persists audit log rows off the
// request path, so logging activity never slows a response down.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

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
	var payload dto.AuditMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.AuditLog{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Action:    payload.Action,
		Details:   payload.Details,
		CreatedAt: time.Now(),
	}

	if err := uow.AuditLogRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to persist audit entry %s: %v", payload.Action, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
