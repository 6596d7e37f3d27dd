package service

import (
	"context"
	"encoding/json"

	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes every dashboard activity event to the log.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Bad payloads are acked too, otherwise gochannel redelivers them forever.
	defer msg.Ack()

	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Warn("ACTIVITY", "Dropping undecodable event", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		return
	}

	details := map[string]interface{}{
		"event_id":    evt.ID,
		"occurred_at": evt.OccurredAt,
	}
	for k, v := range evt.Data {
		details[k] = v
	}

	if evt.Type == events.TypeGenerationFailed || evt.Type == events.TypeLeadsRejected {
		cs.logger.Warn("ACTIVITY", evt.Type, details)
		return
	}
	cs.logger.Info("ACTIVITY", evt.Type, details)
}
