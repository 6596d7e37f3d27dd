package service

import (
	"context"
	"encoding/json"

	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event)
}

type publisherService struct {
	topicName string
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(topicName string, publisher message.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
		logger:    log,
	}
}

// Publish is fire-and-forget: a failed publish is logged and never fails the
// user action that produced the event.
func (p *publisherService) Publish(ctx context.Context, evt events.Event) {
	if p.publisher == nil {
		return
	}

	body, err := json.Marshal(events.BaseEvent{
		ID:         evt.EventID(),
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		p.logger.Error("ACTIVITY", "Failed to encode event", map[string]interface{}{"type": evt.EventType(), "error": err.Error()})
		return
	}

	msg := message.NewMessage(evt.EventID(), body)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("ACTIVITY", "Failed to publish event", map[string]interface{}{"type": evt.EventType(), "error": err.Error()})
	}
}
