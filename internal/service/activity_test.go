package service

import (
	"context"
	"testing"
	"time"

	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherDeliversEvent(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "activity")
	require.NoError(t, err)

	publisher := NewPublisherService("activity", pubSub, logger.NewNopLogger())
	evt := events.New(events.TypeLeadsLoaded, map[string]interface{}{"rows": 3})
	publisher.Publish(ctx, evt)

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, evt.ID, msg.UUID)
		assert.Contains(t, string(msg.Payload), `"type":"LEADS_LOADED"`)
		assert.Contains(t, string(msg.Payload), `"rows":3`)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestPublisherWithoutBackendIsNoop(t *testing.T) {
	publisher := NewPublisherService("activity", nil, logger.NewNopLogger())
	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), events.New(events.TypeCredentialSet, nil))
	})
}

func TestConsumerAcksEveryMessage(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{BlockPublishUntilSubscriberAck: true}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "activity", logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("activity", pubSub, logger.NewNopLogger())

	// gochannel Publish blocks until the subscriber acks
	done := make(chan struct{})
	go func() {
		publisher.Publish(ctx, events.New(events.TypeGenerationFailed, map[string]interface{}{"error": "boom"}))
		publisher.Publish(ctx, events.New(events.TypeGenerationCompleted, nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not ack")
	}
}
