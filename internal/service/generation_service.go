package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/entity"
	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/internal/pkg/metrics"
	"housing-empire-ai/pkg/events"
	"housing-empire-ai/pkg/llm"
	"housing-empire-ai/pkg/prompt"
	"housing-empire-ai/pkg/store"
)

type IGenerationService interface {
	// Generate sends one prompt for kind through the session's provider.
	// It never retries and never calls out when the session has no key.
	Generate(ctx context.Context, sess *store.Session, kind entity.GenerationKind, fields entity.GenerationFields) (*dto.GenerationResult, error)
}

type generationService struct {
	model     string
	publisher IPublisherService
	logger    logger.ILogger
}

func NewGenerationService(model string, publisher IPublisherService, log logger.ILogger) IGenerationService {
	return &generationService{
		model:     model,
		publisher: publisher,
		logger:    log,
	}
}

func (s *generationService) Generate(ctx context.Context, sess *store.Session, kind entity.GenerationKind, fields entity.GenerationFields) (*dto.GenerationResult, error) {
	messages, err := prompt.Build(kind, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, err)
	}

	provider := sess.Provider()
	if provider == nil {
		return nil, ErrMissingCredential
	}

	release, ok := sess.TryBeginGeneration()
	if !ok {
		return nil, ErrGenerationInFlight
	}
	defer release()

	startTime := time.Now()
	content, err := provider.Chat(ctx, messages, llm.WithModel(s.model))
	elapsed := time.Since(startTime)
	latencyMs := elapsed.Milliseconds()
	metrics.GenerationDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())

	if err != nil {
		metrics.GenerationsFailed.WithLabelValues(string(kind)).Inc()
		s.logger.Error("LLM", "Generation failed", map[string]interface{}{
			"session_id": sess.ID,
			"kind":       string(kind),
			"latency_ms": latencyMs,
			"error":      err.Error(),
		})
		s.publisher.Publish(ctx, events.New(events.TypeGenerationFailed, map[string]interface{}{
			"session_id": sess.ID,
			"kind":       string(kind),
			"latency_ms": latencyMs,
			"error":      err.Error(),
		}))
		return nil, &GenerationError{Kind: kind, Err: describe(err)}
	}

	metrics.GenerationsCompleted.WithLabelValues(string(kind)).Inc()
	s.publisher.Publish(ctx, events.New(events.TypeGenerationCompleted, map[string]interface{}{
		"session_id": sess.ID,
		"kind":       string(kind),
		"model":      s.model,
		"latency_ms": latencyMs,
		"chars":      len(content),
	}))

	return &dto.GenerationResult{
		Kind:    kind,
		Heading: prompt.Heading(kind),
		Content: content,
		Model:   s.model,
	}, nil
}

// describe keeps the provider message but names timeouts plainly.
func describe(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}
	return err
}
