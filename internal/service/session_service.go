package service

import (
	"context"
	"fmt"
	"strings"

	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/internal/repository/memory"
	"housing-empire-ai/pkg/events"
	"housing-empire-ai/pkg/llm"
	"housing-empire-ai/pkg/store"

	"github.com/google/uuid"
)

// ProviderFactory builds the chat backend for a session from its API key.
type ProviderFactory func(apiKey string) (llm.LLMProvider, error)

type ISessionService interface {
	// Resolve returns the live session for id, or a fresh one when id is
	// empty or expired.
	Resolve(id string) *store.Session
	SetCredential(ctx context.Context, sess *store.Session, secret string) error
}

type sessionService struct {
	repo            *memory.SessionRepository
	providerFactory ProviderFactory
	publisher       IPublisherService
	logger          logger.ILogger
}

func NewSessionService(repo *memory.SessionRepository, providerFactory ProviderFactory, publisher IPublisherService, log logger.ILogger) ISessionService {
	return &sessionService{
		repo:            repo,
		providerFactory: providerFactory,
		publisher:       publisher,
		logger:          log,
	}
}

func (s *sessionService) Resolve(id string) *store.Session {
	if id != "" {
		if sess, ok := s.repo.Get(id); ok {
			return sess
		}
	}

	sess := store.NewSession(uuid.NewString())
	s.repo.Save(sess)
	s.logger.Debug("SESSION", "Session started", map[string]interface{}{"session_id": sess.ID})
	return sess
}

// SetCredential stores secret as the session's API key and builds its
// provider once. An empty secret clears the key, and so does a secret the
// provider cannot be built from. The value is not validated.
func (s *sessionService) SetCredential(ctx context.Context, sess *store.Session, secret string) error {
	if secret == "" {
		sess.ClearCredential()
		return nil
	}

	// the caller's string may alias a pooled request buffer
	secret = strings.Clone(secret)

	provider, err := s.providerFactory(secret)
	if err != nil {
		sess.ClearCredential()
		return fmt.Errorf("configure provider: %w", err)
	}
	sess.SetCredential(secret, provider)

	s.publisher.Publish(ctx, events.New(events.TypeCredentialSet, map[string]interface{}{
		"session_id": sess.ID,
	}))
	return nil
}
