package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/entity"
	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/pkg/events"
	"housing-empire-ai/pkg/llm"
	"housing-empire-ai/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerationService(pub IPublisherService) IGenerationService {
	return NewGenerationService(constant.DefaultModel, pub, logger.NewNopLogger())
}

func TestGenerateWithoutCredentialNeverCallsProvider(t *testing.T) {
	fields := []entity.GenerationFields{
		{},
		{Address: "1 Main St"},
		{DealType: "Wrap"},
		{Structure: "SubTo", SellerName: "Jane Doe", Price: 100000},
	}

	for _, kind := range entity.AllGenerationKinds {
		for _, f := range fields {
			provider := &fakeProvider{reply: "should not be seen"}
			sess := store.NewSession("s")
			// a provider without a key must not be reachable
			sess.SetCredential("", provider)

			svc := newGenerationService(&recordingPublisher{})
			res, err := svc.Generate(context.Background(), sess, kind, f)

			assert.ErrorIs(t, err, ErrMissingCredential)
			assert.Nil(t, res)
			assert.Equal(t, 0, provider.callCount())
		}
	}
}

func TestGenerateSuccess(t *testing.T) {
	provider := &fakeProvider{reply: "Dear Jane,\n..."}
	sess := store.NewSession("s")
	sess.SetCredential("sk-test", provider)
	pub := &recordingPublisher{}

	res, err := newGenerationService(pub).Generate(context.Background(), sess, entity.GenerationLOI, entity.GenerationFields{
		Structure:  "SubTo",
		SellerName: "Jane Doe",
		Price:      100000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dear Jane,\n...", res.Content)
	assert.Equal(t, "GPT LOI:", res.Heading)
	assert.Equal(t, "gpt-4", res.Model)

	require.Equal(t, 1, provider.callCount())
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleSystem, Content: constant.SystemPromptLOI},
		{Role: llm.RoleUser, Content: "/loi SubTo\nSeller: Jane Doe\nPrice: $100000"},
	}, provider.messages[0])
	assert.Equal(t, "gpt-4", provider.options[0].Model)
	assert.Equal(t, []string{events.TypeGenerationCompleted}, pub.types())
}

func TestGenerateProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("Incorrect API key provided")}
	sess := store.NewSession("s")
	sess.SetCredential("sk-bad", provider)
	pub := &recordingPublisher{}

	res, err := newGenerationService(pub).Generate(context.Background(), sess, entity.GenerationScript, entity.GenerationFields{DealType: "Cash"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.EqualError(t, err, "Incorrect API key provided")
	assert.Equal(t, 1, provider.callCount(), "no retry")
	assert.Equal(t, []string{events.TypeGenerationFailed}, pub.types())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, entity.GenerationScript, genErr.Kind)
}

func TestGenerateNoChoicesIsGenerationError(t *testing.T) {
	sess := store.NewSession("s")
	sess.SetCredential("sk", &fakeProvider{err: llm.ErrNoChoices})

	_, err := newGenerationService(&recordingPublisher{}).Generate(context.Background(), sess, entity.GenerationAnalyze, entity.GenerationFields{Address: "x"})

	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, llm.ErrNoChoices)
}

func TestGenerateTimeoutMessage(t *testing.T) {
	sess := store.NewSession("s")
	sess.SetCredential("sk", &fakeProvider{err: context.DeadlineExceeded})

	_, err := newGenerationService(&recordingPublisher{}).Generate(context.Background(), sess, entity.GenerationAnalyze, entity.GenerationFields{})

	assert.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "request timed out")
}

func TestGenerateUnknownKind(t *testing.T) {
	provider := &fakeProvider{}
	sess := store.NewSession("s")
	sess.SetCredential("sk", provider)

	_, err := newGenerationService(&recordingPublisher{}).Generate(context.Background(), sess, entity.GenerationKind("underwrite"), entity.GenerationFields{})

	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, 0, provider.callCount())
}

func TestGenerateOneInFlightPerSession(t *testing.T) {
	gate := make(chan struct{})
	provider := &fakeProvider{reply: "ok", gate: gate}
	sess := store.NewSession("s")
	sess.SetCredential("sk", provider)
	svc := newGenerationService(&recordingPublisher{})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), sess, entity.GenerationScript, entity.GenerationFields{DealType: "Wrap"})
		done <- err
	}()

	// wait until the first call holds the slot
	require.Eventually(t, func() bool {
		release, ok := sess.TryBeginGeneration()
		if ok {
			release()
			return false
		}
		return true
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Generate(context.Background(), sess, entity.GenerationScript, entity.GenerationFields{DealType: "Cash"})
	assert.ErrorIs(t, err, ErrGenerationInFlight)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, 1, provider.callCount())

	_, err = svc.Generate(context.Background(), sess, entity.GenerationScript, entity.GenerationFields{DealType: "Cash"})
	assert.NoError(t, err)
}
