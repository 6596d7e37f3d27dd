package store

import (
	"context"
	"testing"

	"housing-empire-ai/internal/entity"
	"housing-empire-ai/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopProvider struct{}

func (nopProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return "", nil
}

func TestSessionCredential(t *testing.T) {
	s := NewSession("abc")
	assert.False(t, s.HasCredential())
	assert.Nil(t, s.Provider())

	s.SetCredential("sk-1", nopProvider{})
	assert.True(t, s.HasCredential())
	assert.NotNil(t, s.Provider())

	s.ClearCredential()
	assert.False(t, s.HasCredential())
	assert.Nil(t, s.Provider())
}

func TestSessionLeadsReplace(t *testing.T) {
	s := NewSession("abc")
	first := &entity.LeadSet{Columns: []string{"a"}}
	second := &entity.LeadSet{Columns: []string{"b"}}

	s.SetLeads(first)
	s.SetLeads(second)

	assert.Same(t, second, s.Leads())
}

func TestTryBeginGenerationIsExclusive(t *testing.T) {
	s := NewSession("abc")

	release, ok := s.TryBeginGeneration()
	require.True(t, ok)

	_, again := s.TryBeginGeneration()
	assert.False(t, again)

	release()
	release2, ok := s.TryBeginGeneration()
	assert.True(t, ok)
	release2()
}
