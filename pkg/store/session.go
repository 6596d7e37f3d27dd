package store

import (
	"sync"
	"time"

	"housing-empire-ai/internal/entity"
	"housing-empire-ai/pkg/llm"
)

// Session is one browser's dashboard state. It lives in memory only.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	apiKey   string
	provider llm.LLMProvider
	leads    *entity.LeadSet

	// held for the duration of an outbound generation call
	generating sync.Mutex
}

func NewSession(id string) *Session {
	return &Session{ID: id, CreatedAt: time.Now()}
}

// SetCredential replaces the API key and the provider built from it.
func (s *Session) SetCredential(apiKey string, provider llm.LLMProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = apiKey
	s.provider = provider
}

func (s *Session) ClearCredential() {
	s.SetCredential("", nil)
}

func (s *Session) HasCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey != ""
}

// Provider returns the session's provider, or nil when no key is stored.
func (s *Session) Provider() llm.LLMProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.apiKey == "" {
		return nil
	}
	return s.provider
}

func (s *Session) SetLeads(leads *entity.LeadSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = leads
}

func (s *Session) Leads() *entity.LeadSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leads
}

// TryBeginGeneration claims the session's single generation slot. The
// returned release func must be called when the call completes.
func (s *Session) TryBeginGeneration() (release func(), ok bool) {
	if !s.generating.TryLock() {
		return nil, false
	}
	return s.generating.Unlock, true
}
