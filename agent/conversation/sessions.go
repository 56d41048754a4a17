package conversation

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sessions holds one Conversation per session id. Conversations are created
// on first use and live for the process lifetime; there is no persistence.
type Sessions struct {
	systemPrompt string

	mu    sync.RWMutex
	convs map[string]*Conversation
}

func NewSessions(systemPrompt string) *Sessions {
	return &Sessions{
		systemPrompt: systemPrompt,
		convs:        make(map[string]*Conversation),
	}
}

// GetOrCreate returns the conversation for id, allocating a fresh one (with a
// generated uuid when id is blank) if none exists.
func (s *Sessions) GetOrCreate(id string) *Conversation {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.RLock()
	conv, ok := s.convs[id]
	s.mu.RUnlock()
	if ok {
		return conv
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.convs[id]; ok {
		return conv
	}
	conv = New(id, s.systemPrompt)
	s.convs[id] = conv
	return conv
}

// Get returns an existing conversation, if any.
func (s *Sessions) Get(id string) (*Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.convs[id]
	return conv, ok
}

// Reset clears a session's history back to the system entry. Unknown ids are
// a no-op.
func (s *Sessions) Reset(id string) bool {
	conv, ok := s.Get(id)
	if !ok {
		return false
	}
	conv.Reset()
	return true
}
