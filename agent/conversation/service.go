package conversation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Service is the boundary exposed to the chat surface. Ask never returns an
// error: upstream failures are logged and rendered as an apologetic answer,
// so a single failed turn is visible to the user but fatal to nothing.
type Service struct {
	engine   *Engine
	sessions *Sessions
}

func NewService(engine *Engine, sessions *Sessions) *Service {
	return &Service{
		engine:   engine,
		sessions: sessions,
	}
}

// Ask answers one user query within the given session, allocating the
// session on first use. Returns the (possibly newly generated) session id
// alongside the answer.
func (s *Service) Ask(ctx context.Context, sessionID, query string) (string, string) {
	conv := s.sessions.GetOrCreate(sessionID)

	answer, err := s.engine.Ask(ctx, conv, query)
	if err != nil {
		log.Error().Err(err).Str("session", conv.ID()).Msg("turn failed")
		return conv.ID(), fmt.Sprintf("죄송합니다. 오류가 발생했어요: %v", err)
	}

	log.Debug().Str("session", conv.ID()).Int("history_len", conv.Len()).Msg("turn completed")
	return conv.ID(), answer
}

// Reset clears the session's conversation history.
func (s *Service) Reset(sessionID string) bool {
	return s.sessions.Reset(sessionID)
}
