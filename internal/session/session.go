package session

import (
	"github.com/google/uuid"

	"github.com/jonathan/talent-scout/internal/types"
)

// Session is the process-local state of one active conversation. It is owned
// by a single caller and mutated only by the controller; there is no ambient
// global lookup. Invariant: len(Answers) <= len(Questions).
type Session struct {
	ID        uuid.UUID
	Messages  []types.Message
	Profile   types.CandidateProfile
	Phase     Phase
	Questions []string
	Answers   []string
}

// New creates a session at the start of a conversation: empty transcript,
// all profile fields null, phase Greeting.
func New() *Session {
	return &Session{
		ID:    uuid.New(),
		Phase: PhaseGreeting,
	}
}

func (s *Session) appendUser(content string) {
	s.Messages = append(s.Messages, types.Message{Role: types.RoleUser, Content: content})
}

func (s *Session) appendAssistant(content string) {
	s.Messages = append(s.Messages, types.Message{Role: types.RoleAssistant, Content: content})
}
