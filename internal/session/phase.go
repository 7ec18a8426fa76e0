// Package session holds per-conversation state and the controller that
// drives the intake dialogue through its phases.
package session

// Phase is the conversation's current stage. Transitions are one-directional:
// Greeting -> InfoGathering -> TechQuestions -> Complete.
type Phase int

// Conversation phases in order.
const (
	PhaseGreeting Phase = iota
	PhaseInfoGathering
	PhaseTechQuestions
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseGreeting:
		return "greeting"
	case PhaseInfoGathering:
		return "info_gathering"
	case PhaseTechQuestions:
		return "tech_questions"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
