package session

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/talent-scout/internal/extraction"
	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/types"
)

const promptFile = "intake.json"

// DefaultQuestionCount is the number of technical questions requested from
// the model when none is configured.
const DefaultQuestionCount = 5

// exitKeywords end the conversation when found anywhere in a user turn,
// case-insensitively.
var exitKeywords = []string{"exit", "quit", "bye"}

// ProfileStore persists the collected candidate data. Both operations are
// best-effort from the controller's perspective: a failure is surfaced to the
// user but never blocks the phase transition already decided.
type ProfileStore interface {
	UpsertCandidate(ctx context.Context, profile types.CandidateProfile, consent bool) error
	AppendExchange(ctx context.Context, email, question, answer string) error
}

// Options configures a Controller.
type Options struct {
	// QuestionCount is how many technical questions to request (default 5)
	QuestionCount int
	// Consent is recorded on the persisted candidate row
	Consent bool
}

// Controller drives phase transitions for a session based on user input and
// parsed model output. It holds no per-conversation state; all of that lives
// in the Session passed to HandleTurn.
type Controller struct {
	client llm.Client
	store  ProfileStore
	opts   Options
}

// NewController creates a controller over a model client and a profile store.
func NewController(client llm.Client, store ProfileStore, opts Options) *Controller {
	if opts.QuestionCount <= 0 {
		opts.QuestionCount = DefaultQuestionCount
	}
	return &Controller{client: client, store: store, opts: opts}
}

// HandleTurn processes one user turn: it appends the input to the transcript,
// applies the exit-keyword short circuit, then runs the current phase's logic.
// Every failure becomes an assistant message; none ends the process.
func (c *Controller) HandleTurn(ctx context.Context, s *Session, input string) {
	s.appendUser(input)

	if containsExitKeyword(input) {
		if s.Phase != PhaseComplete {
			s.Phase = PhaseComplete
			s.appendAssistant(ExitMessage)
		}
		return
	}

	switch s.Phase {
	case PhaseGreeting:
		c.handleGreeting(ctx, s)
	case PhaseInfoGathering:
		c.handleInfoGathering(ctx, s, input)
	case PhaseTechQuestions:
		c.handleTechQuestions(ctx, s, input)
	case PhaseComplete:
		// Terminal: nothing to do.
	}
}

// handleGreeting produces the model-generated greeting and advances to info
// gathering. The triggering user input is not consumed for extraction.
func (c *Controller) handleGreeting(ctx context.Context, s *Session) {
	greeting, err := c.client.GenerateContent(ctx, prompts.MustGet(promptFile, "greeting"), llm.TierLite)
	if err != nil {
		s.appendAssistant(modelErrorMessage(err))
		return
	}
	s.appendAssistant(greeting)
	s.Phase = PhaseInfoGathering
}

// handleInfoGathering extracts profile fields from the user turn, merges them
// monotonically, and once the required fields are present persists the
// profile and generates the technical questions.
func (c *Controller) handleInfoGathering(ctx context.Context, s *Session, input string) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "extract-profile"), map[string]string{
		"UserInput": input,
	})
	reply, err := c.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		s.appendAssistant(modelErrorMessage(err))
		return
	}

	raw, err := extraction.ExtractJSON(reply)
	if err != nil {
		s.appendAssistant(ParseRetryMessage)
		return
	}
	extracted, err := extraction.DecodeProfile(raw)
	if err != nil {
		s.appendAssistant(ParseRetryMessage)
		return
	}

	s.Profile.Merge(extracted)

	if missing := s.Profile.MissingRequired(); len(missing) > 0 {
		s.appendAssistant(missingFieldsPrefix + strings.Join(missing, ", "))
		return
	}

	// Storage is best-effort: a failed upsert is surfaced but does not stop
	// question generation.
	if err := c.store.UpsertCandidate(ctx, s.Profile, c.opts.Consent); err != nil {
		s.appendAssistant(storeErrorMessage(err))
	}

	c.generateQuestions(ctx, s)
}

// generateQuestions asks the model for the technical question list and, when
// at least one question parses, advances to the tech-questions phase showing
// only the first question.
func (c *Controller) generateQuestions(ctx context.Context, s *Session) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "tech-questions"), map[string]string{
		"NumQuestions":    strconv.Itoa(c.opts.QuestionCount),
		"TechStack":       strings.Join(s.Profile.TechStack, ", "),
		"YearsExperience": strconv.Itoa(*s.Profile.YearsExperience),
	})

	reply, err := c.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		s.appendAssistant(QuestionFailureMessage)
		return
	}

	questions := extraction.ParseNumberedList(reply)
	if len(questions) == 0 {
		s.appendAssistant(QuestionFailureMessage)
		return
	}

	s.Questions = questions
	s.Phase = PhaseTechQuestions
	s.appendAssistant(questions[0])
}

// handleTechQuestions records the user turn as the answer to the next
// unanswered question, persists the exchange immediately, and either asks the
// next question or completes the session on the last answer.
func (c *Controller) handleTechQuestions(ctx context.Context, s *Session, input string) {
	if len(s.Answers) >= len(s.Questions) {
		return
	}

	question := s.Questions[len(s.Answers)]
	s.Answers = append(s.Answers, input)

	var email string
	if s.Profile.Email != nil {
		email = *s.Profile.Email
	}
	if err := c.store.AppendExchange(ctx, email, question, input); err != nil {
		s.appendAssistant(storeErrorMessage(err))
	}

	if len(s.Answers) == len(s.Questions) {
		s.Phase = PhaseComplete
		s.appendAssistant(ExitMessage)
		return
	}
	s.appendAssistant(s.Questions[len(s.Answers)])
}

func containsExitKeyword(input string) bool {
	lowered := strings.ToLower(input)
	for _, kw := range exitKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
