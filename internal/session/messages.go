package session

import "fmt"

// Fixed assistant texts. The exit message matches the close-out wording sent
// to every candidate regardless of how the session ended.
const (
	// ExitMessage is appended when the session reaches Complete
	ExitMessage = "Thank you for your time! A recruiter will contact you within 3 business days."
	// ParseRetryMessage is appended when no profile JSON could be recovered
	ParseRetryMessage = "Could not parse your data. Please retry."
	// QuestionFailureMessage is appended when question generation yields nothing usable
	QuestionFailureMessage = "Could not generate questions."

	missingFieldsPrefix = "Missing fields: "
)

func modelErrorMessage(err error) string {
	return fmt.Sprintf("The assistant is temporarily unavailable (%v). Please repeat your last message.", err)
}

func storeErrorMessage(err error) string {
	return fmt.Sprintf("Warning: could not save your data (%v).", err)
}
