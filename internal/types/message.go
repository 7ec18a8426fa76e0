package types

// Roles for transcript entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single transcript entry in a conversation session.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
