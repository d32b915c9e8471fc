package epitome

// Role identifies the author of a prompt message.
type Role string

// Roles used in summarization prompts.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single entry in the prompt sent to a model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
