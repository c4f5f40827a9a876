package chat

import (
	"time"

	"github.com/pranavthakur-code/get-health-help/internal/analysis/triage"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Health Assistant"
	default:
		return string(r)
	}
}

// Message is one immutable turn in a conversation. User messages carry Text,
// assistant messages carry a Document.
type Message struct {
	ID        string           `json:"id"`
	Role      Role             `json:"role"`
	Text      string           `json:"text,omitempty"`
	Document  *triage.Document `json:"document,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
