package stream

import (
	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
)

// MessagePayload is a message as pushed to live clients. Assistant replies
// with a referral carry the matching available doctors.
type MessagePayload struct {
	chat.Message
	Doctors []doctor.Doctor `json:"doctors,omitempty"`
}

// TypingPayload reports whether the assistant is composing a reply.
type TypingPayload struct {
	Pending bool `json:"pending"`
}

// NewMessagePayload attaches referral doctors from store to msg.
func NewMessagePayload(msg chat.Message, store doctor.Store) MessagePayload {
	payload := MessagePayload{Message: msg}
	if store != nil && msg.Document != nil && msg.Document.Referral != "" {
		payload.Doctors = store.FindBySpecialty(msg.Document.Referral)
	}
	return payload
}
