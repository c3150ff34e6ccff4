package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a message left through the public contact form.
// The sender's IP is never stored, only its truncated hash.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IPHash    string    `json:"ipHash"`
	CreatedAt time.Time `json:"createdAt"`
}
