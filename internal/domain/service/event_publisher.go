package service

import (
	"context"
	"time"
)

// ContactSubmittedEvent is the event_type attribute of a ContactEvent message.
const ContactSubmittedEvent = "contact.submitted"

// ContactEvent announces a newly stored contact submission.
type ContactEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	SubmissionID string    `json:"submission_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContactEvent publishes a contact event for async processing
	PublishContactEvent(ctx context.Context, event *ContactEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
