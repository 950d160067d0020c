package contact

import (
	"context"
	"errors"
	"log"
)

// Response texts. The API bodies are part of the endpoint contract.
const (
	MsgAccepted     = "Message received! Thank you for reaching out."
	MsgMissingField = "Name, email, and message are required"
	MsgFailed       = "Failed to process your message. Please try again later."
	MsgSendFailed   = "Failed to send message. Server returned an error."
)

// ErrMissingField is returned when name, email or message is empty.
var ErrMissingField = errors.New(MsgMissingField)

// Submission is a single contact form entry. It is never persisted.
type Submission struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// Validate checks field presence only. No format or length rules apply.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingField
	}
	return nil
}

// Receiver accepts a submission and returns the acknowledgment text.
type Receiver interface {
	Receive(ctx context.Context, s Submission) (string, error)
}

// Acknowledger is the live Receiver. It logs the sender and discards the
// submission; delivery happens through the browser-side email relay.
type Acknowledger struct{}

// NewAcknowledger returns the default Receiver.
func NewAcknowledger() *Acknowledger {
	return &Acknowledger{}
}

// Receive validates s and returns the fixed acknowledgment.
func (a *Acknowledger) Receive(ctx context.Context, s Submission) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	log.Printf("Contact submission received from %s (%s)", s.Name, s.Email)
	return MsgAccepted, nil
}
