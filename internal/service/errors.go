package service

import (
	"errors"
	"fmt"
	"strings"
)

// Base kinds. The HTTP layer maps these to status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrConversationNotFound  = fmt.Errorf("%w: Conversation not found", ErrNotFound)
	ErrMessageNotFound       = fmt.Errorf("%w: Message not found", ErrNotFound)
	ErrAlreadyAssigned       = fmt.Errorf("%w: Conversation is already assigned to an expert", ErrConflict)
	ErrNotAssignedExpert     = fmt.Errorf("%w: Current expert is not assigned to this conversation", ErrForbidden)
	ErrInitiatorCannotClaim  = fmt.Errorf("%w: Cannot claim your own conversation", ErrForbidden)
	ErrOwnMessage            = fmt.Errorf("%w: Cannot mark your own messages as read", ErrForbidden)
	ErrNotInitiator          = fmt.Errorf("%w: Unauthorized", ErrForbidden)
	ErrExpertProfileRequired = fmt.Errorf("%w: Expert profile required", ErrForbidden)
	ErrInvalidCredentials    = fmt.Errorf("%w: Invalid username or password", ErrUnauthorized)
	ErrInvalidToken          = fmt.Errorf("%w: Unauthorized", ErrUnauthorized)
)

// Message strips the kind prefix so the text can go straight into a response body.
func Message(err error) string {
	msg := err.Error()
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrForbidden, ErrUnauthorized} {
		if p := kind.Error() + ": "; strings.HasPrefix(msg, p) {
			return strings.TrimPrefix(msg, p)
		}
	}
	return msg
}

// ValidationError carries field-level messages for a rejected input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

func newValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}
