package model

import "errors"

// Error taxonomy of the messaging core. Services wrap these with context,
// transports match them with errors.Is.
var (
	// ErrForbidden is returned when the capability check fails or the caller
	// is not a participant of the conversation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a conversation or message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIntegrity signals an authenticated-decryption failure on stored data.
	ErrIntegrity = errors.New("message integrity check failed")
	// ErrValidation is returned for malformed input such as empty text.
	ErrValidation = errors.New("validation failed")
	// ErrTransientStore signals that the underlying persistence is unavailable.
	ErrTransientStore = errors.New("store unavailable")
)
