package session

import "errors"

var (
	// ErrSessionInvalid indicates the presented token does not match the stored session
	ErrSessionInvalid = errors.New("session.invalid")

	// ErrUnknownUser indicates the username is not registered
	ErrUnknownUser = errors.New("session.unknown_user")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidConfig indicates a token length or alphabet that cannot produce valid tokens
	ErrInvalidConfig = errors.New("session.invalid_config")
)
