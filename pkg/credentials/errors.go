package credentials

import "errors"

var (
	// ErrUnknownUser indicates the username is not registered in the store
	ErrUnknownUser = errors.New("credentials.unknown_user")

	// ErrCredentialMismatch indicates the password does not match
	ErrCredentialMismatch = errors.New("credentials.mismatch")
)
