package service

import "errors"

var (
	// ErrInvalidDataProvided signals that a required field was missing or
	// empty in the caller's input.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials signals a failed login: unknown name or a password
	// that matches no account with that name. Deliberately indistinguishable
	// from the outside.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrPasswordMismatch signals that a password change supplied two
	// different values for the new credential.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmptyMessageBody signals a message whose body is empty after
	// whitespace trimming.
	ErrEmptyMessageBody = errors.New("message body cannot be empty")
)
