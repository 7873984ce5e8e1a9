package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set. It covers both name lookups
	// during login and API-key lookups during authentication.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRoomNameTaken is returned when inserting or renaming a room collides
	// with an existing room name. The default schema carries no uniqueness
	// constraint, so this branch is never hit there; the sentinel exists so
	// callers can handle the conflict when a deployment enforces uniqueness.
	ErrRoomNameTaken = errors.New("room name already taken")

	// ErrMissingReference is returned when inserting a message violates a
	// referential constraint, i.e. the room or author it points at does not
	// exist in the database.
	ErrMissingReference = errors.New("message references a missing room or user")
)
