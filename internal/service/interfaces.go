package service

import (
	"context"

	"github.com/watchparty/server/models"
)

// AuthService manages account lifecycle and credential verification.
type AuthService interface {
	// Signup creates a fresh account with generated name and credentials.
	// The returned user carries the plaintext password; it is disclosed to
	// the caller exactly once and only the hash is stored.
	Signup(ctx context.Context) (models.User, error)

	// Login verifies a name/password pair and returns the matching user.
	Login(ctx context.Context, name, password string) (models.User, error)

	// Authenticate resolves a bearer API key to its owning user.
	Authenticate(ctx context.Context, apiKey string) (models.User, error)

	// UpdateName changes the display name of the user identified by userID.
	UpdateName(ctx context.Context, userID int64, name string) error

	// UpdatePassword replaces the credential of the user identified by
	// userID. password and confirm must be equal and non-empty.
	UpdatePassword(ctx context.Context, userID int64, password, confirm string) error
}

// RoomService manages rooms and the messages posted into them.
type RoomService interface {
	// ListRooms returns every room in creation order.
	ListRooms(ctx context.Context) ([]models.Room, error)

	// CreateRoom creates a room. An empty name is replaced with a generated
	// placeholder name.
	CreateRoom(ctx context.Context, name string) (models.Room, error)

	// RenameRoom sets the name of an existing room. A room ID that matches
	// nothing is a silent no-op.
	RenameRoom(ctx context.Context, roomID int64, name string) error

	// ListMessages returns every message in a room in posting order.
	ListMessages(ctx context.Context, roomID int64) ([]models.Message, error)

	// PostMessage stores a message authored by userID in roomID. The body
	// is trimmed of surrounding whitespace and must not end up empty.
	PostMessage(ctx context.Context, userID, roomID int64, body string) (models.Message, error)
}
