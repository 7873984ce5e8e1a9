package models

// Message is a single immutable text post inside a room. Messages are never
// edited or deleted; ordering within a room is strictly ascending by ID.
type Message struct {
	// MessageID is the insertion-ordered unique identifier of the message.
	MessageID int64 `json:"id"`

	// Body is the message text, trimmed of leading and trailing
	// whitespace before storage. Never empty.
	Body string `json:"body"`

	// Author is the posting user's display name resolved at read time.
	// When the author record no longer resolves, it falls back to a
	// synthetic "User ID: <id>" label.
	Author string `json:"author"`

	// UserID references the user who posted the message.
	UserID int64 `json:"user_id"`

	// RoomID references the room the message belongs to.
	RoomID int64 `json:"room_id"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
