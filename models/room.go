package models

// Room is a named conversation scope for messages. Rooms are created by any
// authenticated user and are never deleted. Names are intended to be unique
// but the default schema does not enforce it; see the store layer for the
// conflict-signalling contract.
type Room struct {
	// RoomID is the internal unique identifier of the room.
	RoomID int64 `json:"id"`

	// Name is the room's display name. Generated when the creator does
	// not supply one.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Room model.
func (r Room) TableName() string {
	return "rooms"
}
