package models

// Response is the generic API envelope: a boolean success indicator plus an
// optional human-readable message. Failure responses always use this shape.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// IdentityResponse is returned by signup and login. It carries the caller's
// identity tuple at the top level of the document.
//
// Password is populated only by signup: the credential is generated
// server-side and stored as a one-way hash, so this response is the only
// place it is ever disclosed.
type IdentityResponse struct {
	Success  bool   `json:"success"`
	APIKey   string `json:"api_key"`
	UserName string `json:"user_name"`
	UserID   int64  `json:"user_id"`
	Password string `json:"password,omitempty"`
}

// ProfileResponse is returned by the profile endpoint for the
// context-bound user.
type ProfileResponse struct {
	Success  bool   `json:"success"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// CreateRoomResponse is returned by room creation and wraps the newly
// persisted room.
type CreateRoomResponse struct {
	Success bool `json:"success"`
	Room    Room `json:"room"`
}
