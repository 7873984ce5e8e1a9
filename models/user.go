package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the store at signup.
	UserID int64 `json:"user_id"`

	// Name is the display name of the user. It is not required to be
	// unique; two accounts may carry the same name.
	Name string `json:"user_name"`

	// Password holds the user's credential. At the persistence layer this
	// is always a bcrypt hash; the plaintext form appears only transiently
	// in the signup response, where the generated credential is disclosed
	// to the caller exactly once.
	Password string `json:"-"`

	// APIKey is the opaque 40-character lowercase-alphanumeric bearer
	// credential generated at signup. It is unique across users and is
	// the sole authentication credential for every protected endpoint.
	APIKey string `json:"api_key,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
