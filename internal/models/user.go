package models

// User represents an operator account.
//
// Usernames are unique in the durable backend (enforced by a constraint). The
// in-memory backend performs no uniqueness check; callers that care use
// GetUserByUsername first (see accounts.Registrar).
type User struct {
	// ID is assigned by the backend on creation and never reused.
	ID int64 `json:"id" db:"id"`

	// Username is the login name of the account.
	Username string `json:"username" db:"username"`

	// Password is stored exactly as supplied by the caller.
	// accounts.Registrar supplies a bcrypt hash.
	Password string `json:"-" db:"password"`
}

// NewUser is the input for creating a user.
type NewUser struct {
	Username string
	Password string
}
