package models

// User represents one registered account as held by the credential store.
type User struct {
	ID           string `bson:"_id,omitempty" db:"id"`
	Username     string `bson:"username" db:"username"`
	Email        string `bson:"email" db:"email"`
	PasswordHash string `bson:"password_hash" db:"password_hash"`
}

// NewUser creates a new User instance with the given fields.
// Note: No validation is performed here.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// Public returns a copy of the user with the password hash stripped. Anything
// leaving the user service or entering a view context goes through this.
func (u *User) Public() *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// SessionUser is the user-shaped value stored in a session: the authenticated
// identity only, never the password hash.
type SessionUser struct {
	Username string
	Email    string
}

// SessionUserFrom builds the session identity for a user.
func SessionUserFrom(u *User) SessionUser {
	return SessionUser{
		Username: u.Username,
		Email:    u.Email,
	}
}
