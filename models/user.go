package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the UUIDv7 identifier generated by the server on registration.
	ID string `json:"_id"`

	// FullName is the optional display name of the user.
	FullName string `json:"fullname"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Username is unique across all users and is used to log in.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	Password string `json:"-"`

	// CreatedOn is the timestamp when the user account was created.
	CreatedOn time.Time `json:"createdOn"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
