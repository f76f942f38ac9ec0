package domain

import (
	"errors"
	"time"
)

// Registration conflicts. Surfaced both by the service pre-checks and by the
// unique-index violation path in the repository; the index is the authority.
var ErrUsernameTaken = errors.New("username already in use")
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials covers every login failure. Unknown email and wrong
// password must be indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken covers every token validation failure: malformed, expired,
// bad signature, missing subject, or subject no longer in the store.
var ErrInvalidToken = errors.New("invalid or expired token")

var ErrUserNotFound = errors.New("user not found")

// User models a registered account. The password hash never leaves the
// process: it is excluded from JSON serialization.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FullName     string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
