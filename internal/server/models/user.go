package models

import "time"

// User is a stored account record. PasswordHash is a bcrypt hash; the
// plaintext is never persisted or logged. Username uniqueness is enforced
// both by the service layer and by a unique index in the database.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Account roles. The seed accounts carry one each; self-registered users
// default to RoleUser.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)
