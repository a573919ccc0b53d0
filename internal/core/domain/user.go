package domain

import (
	"errors"
	"time"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// User is a registered account. The opaque ID is assigned at creation and is
// the identifier used everywhere else: task scoping, session subject, token
// claims. Username and Email are unique (case-sensitive exact match) but the
// ID is the only key other components depend on.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicView strips the password hash for anything that leaves the core.
func (u *User) PublicView() User {
	v := *u
	v.PasswordHash = ""
	return v
}

// Session is the single "currently logged in" slot. At most one exists; it is
// written on login (last write wins), removed on logout, and survives process
// restarts otherwise.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
