package ports

import (
	"context"

	"github.com/tasklite/task-tracker/internal/core/domain"
)

// AccountService implements signup, login and session lifecycle.
type AccountService interface {
	// Register creates a new account. The returned user never carries the
	// password hash. Inputs are expected to be trimmed and format-validated by
	// the transport layer; Register only enforces uniqueness.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials, writes the session slot and returns a signed
	// token alongside the user's public view.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout clears the session slot. Idempotent.
	Logout(ctx context.Context) error
	// CurrentSession returns the active session or domain.ErrNoSession.
	CurrentSession(ctx context.Context) (*domain.Session, error)
}
