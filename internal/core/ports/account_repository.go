package ports

import (
	"context"

	"github.com/tasklite/task-tracker/internal/core/domain"
)

// AccountRepository persists user records and the single session slot.
type AccountRepository interface {
	// CreateUser appends the user, failing with domain.ErrDuplicateUsername or
	// domain.ErrDuplicateEmail when either field is already taken.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetSession overwrites the session slot (last write wins).
	SetSession(ctx context.Context, session *domain.Session) error
	// GetSession returns the current session or domain.ErrNoSession.
	GetSession(ctx context.Context) (*domain.Session, error)
	ClearSession(ctx context.Context) error
}
