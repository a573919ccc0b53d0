// Package localstore implements the account and task repositories over the
// key-value storage port. The key layout is the durable contract:
//
//	users   — JSON array of user records
//	session — JSON object for the single current session, absent when logged out
//	tasks   — JSON object mapping user ID to that user's task list
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tasklite/task-tracker/internal/api/metrics"
	"github.com/tasklite/task-tracker/internal/core/domain"
	"github.com/tasklite/task-tracker/internal/core/ports"
)

const (
	usersKey   = "users"
	sessionKey = "session"
	tasksKey   = "tasks"
)

// AccountRepository persists users and the session slot.
type AccountRepository struct {
	store ports.KVStore
	log   zerolog.Logger
}

func NewAccountRepository(store ports.KVStore, log zerolog.Logger) *AccountRepository {
	return &AccountRepository{store: store, log: log}
}

// readUsers loads the user list. Corrupt or unreadable data is recovered as
// an empty list; the failure is logged and counted but never propagated.
func (r *AccountRepository) readUsers(ctx context.Context) []domain.User {
	raw, err := r.store.Get(ctx, usersKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			r.log.Warn().Err(err).Str("key", usersKey).Msg("storage read failed, treating as empty")
			metrics.StorageReadErrorsTotal.WithLabelValues(usersKey).Inc()
		}
		return nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		r.log.Warn().Err(err).Str("key", usersKey).Msg("corrupt user data, treating as empty")
		metrics.StorageReadErrorsTotal.WithLabelValues(usersKey).Inc()
		return nil
	}
	return users
}

func (r *AccountRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	users := r.readUsers(ctx)
	for _, u := range users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	users = append(users, *user)
	raw, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("marshal users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, raw); err != nil {
		return nil, fmt.Errorf("persist users: %w", err)
	}

	created := *user
	return &created, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.readUsers(ctx) {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.readUsers(ctx) {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *AccountRepository) SetSession(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.store.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetSession(ctx context.Context) (*domain.Session, error) {
	raw, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			r.log.Warn().Err(err).Str("key", sessionKey).Msg("storage read failed, treating as logged out")
			metrics.StorageReadErrorsTotal.WithLabelValues(sessionKey).Inc()
		}
		return nil, domain.ErrNoSession
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		r.log.Warn().Err(err).Str("key", sessionKey).Msg("corrupt session data, treating as logged out")
		metrics.StorageReadErrorsTotal.WithLabelValues(sessionKey).Inc()
		return nil, domain.ErrNoSession
	}
	return &session, nil
}

func (r *AccountRepository) ClearSession(ctx context.Context) error {
	return r.store.Delete(ctx, sessionKey)
}
