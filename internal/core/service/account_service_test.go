package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tasklite/task-tracker/internal/core/domain"
)

const testJWTSecret = "test-secret"

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	users   []domain.User
	session *domain.Session
}

func (r *stubAccountRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.users = append(r.users, *user)
	return user, nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) SetSession(_ context.Context, session *domain.Session) error {
	r.session = session
	return nil
}

func (r *stubAccountRepo) GetSession(_ context.Context) (*domain.Session, error) {
	if r.session == nil {
		return nil, domain.ErrNoSession
	}
	return r.session, nil
}

func (r *stubAccountRepo) ClearSession(_ context.Context) error {
	if r.session == nil {
		return domain.ErrNoSession
	}
	r.session = nil
	return nil
}

func newAccountService(repo *stubAccountRepo) *AccountService {
	return NewAccountService(repo, testJWTSecret, time.Hour, discardLogger)
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAccountService_Register(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user must have a non-empty id")
	}
	if user.PasswordHash != "" {
		t.Error("returned user must not expose the password hash")
	}

	stored, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Error("stored password must be a hash, not the plaintext")
	}
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), "alice", "other@example.com", "pw123456")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), "bob", "alice@example.com", "pw123456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountService_Register_EmptyFields(t *testing.T) {
	svc := newAccountService(&stubAccountRepo{})

	if _, err := svc.Register(context.Background(), "", "a@b.c", "pw123456"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("blank username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("blank password: expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login / Logout
// ---------------------------------------------------------------------------

func TestAccountService_Login_SetsSessionAndSignsToken(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("login returned wrong user: %q vs %q", user.ID, registered.ID)
	}
	if repo.session == nil || repo.session.UserID != registered.ID {
		t.Fatalf("login must store the session, got %+v", repo.session)
	}

	// The token must be verifiable with the configured secret and carry the
	// user id as subject.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	sub, _ := parsed.Claims.GetSubject()
	if sub != registered.ID {
		t.Errorf("token subject: expected %q, got %q", registered.ID, sub)
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)
	_, _ = svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if repo.session != nil {
		t.Error("failed login must not create a session")
	}
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	svc := newAccountService(&stubAccountRepo{})

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAccountService_Login_ReplacesExistingSession(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)

	alice, _ := svc.Register(context.Background(), "alice", "alice@example.com", "pw123456")
	bob, _ := svc.Register(context.Background(), "bob", "bob@example.com", "pw123456")

	if _, _, err := svc.Login(context.Background(), "alice", "pw123456"); err != nil {
		t.Fatalf("alice login failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "bob", "pw123456"); err != nil {
		t.Fatalf("bob login failed: %v", err)
	}

	if repo.session.UserID != bob.ID {
		t.Errorf("last login wins: expected session for %q, got %q", bob.ID, repo.session.UserID)
	}
	if repo.session.UserID == alice.ID {
		t.Error("previous session must be replaced")
	}
}

func TestAccountService_Logout(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)
	_, _ = svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	_, _, _ = svc.Login(context.Background(), "alice", "s3cret")

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if repo.session != nil {
		t.Error("logout must clear the session")
	}

	// Logging out without a session is a no-op, not an error.
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second logout must succeed: %v", err)
	}
}

func TestAccountService_CurrentSession(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := newAccountService(repo)

	if _, err := svc.CurrentSession(context.Background()); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	_, _ = svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	_, _, _ = svc.Login(context.Background(), "alice", "s3cret")

	session, err := svc.CurrentSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Username != "alice" || session.Email != "alice@example.com" {
		t.Errorf("session fields wrong: %+v", session)
	}
}
