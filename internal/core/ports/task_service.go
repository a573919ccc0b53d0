package ports

import (
	"context"
	"time"

	"github.com/tasklite/task-tracker/internal/core/domain"
)

// AddTaskInput carries the fields for a new task. Title must be non-empty;
// that is the caller's contract (the transport layer validates it), the
// service does not re-check. Empty Priority defaults to medium, empty
// Category to "General".
type AddTaskInput struct {
	Title       string
	Description string
	Priority    string
	Category    string
	DueDate     *time.Time
}

// UpdateTaskInput is a shallow-merge patch: nil fields are left untouched.
// A set DueDate replaces the due date; ClearDueDate removes it.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Priority     *string
	Category     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// TaskService defines the task CRUD use cases.
type TaskService interface {
	List(ctx context.Context, userID string) ([]domain.Task, error)
	Add(ctx context.Context, userID string, input AddTaskInput) (*domain.Task, error)
	// Update merges the patch over the stored task, stamping UpdatedAt.
	// Returns domain.ErrTaskNotFound for an unknown id.
	Update(ctx context.Context, userID, taskID string, patch UpdateTaskInput) (*domain.Task, error)
	// Toggle flips completion, stamping UpdatedAt and setting CompletedAt on
	// the transition to completed (cleared on the way back).
	Toggle(ctx context.Context, userID, taskID string) (*domain.Task, error)
	// Delete removes the task permanently. Idempotent: unknown ids are a no-op.
	Delete(ctx context.Context, userID, taskID string) error
}
