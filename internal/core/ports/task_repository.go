package ports

import (
	"context"

	"github.com/tasklite/task-tracker/internal/core/domain"
)

// TaskRepository persists per-user task lists inside the "tasks" document,
// a map from user ID to that user's ordered task list.
type TaskRepository interface {
	// ListTasks returns the user's tasks in insertion order. It never fails:
	// missing or unreadable data is recovered as an empty list (logged, not
	// propagated).
	ListTasks(ctx context.Context, userID string) []domain.Task

	// SaveTasks replaces the user's list. The implementation reads the whole
	// user-to-tasks map, swaps one entry and writes the whole map back; there
	// is no partial-write capability.
	SaveTasks(ctx context.Context, userID string, tasks []domain.Task) error
}
