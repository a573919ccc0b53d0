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

// TaskRepository persists all users' task lists in one "tasks" document.
// Every mutation deserialises the full map, swaps one user's list and writes
// the full map back. With a concurrent writer the whole map is
// last-write-wins; a single synchronous writer is the supported mode.
type TaskRepository struct {
	store ports.KVStore
	log   zerolog.Logger
}

func NewTaskRepository(store ports.KVStore, log zerolog.Logger) *TaskRepository {
	return &TaskRepository{store: store, log: log}
}

// readAll loads the user-to-tasks map, recovering corrupt or missing data as
// an empty map (logged, never propagated).
func (r *TaskRepository) readAll(ctx context.Context) map[string][]domain.Task {
	raw, err := r.store.Get(ctx, tasksKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			r.log.Warn().Err(err).Str("key", tasksKey).Msg("storage read failed, treating as empty")
			metrics.StorageReadErrorsTotal.WithLabelValues(tasksKey).Inc()
		}
		return make(map[string][]domain.Task)
	}

	all := make(map[string][]domain.Task)
	if err := json.Unmarshal(raw, &all); err != nil {
		r.log.Warn().Err(err).Str("key", tasksKey).Msg("corrupt task data, treating as empty")
		metrics.StorageReadErrorsTotal.WithLabelValues(tasksKey).Inc()
		return make(map[string][]domain.Task)
	}
	return all
}

func (r *TaskRepository) ListTasks(ctx context.Context, userID string) []domain.Task {
	return r.readAll(ctx)[userID]
}

func (r *TaskRepository) SaveTasks(ctx context.Context, userID string, tasks []domain.Task) error {
	all := r.readAll(ctx)
	if tasks == nil {
		tasks = []domain.Task{}
	}
	all[userID] = tasks

	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := r.store.Set(ctx, tasksKey, raw); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}
