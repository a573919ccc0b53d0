package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tasklite/task-tracker/internal/api/metrics"
	"github.com/tasklite/task-tracker/internal/core/domain"
	"github.com/tasklite/task-tracker/internal/core/ports"
)

// TaskService implements task CRUD over the repository. Every mutation is a
// synchronous read-modify-write of the user's whole list.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log, now: time.Now}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.repo.ListTasks(ctx, userID), nil
}

// Add appends a new task. Title non-emptiness is the caller's contract; the
// store persists what it is given.
func (s *TaskService) Add(ctx context.Context, userID string, input ports.AddTaskInput) (*domain.Task, error) {
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    domain.Priority(input.Priority),
		Category:    input.Category,
		DueDate:     input.DueDate,
		Completed:   false,
		CreatedAt:   s.now().UTC(),
	}
	if !task.Priority.Valid() {
		task.Priority = domain.PriorityMedium
	}
	if task.Category == "" {
		task.Category = domain.DefaultCategory
	}

	tasks := append(s.repo.ListTasks(ctx, userID), task)
	if err := s.repo.SaveTasks(ctx, userID, tasks); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to persist new task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	s.log.Info().Str("user_id", userID).Str("task_id", task.ID).Msg("task added")
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch ports.UpdateTaskInput) (*domain.Task, error) {
	tasks := s.repo.ListTasks(ctx, userID)
	i := indexOf(tasks, taskID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	task := &tasks[i]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil && domain.Priority(*patch.Priority).Valid() {
		task.Priority = domain.Priority(*patch.Priority)
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	} else if patch.ClearDueDate {
		task.DueDate = nil
	}
	stamp := s.now().UTC()
	task.UpdatedAt = &stamp

	if err := s.repo.SaveTasks(ctx, userID, tasks); err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("updated").Inc()
	updated := *task
	return &updated, nil
}

func (s *TaskService) Toggle(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	tasks := s.repo.ListTasks(ctx, userID)
	i := indexOf(tasks, taskID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	task := &tasks[i]
	task.Completed = !task.Completed
	stamp := s.now().UTC()
	task.UpdatedAt = &stamp
	if task.Completed {
		task.CompletedAt = &stamp
	} else {
		task.CompletedAt = nil
	}

	if err := s.repo.SaveTasks(ctx, userID, tasks); err != nil {
		return nil, err
	}

	if task.Completed {
		metrics.TasksCompletedTotal.Inc()
	}
	metrics.TaskMutationsTotal.WithLabelValues("toggled").Inc()
	toggled := *task
	return &toggled, nil
}

// Delete removes the task. Deleting an unknown id is a success, not an error.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	tasks := s.repo.ListTasks(ctx, userID)
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if err := s.repo.SaveTasks(ctx, userID, kept); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("deleted").Inc()
	return nil
}

func indexOf(tasks []domain.Task, taskID string) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
