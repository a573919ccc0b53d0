package handler

import (
	"time"

	"github.com/tasklite/task-tracker/internal/core/domain"
	"github.com/tasklite/task-tracker/internal/core/ports"
)

const dueDateLayout = "2006-01-02"

// --- Request → Service input ---

func toAddInput(req createTaskRequest) ports.AddTaskInput {
	return ports.AddTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     parseDueDate(req.DueDate),
	}
}

func toUpdateInput(req updateTaskRequest) ports.UpdateTaskInput {
	patch := ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			patch.DueDate = parseDueDate(*req.DueDate)
		}
	}
	return patch
}

// parseDueDate returns nil for empty or malformed input; the validator has
// already rejected malformed dates, so nil only means "no due date" here.
func parseDueDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dueDateLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// --- Service result → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		Category:       t.Category,
		DueDateDisplay: "No due date",
		Completed:      t.Completed,
		CreatedAt:      t.CreatedAt.UTC(),
		UpdatedAt:      t.UpdatedAt,
		CompletedAt:    t.CompletedAt,
	}
	if t.DueDate != nil {
		iso := t.DueDate.Format(dueDateLayout)
		resp.DueDate = &iso
		resp.DueDateDisplay = t.DueDate.Format("Jan 2, 2006")
	}
	return resp
}

func toListResponse(tasks []domain.Task) listTasksResponse {
	data := make([]taskResponse, len(tasks))
	for i := range tasks {
		data[i] = toTaskResponse(&tasks[i])
	}
	return listTasksResponse{Data: data, Count: len(data)}
}

func toStatsResponse(s *ports.TaskStats) taskStatsResponse {
	return taskStatsResponse{
		Total:          s.Total,
		Completed:      s.Completed,
		Pending:        s.Pending,
		TodayTotal:     s.TodayTotal,
		TodayCompleted: s.TodayCompleted,
		HighPriority:   s.HighPriority,
	}
}

func toWeeklyResponse(r *ports.WeeklyReport) weeklyReportResponse {
	daily := make([]dayBucketResponse, len(r.Daily))
	for i, b := range r.Daily {
		daily[i] = dayBucketResponse{Day: b.Day, Date: b.Date, Added: b.Added, Completed: b.Completed}
	}

	recent := make([]taskSummaryResponse, len(r.RecentTasks))
	for i, s := range r.RecentTasks {
		recent[i] = taskSummaryResponse{
			Title:     s.Title,
			Completed: s.Completed,
			Priority:  string(s.Priority),
			CreatedAt: s.CreatedAt.UTC(),
			Category:  s.Category,
		}
	}

	return weeklyReportResponse{
		StartDate:      r.WindowStart.Format(dueDateLayout),
		EndDate:        r.WindowEnd.Format(dueDateLayout),
		TotalAdded:     r.TotalAdded,
		TotalCompleted: r.TotalCompleted,
		TotalPending:   r.TotalPending,
		Daily:          daily,
		Priorities:     priorityCountsResponse{High: r.Priorities.High, Medium: r.Priorities.Medium, Low: r.Priorities.Low},
		Categories:     r.Categories,
		RecentTasks:    recent,
	}
}
