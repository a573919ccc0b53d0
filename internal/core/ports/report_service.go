package ports

import (
	"context"
	"time"

	"github.com/tasklite/task-tracker/internal/core/domain"
)

// TaskStats are the dashboard counters. "Today" means the task's due date
// falls on the current calendar day, local time, time-of-day ignored.
type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	TodayTotal     int
	TodayCompleted int
	HighPriority   int
}

// DayBucket is one calendar day of the weekly report window.
type DayBucket struct {
	Day       string // weekday name, "Sun".."Sat"
	Date      string // yyyy-mm-dd
	Added     int
	Completed int
}

// PriorityCounts tallies in-window tasks by priority. Values outside the
// known enum are not counted anywhere.
type PriorityCounts struct {
	High   int
	Medium int
	Low    int
}

// TaskSummary is the lightweight view used in the recent-tasks list.
type TaskSummary struct {
	Title     string
	Completed bool
	Priority  domain.Priority
	CreatedAt time.Time
	Category  string
}

// WeeklyReport aggregates activity over the rolling 7-day window
// [WindowEnd-6d, WindowEnd], both endpoints date-only in local time.
//
// TotalPending is WindowEnd arithmetic, not a re-count: TotalAdded minus
// TotalCompleted. A task completed in-window but added outside it makes the
// value diverge from the true pending count; that is the documented contract.
type WeeklyReport struct {
	WindowStart    time.Time
	WindowEnd      time.Time
	TotalAdded     int
	TotalCompleted int
	TotalPending   int
	Daily          []DayBucket // chronological, WindowStart first
	Priorities     PriorityCounts
	Categories     map[string]int
	RecentTasks    []TaskSummary // newest first, at most 10
}

// ReportService derives read-only views from a user's task list.
type ReportService interface {
	Stats(ctx context.Context, userID string) (*TaskStats, error)
	Weekly(ctx context.Context, userID string) (*WeeklyReport, error)
}
