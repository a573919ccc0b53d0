package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
}

// updateTaskRequest is a shallow-merge patch: absent fields are untouched.
// An explicit empty due_date clears the due date.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
}

// --- Response types ---
// Owned by the transport layer, intentionally separate from domain/ports
// types so the JSON contract is not coupled to internal changes.

// taskResponse is the task view-model: the record plus derived display
// fields (formatted due date).
type taskResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Priority       string     `json:"priority"`
	Category       string     `json:"category"`
	DueDate        *string    `json:"due_date,omitempty"`
	DueDateDisplay string     `json:"due_date_display"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type listTasksResponse struct {
	Data  []taskResponse `json:"data"`
	Count int            `json:"count"`
}

type taskStatsResponse struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	TodayTotal     int `json:"today_total"`
	TodayCompleted int `json:"today_completed"`
	HighPriority   int `json:"high_priority"`
}

type dayBucketResponse struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	Added     int    `json:"added"`
	Completed int    `json:"completed"`
}

type priorityCountsResponse struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type taskSummaryResponse struct {
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	Category  string    `json:"category,omitempty"`
}

type weeklyReportResponse struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	TotalAdded     int                    `json:"total_added"`
	TotalCompleted int                    `json:"total_completed"`
	TotalPending   int                    `json:"total_pending"`
	Daily          []dayBucketResponse    `json:"daily"`
	Priorities     priorityCountsResponse `json:"priorities"`
	Categories     map[string]int         `json:"categories"`
	RecentTasks    []taskSummaryResponse  `json:"recent_tasks"`
}
