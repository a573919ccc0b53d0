package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasklite/task-tracker/internal/api/metrics"
	"github.com/tasklite/task-tracker/internal/core/domain"
	"github.com/tasklite/task-tracker/internal/core/ports"
)

const recentTasksLimit = 10

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ReportService derives statistics and the weekly activity report from a
// user's task list. All computation is pure over an in-memory snapshot; the
// service never writes.
type ReportService struct {
	tasks ports.TaskRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewReportService(tasks ports.TaskRepository, log zerolog.Logger) *ReportService {
	return &ReportService{tasks: tasks, log: log, now: time.Now}
}

func (s *ReportService) Stats(ctx context.Context, userID string) (*ports.TaskStats, error) {
	timer := metrics.ReportDuration.WithLabelValues("stats")
	start := time.Now()
	stats := computeStats(s.tasks.ListTasks(ctx, userID), s.now())
	timer.Observe(time.Since(start).Seconds())
	return &stats, nil
}

func (s *ReportService) Weekly(ctx context.Context, userID string) (*ports.WeeklyReport, error) {
	timer := metrics.ReportDuration.WithLabelValues("weekly")
	start := time.Now()
	report := computeWeeklyReport(s.tasks.ListTasks(ctx, userID), s.now())
	timer.Observe(time.Since(start).Seconds())
	s.log.Debug().Str("user_id", userID).Int("total_added", report.TotalAdded).Msg("weekly report computed")
	return &report, nil
}

// computeStats tallies the dashboard counters at the instant now.
func computeStats(tasks []domain.Task, now time.Time) ports.TaskStats {
	var stats ports.TaskStats
	stats.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		if t.Priority == domain.PriorityHigh {
			stats.HighPriority++
		}
		if t.DueDate != nil && sameDay(*t.DueDate, now) {
			stats.TodayTotal++
			if t.Completed {
				stats.TodayCompleted++
			}
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// computeWeeklyReport aggregates activity over [now-6d, now], date-only in
// local time. A task is dated by CreatedAt, falling back to DueDate, falling
// back to now itself (which puts it in the window by construction). Added is
// credited to the task's day bucket; Completed to the completion day's bucket,
// with a completion date of "now" when CompletedAt was never stamped.
func computeWeeklyReport(tasks []domain.Task, now time.Time) ports.WeeklyReport {
	windowEnd := truncateDay(now)
	windowStart := windowEnd.AddDate(0, 0, -6)

	report := ports.WeeklyReport{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Daily:       make([]ports.DayBucket, 7),
		Categories:  make(map[string]int),
	}

	bucketIdx := make(map[string]int, 7)
	for i := range report.Daily {
		day := windowStart.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		report.Daily[i] = ports.DayBucket{Day: dayNames[day.Weekday()], Date: date}
		bucketIdx[date] = i
	}

	var recent []ports.TaskSummary
	for _, t := range tasks {
		taskDate := now
		switch {
		case !t.CreatedAt.IsZero():
			taskDate = t.CreatedAt
		case t.DueDate != nil:
			taskDate = *t.DueDate
		}

		i, inWindow := bucketIdx[truncateDay(taskDate).Format("2006-01-02")]
		if !inWindow {
			continue
		}

		report.Daily[i].Added++
		report.TotalAdded++

		if t.Completed {
			completedAt := now
			if t.CompletedAt != nil {
				completedAt = *t.CompletedAt
			}
			if j, ok := bucketIdx[truncateDay(completedAt).Format("2006-01-02")]; ok {
				report.Daily[j].Completed++
				report.TotalCompleted++
			}
		}

		switch t.Priority {
		case domain.PriorityHigh:
			report.Priorities.High++
		case domain.PriorityMedium:
			report.Priorities.Medium++
		case domain.PriorityLow:
			report.Priorities.Low++
		}

		category := t.Category
		if category == "" {
			category = "Uncategorized"
		}
		report.Categories[category]++

		priority := t.Priority
		if priority == "" {
			priority = domain.PriorityMedium
		}
		recent = append(recent, ports.TaskSummary{
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  priority,
			CreatedAt: t.CreatedAt,
			Category:  t.Category,
		})
	}

	// Newest first; stable so equal timestamps keep insertion order.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentTasksLimit {
		recent = recent[:recentTasksLimit]
	}
	report.RecentTasks = recent

	// Derived, never cross-checked against an actual pending re-count.
	report.TotalPending = report.TotalAdded - report.TotalCompleted
	return report
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sameDay(a, b time.Time) bool {
	return truncateDay(a).Equal(truncateDay(b))
}
