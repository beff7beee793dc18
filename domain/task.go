package domain

import "time"

// Status and priority are free-form strings in the API; these are the values
// the dashboard aggregation keys on.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	PriorityHigh    = "High"
)

// Task represents a user-owned activity item. Description, priority and
// deadline are nullable columns, hence the pointer fields.
type Task struct {
	ID          string     `json:"task_id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// IsOverdue reports whether the deadline has passed without the task being
// completed. Tasks without a deadline are never overdue.
func (t *Task) IsOverdue(reference time.Time) bool {
	if t == nil || t.Deadline == nil || t.IsCompleted() {
		return false
	}
	return t.Deadline.Before(reference)
}
