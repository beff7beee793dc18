package repository

import (
	"context"
	"time"

	"github.com/riddhimajain08/productivity-api/domain"
)

// TaskFilter narrows a task listing. UserID is mandatory; the remaining
// fields are optional and compose conjunctively.
type TaskFilter struct {
	UserID   string
	Status   string
	Priority string
	Search   string
}

// TaskInput carries the client-supplied columns of a new task. Nil fields
// reach the datastore as NULL so its own constraints decide what is required.
type TaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	Deadline    *time.Time
}

// TaskPatch is a partial update; nil fields keep their stored values.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	Deadline    *time.Time
}

type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, userID string, input TaskInput) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
