package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riddhimajain08/productivity-api/domain"
	"github.com/riddhimajain08/productivity-api/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty result is a JSON array, never null.
	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, userID string, input repository.TaskInput) (*domain.Task, error) {
	// Status and timestamps are left to the column defaults. Nil inputs pass
	// through as NULL; the NOT NULL constraint on title is the only guard.
	const query = `
	INSERT INTO tasks (task_id, user_id, title, description, priority, deadline)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING task_id, user_id, title, description, priority, status, deadline, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		uuid.NewString(),
		userID,
		input.Title,
		input.Description,
		input.Priority,
		input.Deadline,
	)
	return scanTask(row)
}

func (r *taskRepository) Update(ctx context.Context, userID, taskID string, patch repository.TaskPatch) (*domain.Task, error) {
	const query = `
	UPDATE tasks
	SET title = COALESCE($3, title),
		description = COALESCE($4, description),
		priority = COALESCE($5, priority),
		status = COALESCE($6, status),
		deadline = COALESCE($7, deadline),
		updated_at = NOW()
	WHERE task_id = $1 AND user_id = $2
	RETURNING task_id, user_id, title, description, priority, status, deadline, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		taskID,
		userID,
		patch.Title,
		patch.Description,
		patch.Priority,
		patch.Status,
		patch.Deadline,
	)
	return scanTask(row)
}

func (r *taskRepository) Delete(ctx context.Context, userID, taskID string) error {
	const query = `DELETE FROM tasks WHERE task_id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, taskID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// buildListQuery assembles the filtered listing from predicate templates with
// positionally bound values; filter values never appear in the query text.
// The owner predicate always comes first and cannot be disabled.
func buildListQuery(filter repository.TaskFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT task_id, user_id, title, description, priority, status, deadline, created_at, updated_at FROM tasks WHERE user_id = $1`)
	args := []interface{}{filter.UserID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		fmt.Fprintf(&sb, " AND priority = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	return sb.String(), args
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Status,
		&task.Deadline,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
