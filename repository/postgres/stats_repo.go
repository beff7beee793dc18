package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riddhimajain08/productivity-api/domain"
	"github.com/riddhimajain08/productivity-api/repository"
)

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository returns a Postgres-backed implementation of StatsRepository.
func NewStatsRepository(pool *pgxpool.Pool) repository.StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) CountTasks(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE user_id = $1`
	return r.count(ctx, query, userID)
}

func (r *statsRepository) CountTasksByStatus(ctx context.Context, userID, status string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = $2`
	return r.count(ctx, query, userID, status)
}

func (r *statsRepository) CountTasksByPriority(ctx context.Context, userID, priority string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND priority = $2`
	return r.count(ctx, query, userID, priority)
}

func (r *statsRepository) CountOverdueTasks(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND deadline < NOW() AND status <> $2`
	return r.count(ctx, query, userID, domain.StatusCompleted)
}

func (r *statsRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
