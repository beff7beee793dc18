package repository

import "context"

// StatsRepository exposes the scalar counts behind the dashboard. Each call
// is one independent read scoped to a single owner.
type StatsRepository interface {
	CountTasks(ctx context.Context, userID string) (int, error)
	CountTasksByStatus(ctx context.Context, userID, status string) (int, error)
	CountTasksByPriority(ctx context.Context, userID, priority string) (int, error)
	CountOverdueTasks(ctx context.Context, userID string) (int, error)
}
