package stats

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/riddhimajain08/productivity-api/domain"
	appLogger "github.com/riddhimajain08/productivity-api/pkg/logger"
	"github.com/riddhimajain08/productivity-api/repository"
)

type UseCase struct {
	stats  repository.StatsRepository
	logger *zap.Logger
}

func New(stats repository.StatsRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		stats:  stats,
		logger: logger,
	}
}

// Summary runs the five dashboard counts concurrently and joins the results.
// The first failure cancels the remaining reads and fails the aggregation as
// a whole; there is no partial result.
func (uc *UseCase) Summary(ctx context.Context, principal string) (*domain.TaskStats, error) {
	var out domain.TaskStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.TotalTasks, err = uc.stats.CountTasks(gctx, principal)
		return err
	})
	g.Go(func() error {
		var err error
		out.CompletedTasks, err = uc.stats.CountTasksByStatus(gctx, principal, domain.StatusCompleted)
		return err
	})
	g.Go(func() error {
		var err error
		out.PendingTasks, err = uc.stats.CountTasksByStatus(gctx, principal, domain.StatusPending)
		return err
	})
	g.Go(func() error {
		var err error
		out.HighPriorityTasks, err = uc.stats.CountTasksByPriority(gctx, principal, domain.PriorityHigh)
		return err
	})
	g.Go(func() error {
		var err error
		out.OverdueTasks, err = uc.stats.CountOverdueTasks(gctx, principal)
		return err
	})

	if err := g.Wait(); err != nil {
		appLogger.WithRequestID(ctx, uc.logger).Error("stats aggregation failed", zap.Error(err))
		return nil, err
	}
	return &out, nil
}
