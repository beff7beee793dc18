package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/riddhimajain08/productivity-api/domain"
	appLogger "github.com/riddhimajain08/productivity-api/pkg/logger"
	"github.com/riddhimajain08/productivity-api/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// ListTasks returns the principal's tasks narrowed by the optional filters.
// The owner scope wins over whatever the caller put into the filter.
func (uc *UseCase) ListTasks(ctx context.Context, principal string, filter repository.TaskFilter) ([]domain.Task, error) {
	filter.UserID = principal
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) CreateTask(ctx context.Context, principal string, input repository.TaskInput) (*domain.Task, error) {
	return uc.tasks.Create(ctx, principal, input)
}

func (uc *UseCase) UpdateTask(ctx context.Context, principal, taskID string, patch repository.TaskPatch) (*domain.Task, error) {
	return uc.tasks.Update(ctx, principal, taskID, patch)
}

func (uc *UseCase) DeleteTask(ctx context.Context, principal, taskID string) error {
	if err := uc.tasks.Delete(ctx, principal, taskID); err != nil {
		return err
	}
	appLogger.WithRequestID(ctx, uc.logger).Info("task deleted", zap.String("task_id", taskID))
	return nil
}
