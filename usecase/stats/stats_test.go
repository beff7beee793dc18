package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riddhimajain08/productivity-api/domain"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountTasks(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountTasksByStatus(ctx context.Context, userID, status string) (int, error) {
	args := m.Called(ctx, userID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountTasksByPriority(ctx context.Context, userID, priority string) (int, error) {
	args := m.Called(ctx, userID, priority)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountOverdueTasks(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func TestSummaryCombinesAllCounts(t *testing.T) {
	mockRepo := new(MockStatsRepository)
	mockRepo.On("CountTasks", mock.Anything, "alice").Return(7, nil)
	mockRepo.On("CountTasksByStatus", mock.Anything, "alice", domain.StatusCompleted).Return(2, nil)
	mockRepo.On("CountTasksByStatus", mock.Anything, "alice", domain.StatusPending).Return(5, nil)
	mockRepo.On("CountTasksByPriority", mock.Anything, "alice", domain.PriorityHigh).Return(3, nil)
	mockRepo.On("CountOverdueTasks", mock.Anything, "alice").Return(1, nil)

	uc := New(mockRepo, nil)
	summary, err := uc.Summary(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, &domain.TaskStats{
		TotalTasks:        7,
		CompletedTasks:    2,
		PendingTasks:      5,
		HighPriorityTasks: 3,
		OverdueTasks:      1,
	}, summary)

	// All five reads must have happened; the dashboard never serves a
	// partially computed payload.
	mockRepo.AssertExpectations(t)
}

func TestSummaryFailsWhenAnyCountFails(t *testing.T) {
	boom := errors.New("connection reset")

	mockRepo := new(MockStatsRepository)
	mockRepo.On("CountTasks", mock.Anything, "alice").Return(7, nil)
	mockRepo.On("CountTasksByStatus", mock.Anything, "alice", domain.StatusCompleted).Return(2, nil)
	mockRepo.On("CountTasksByStatus", mock.Anything, "alice", domain.StatusPending).Return(5, nil)
	mockRepo.On("CountTasksByPriority", mock.Anything, "alice", domain.PriorityHigh).Return(3, nil)
	mockRepo.On("CountOverdueTasks", mock.Anything, "alice").Return(0, boom)

	uc := New(mockRepo, nil)
	summary, err := uc.Summary(context.Background(), "alice")

	assert.Nil(t, summary)
	assert.Equal(t, boom, err)
}

func TestSummaryZeroCountsForNewUser(t *testing.T) {
	mockRepo := new(MockStatsRepository)
	mockRepo.On("CountTasks", mock.Anything, "fresh").Return(0, nil)
	mockRepo.On("CountTasksByStatus", mock.Anything, "fresh", domain.StatusCompleted).Return(0, nil)
	mockRepo.On("CountTasksByStatus", mock.Anything, "fresh", domain.StatusPending).Return(0, nil)
	mockRepo.On("CountTasksByPriority", mock.Anything, "fresh", domain.PriorityHigh).Return(0, nil)
	mockRepo.On("CountOverdueTasks", mock.Anything, "fresh").Return(0, nil)

	uc := New(mockRepo, nil)
	summary, err := uc.Summary(context.Background(), "fresh")

	require.NoError(t, err)
	assert.Equal(t, &domain.TaskStats{}, summary)
}
