package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riddhimajain08/productivity-api/domain"
	"github.com/riddhimajain08/productivity-api/repository"
)

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, userID string, input repository.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, userID, taskID string, patch repository.TaskPatch) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

// The filter's owner always comes from the authenticated principal, no matter
// what the caller put into it.
func TestListTasksForcesOwnerScope(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.TaskFilter) bool {
		return f.UserID == "alice" && f.Status == "Pending"
	})).Return([]domain.Task{}, nil)

	uc := New(mockRepo, nil)
	tasks, err := uc.ListTasks(context.Background(), "alice", repository.TaskFilter{
		UserID: "mallory",
		Status: "Pending",
	})

	require.NoError(t, err)
	assert.Empty(t, tasks)
	mockRepo.AssertExpectations(t)
}

func TestCreateTaskDelegates(t *testing.T) {
	title := "Write report"
	created := &domain.Task{ID: "t1", UserID: "alice", Title: title, Status: domain.StatusPending}

	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("repository.TaskInput")).Return(created, nil)

	uc := New(mockRepo, nil)
	task, err := uc.CreateTask(context.Background(), "alice", repository.TaskInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, created, task)
	mockRepo.AssertExpectations(t)
}

func TestUpdateTaskPropagatesNotFound(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Update", mock.Anything, "alice", "missing", mock.AnythingOfType("repository.TaskPatch")).
		Return(nil, domain.ErrTaskNotFound)

	uc := New(mockRepo, nil)
	task, err := uc.UpdateTask(context.Background(), "alice", "missing", repository.TaskPatch{})

	assert.Nil(t, task)
	assert.Equal(t, domain.ErrTaskNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteTaskPropagatesNotFound(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Delete", mock.Anything, "alice", "missing").Return(domain.ErrTaskNotFound)

	uc := New(mockRepo, nil)
	err := uc.DeleteTask(context.Background(), "alice", "missing")

	assert.Equal(t, domain.ErrTaskNotFound, err)
	mockRepo.AssertExpectations(t)
}
