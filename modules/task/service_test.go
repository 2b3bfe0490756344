package task

import (
	"context"
	"testing"

	domain "github.com/Rifat12/task-api/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModule starts a TaskModule against an in-memory database.
// The event bus is left unset, so publishing is skipped.
func newTestModule(t *testing.T) *TaskModule {
	t.Helper()

	module := &TaskModule{dbPath: ":memory:"}
	require.NoError(t, module.Start(context.Background()))
	t.Cleanup(func() {
		_ = module.Stop(context.Background())
	})
	return module
}

func TestCreateTask_AssignsDefaults(t *testing.T) {
	module := newTestModule(t)

	resp, err := module.createTask(context.Background(), CreateTaskRequest{
		Title: "Buy milk",
	}, nil)
	require.NoError(t, err)

	assert.True(t, domain.ValidID(resp.ID))
	assert.Equal(t, "Buy milk", resp.Title)
	assert.Equal(t, "", resp.Description)
	assert.Equal(t, "medium", resp.Priority)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.CreatedAt)
}

func TestCreateTask_RoundTrip(t *testing.T) {
	module := newTestModule(t)

	created, err := module.createTask(context.Background(), CreateTaskRequest{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    "high",
	}, nil)
	require.NoError(t, err)

	fetched, err := module.getTask(context.Background(), GetTaskRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)

	assert.Equal(t, created, fetched)
}

func TestGetTask_NotFound(t *testing.T) {
	module := newTestModule(t)

	_, err := module.getTask(context.Background(), GetTaskRequest{
		TaskID: "task_1700000000000_abcdefghi",
	}, nil)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListTasks_FilterAndCount(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	_, err := module.createTask(ctx, CreateTaskRequest{Title: "low one", Priority: "low"}, nil)
	require.NoError(t, err)
	high, err := module.createTask(ctx, CreateTaskRequest{Title: "high one", Priority: "high"}, nil)
	require.NoError(t, err)

	resp, err := module.listTasks(ctx, ListTasksRequest{Priority: "high"}, nil)
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, high.ID, resp.Tasks[0].ID)
}

// The full lifecycle the service exposes: create pending, complete,
// delete returning the completed record, then fetch fails.
func TestTaskLifecycleScenario(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	created, err := module.createTask(ctx, CreateTaskRequest{Title: "Buy milk", Priority: "low"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "low", created.Priority)
	assert.Equal(t, "", created.Description)

	completed, err := module.updateStatus(ctx, UpdateStatusRequest{TaskID: created.ID, Completed: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	deleted, err := module.deleteTask(ctx, DeleteTaskRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, "completed", deleted.Status)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = module.getTask(ctx, GetTaskRequest{TaskID: created.ID}, nil)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMapServiceError(t *testing.T) {
	assert.ErrorIs(t, mapServiceError(ErrTaskNotFound), ErrTaskNotFound)
	assert.NoError(t, mapServiceError(nil))

	other := assert.AnError
	assert.Equal(t, other, mapServiceError(other))
}
