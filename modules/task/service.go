package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/Rifat12/task-api/domain/task"
	"github.com/Rifat12/task-api/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request. Storage assigns
// id, createdAt and the pending status; priority defaults to medium
// when the request leaves it empty.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
	}

	newTask := &domain.Task{
		ID:          NewTaskID(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      domain.StatusPending,
		CreatedAt:   nowISO(),
	}

	if err := m.repo.Create(newTask); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    newTask.ID,
			Title:     newTask.Title,
			Priority:  string(newTask.Priority),
			CreatedAt: time.Now(),
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			slog.Warn("failed to publish TaskCreated event", "task_id", newTask.ID, "error", err)
		}
	}

	return toTaskResponse(newTask), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.repo.FindAll(ListFilter{
		Status:   req.Status,
		Priority: req.Priority,
		SortBy:   req.SortBy,
	})
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// updateStatus handles the update-status service request. The response
// is the row fetched fresh after the write.
func (m *TaskModule) updateStatus(_ context.Context, req UpdateStatusRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.UpdateStatus(req.TaskID, domain.StatusFromBool(req.Completed))
	if err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskStatusChangedEvent{
			TaskID:    task.ID,
			Status:    string(task.Status),
			ChangedAt: time.Now(),
		}
		if err := events.TaskStatusChangedV1.Publish(m.eventBus, event, nil); err != nil {
			slog.Warn("failed to publish TaskStatusChanged event", "task_id", task.ID, "error", err)
		}
	}

	return toTaskResponse(task), nil
}

// deleteTask handles the delete-task service request. The response is
// the record as it existed immediately before deletion.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.Delete(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    task.ID,
			Status:    string(task.Status),
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			slog.Warn("failed to publish TaskDeleted event", "task_id", task.ID, "error", err)
		}
	}

	return toTaskResponse(task), nil
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
	}
}
