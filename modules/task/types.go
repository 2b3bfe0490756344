package task

import "context"

// CreateTaskRequest is the request for creating a task. Input is
// expected to be validated and sanitized at the boundary before the
// request is constructed.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// GetTaskRequest is the request for fetching a task by id.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// ListTasksRequest is the request for listing tasks with optional
// equality filters and sort field.
type ListTasksRequest struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	SortBy   string `json:"sort_by,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateStatusRequest is the request for updating a task's status.
// Completed carries the already-decoded boolean form of the status.
type UpdateStatusRequest struct {
	TaskID    string `json:"task_id"`
	Completed bool   `json:"completed"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// TaskResponse is the full task record returned by every operation.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract that driving adapters (like the HTTP API) use to
// interact with the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*TaskResponse, error)
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error)
	UpdateStatus(ctx context.Context, taskID string, completed bool) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) (*TaskResponse, error)
}
