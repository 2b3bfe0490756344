package api

import "github.com/Rifat12/task-api/modules/task"

// CreateTaskBody is the HTTP request body for creating a task.
// Optional fields are pointers so "absent" and "present but empty" can
// be told apart during validation.
type CreateTaskBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// UpdateStatusBody is the HTTP request body for a status update.
// Status is accepted as a JSON boolean or as the strings
// "pending"/"completed"; the union is decoded once during validation.
type UpdateStatusBody struct {
	Status any `json:"status"`
}

// TaskEnvelope is the success envelope wrapping a single task.
type TaskEnvelope struct {
	Success bool              `json:"success"`
	Data    task.TaskResponse `json:"data"`
	Message string            `json:"message"`
}

// ListEnvelope is the success envelope wrapping a task list.
type ListEnvelope struct {
	Success bool                `json:"success"`
	Data    []task.TaskResponse `json:"data"`
	Message string              `json:"message"`
	Count   int                 `json:"count"`
}

// ErrorEnvelope is the uniform error envelope for any 4xx/5xx response.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// HealthEnvelope is the response for the liveness endpoint.
type HealthEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// InfoEnvelope is the static payload served at the root path.
type InfoEnvelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Error kind labels used in the error envelope.
const (
	kindValidation       = "validation_error"
	kindMalformedRequest = "malformed_request"
	kindNotFound         = "not_found"
	kindStorageFailure   = "storage_failure"
	kindInternal         = "internal_error"
)
