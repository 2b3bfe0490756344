package api

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rifat12/task-api/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Version is reported by the health and info endpoints.
const Version = "1.0.0"

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)
	app.Get("/", m.rootHandler)

	api := app.Group("/api")

	tasks := api.Group("/tasks")
	tasks.Get("/", m.listTasks)
	tasks.Post("/", m.createTask)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id/status", m.updateTaskStatus)
	tasks.Delete("/:id", m.deleteTask)
}

// healthHandler handles GET /health (liveness only).
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthEnvelope{
		Success:   true,
		Message:   "Task API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	})
}

// rootHandler handles GET / with a static info payload.
func (m *APIModule) rootHandler(c *fiber.Ctx) error {
	return c.JSON(InfoEnvelope{
		Success: true,
		Message: "Task API",
		Version: Version,
		Endpoints: map[string]string{
			"health":        "GET /health",
			"list tasks":    "GET /api/tasks",
			"get task":      "GET /api/tasks/:id",
			"create task":   "POST /api/tasks",
			"update status": "PUT /api/tasks/:id/status",
			"delete task":   "DELETE /api/tasks/:id",
		},
	})
}

// createTask handles POST /api/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var body CreateTaskBody
	if err := c.BodyParser(&body); err != nil {
		return malformedRequest(c)
	}

	req, details := validateCreateBody(&body)
	if details != nil {
		return validationFailed(c, details)
	}

	resp, err := m.tasks.CreateTask(c.Context(), &req)
	if err != nil {
		return m.storageFailure(c, "create task", err)
	}

	return c.Status(fiber.StatusCreated).JSON(TaskEnvelope{
		Success: true,
		Data:    *resp,
		Message: "Task created successfully",
	})
}

// listTasks handles GET /api/tasks.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	status := c.Query("status")
	priority := c.Query("priority")
	sortBy := c.Query("sortBy")

	if details := validateListQuery(status, priority, sortBy); details != nil {
		return validationFailed(c, details)
	}

	resp, err := m.tasks.ListTasks(c.Context(), &task.ListTasksRequest{
		Status:   status,
		Priority: priority,
		SortBy:   sortBy,
	})
	if err != nil {
		return m.storageFailure(c, "list tasks", err)
	}

	return c.JSON(ListEnvelope{
		Success: true,
		Data:    resp.Tasks,
		Message: "Tasks retrieved successfully",
		Count:   resp.Total,
	})
}

// getTask handles GET /api/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if details := validateTaskID(taskID); details != nil {
		return validationFailed(c, details)
	}

	resp, err := m.tasks.GetTask(c.Context(), taskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return taskNotFound(c, taskID)
		}
		return m.storageFailure(c, "get task", err)
	}

	return c.JSON(TaskEnvelope{
		Success: true,
		Data:    *resp,
		Message: "Task retrieved successfully",
	})
}

// updateTaskStatus handles PUT /api/tasks/:id/status.
func (m *APIModule) updateTaskStatus(c *fiber.Ctx) error {
	taskID := c.Params("id")
	details := validateTaskID(taskID)

	var body UpdateStatusBody
	if err := c.BodyParser(&body); err != nil {
		return malformedRequest(c)
	}

	completed, statusDetails := decodeStatus(body.Status)
	details = append(details, statusDetails...)
	if details != nil {
		return validationFailed(c, details)
	}

	resp, err := m.tasks.UpdateStatus(c.Context(), taskID, completed)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return taskNotFound(c, taskID)
		}
		return m.storageFailure(c, "update task status", err)
	}

	return c.JSON(TaskEnvelope{
		Success: true,
		Data:    *resp,
		Message: "Task status updated successfully",
	})
}

// deleteTask handles DELETE /api/tasks/:id. The envelope carries the
// record as it existed immediately before deletion.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if details := validateTaskID(taskID); details != nil {
		return validationFailed(c, details)
	}

	resp, err := m.tasks.DeleteTask(c.Context(), taskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return taskNotFound(c, taskID)
		}
		return m.storageFailure(c, "delete task", err)
	}

	return c.JSON(TaskEnvelope{
		Success: true,
		Data:    *resp,
		Message: "Task deleted successfully",
	})
}

// notFoundHandler is the fallback for unknown routes.
func (m *APIModule) notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorEnvelope{
		Success: false,
		Error:   kindNotFound,
		Message: "Route not found",
		Details: []string{fmt.Sprintf("%s %s is not a valid endpoint", c.Method(), c.Path())},
	})
}

// validationFailed writes the 400 envelope enumerating every violated rule.
func validationFailed(c *fiber.Ctx, details []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{
		Success: false,
		Error:   kindValidation,
		Message: "Validation failed",
		Details: details,
	})
}

// malformedRequest writes the 400 envelope for an unparseable body.
func malformedRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{
		Success: false,
		Error:   kindMalformedRequest,
		Message: "Request body must be valid JSON",
	})
}

// taskNotFound writes the 404 envelope for a missing task id.
func taskNotFound(c *fiber.Ctx, taskID string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorEnvelope{
		Success: false,
		Error:   kindNotFound,
		Message: "Task not found",
		Details: []string{fmt.Sprintf("no task exists with id %s", taskID)},
	})
}

// storageFailure logs the internal error and writes the redacted 500
// envelope.
func (m *APIModule) storageFailure(c *fiber.Ctx, operation string, err error) error {
	slog.Error("storage operation failed",
		"operation", operation,
		"request_id", c.Locals(RequestIDContextKey),
		"error", err)

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{
		Success: false,
		Error:   kindStorageFailure,
		Message: "An unexpected error occurred",
	})
}
