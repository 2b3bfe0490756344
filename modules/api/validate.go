package api

import (
	"strings"
	"unicode/utf8"

	domain "github.com/Rifat12/task-api/domain/task"
	"github.com/Rifat12/task-api/modules/task"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// sanitizeText trims whitespace and strips angle brackets. A minimal
// XSS mitigation, not full HTML sanitization.
func sanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return s
}

// validateCreateBody checks and sanitizes a create request. Every
// violated rule is collected; the request struct is only built when
// details is empty, so illegal states never reach storage.
func validateCreateBody(body *CreateTaskBody) (task.CreateTaskRequest, []string) {
	var details []string

	title := sanitizeText(body.Title)
	if title == "" {
		details = append(details, "title is required and must be a non-empty string")
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		details = append(details, "title must be 200 characters or less")
	}

	description := ""
	if body.Description != nil {
		description = sanitizeText(*body.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			details = append(details, "description must be 1000 characters or less")
		}
	}

	priority := ""
	if body.Priority != nil {
		priority = *body.Priority
		if !domain.ValidPriority(priority) {
			details = append(details, "priority must be one of: low, medium, high")
		}
	}

	if len(details) > 0 {
		return task.CreateTaskRequest{}, details
	}
	return task.CreateTaskRequest{
		Title:       title,
		Description: description,
		Priority:    priority,
	}, nil
}

// validateTaskID checks the path id against the generated id format.
func validateTaskID(id string) []string {
	if !domain.ValidID(id) {
		return []string{"id must match the pattern task_<timestamp>_<random>"}
	}
	return nil
}

// decodeStatus decodes the boolean-or-string status union once at the
// boundary: true/"completed" mean completed, false/"pending" mean
// pending. Anything else is a validation failure.
func decodeStatus(value any) (bool, []string) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case string(domain.StatusCompleted):
			return true, nil
		case string(domain.StatusPending):
			return false, nil
		}
		return false, []string{"status must be a boolean or one of: pending, completed"}
	case nil:
		return false, []string{"status is required"}
	default:
		return false, []string{"status must be a boolean or one of: pending, completed"}
	}
}

// validateListQuery checks the optional list filters. All violations
// are reported together.
func validateListQuery(status, priority, sortBy string) []string {
	var details []string

	if status != "" && !domain.ValidStatus(status) {
		details = append(details, "status must be one of: pending, completed")
	}
	if priority != "" && !domain.ValidPriority(priority) {
		details = append(details, "priority must be one of: low, medium, high")
	}
	if sortBy != "" {
		switch sortBy {
		case "createdAt", "title", "priority", "status":
		default:
			details = append(details, "sortBy must be one of: createdAt, title, priority, status")
		}
	}

	return details
}
