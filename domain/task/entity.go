package task

import "regexp"

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status represents the completion state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is the core domain entity representing a todo item.
// Column names mirror the persisted schema exactly, including the
// camelCase createdAt column.
type Task struct {
	ID          string   `gorm:"column:id;primaryKey" json:"id"`
	Title       string   `gorm:"column:title;not null" json:"title"`
	Description string   `gorm:"column:description;not null;default:''" json:"description"`
	Priority    Priority `gorm:"column:priority;type:text;not null;default:'medium';check:priority IN ('low','medium','high')" json:"priority"`
	Status      Status   `gorm:"column:status;type:text;not null;default:'pending';check:status IN ('pending','completed')" json:"status"`
	CreatedAt   string   `gorm:"column:createdAt;not null" json:"createdAt"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// idPattern matches generated task ids: task_<unix-ms>_<random base36>.
var idPattern = regexp.MustCompile(`^task_\d+_[a-z0-9]+$`)

// ValidID reports whether id matches the generated task id format.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ValidPriority reports whether s is one of the priority enum values.
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the status enum values.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

// StatusFromBool maps the boolean status-update input to the enum.
func StatusFromBool(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}
