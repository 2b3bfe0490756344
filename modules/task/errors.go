package task

import "errors"

// ErrTaskNotFound is returned when no task row matches the requested id.
var ErrTaskNotFound = errors.New("task not found")
