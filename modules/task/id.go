package task

import (
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
)

const (
	idAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength = 9
)

// newIDSuffix generates the random base36 portion of a task id.
var newIDSuffix = mustIDGenerator()

func mustIDGenerator() func() string {
	gen, err := nanoid.CustomASCII(idAlphabet, idSuffixLength)
	if err != nil {
		panic(fmt.Sprintf("task id generator: %v", err))
	}
	return gen
}

// NewTaskID generates a unique task id of the form
// task_<unix-ms>_<9 random base36 chars>.
func NewTaskID() string {
	return fmt.Sprintf("task_%d_%s", time.Now().UnixMilli(), newIDSuffix())
}

// nowISO returns the creation timestamp in RFC3339 with millisecond
// precision, always UTC so lexical order matches chronological order.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
