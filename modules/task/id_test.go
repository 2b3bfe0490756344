package task

import (
	"strconv"
	"strings"
	"testing"
	"time"

	domain "github.com/Rifat12/task-api/domain/task"
)

func TestNewTaskID_Format(t *testing.T) {
	id := NewTaskID()

	if !domain.ValidID(id) {
		t.Errorf("generated id %q does not match the task id pattern", id)
	}

	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments in %q, got %d", id, len(parts))
	}

	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp segment %q is not numeric: %v", parts[1], err)
	}
	now := time.Now().UnixMilli()
	if ms > now || ms < now-time.Minute.Milliseconds() {
		t.Errorf("timestamp segment %d is not close to now (%d)", ms, now)
	}

	if len(parts[2]) != idSuffixLength {
		t.Errorf("expected %d-char random suffix, got %q", idSuffixLength, parts[2])
	}
}

func TestNewTaskID_Uniqueness(t *testing.T) {
	const n = 500

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := NewTaskID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		if !domain.ValidID(id) {
			t.Fatalf("id %q does not match the task id pattern", id)
		}
		seen[id] = true
	}
}

func TestNowISO_LexicalOrderIsChronological(t *testing.T) {
	earlier := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC).Format("2006-01-02T15:04:05.000Z")
	later := time.Date(2025, 3, 1, 10, 0, 1, 0, time.UTC).Format("2006-01-02T15:04:05.000Z")

	if !(earlier < later) {
		t.Errorf("expected %q < %q lexically", earlier, later)
	}

	stamp := nowISO()
	if _, err := time.Parse("2006-01-02T15:04:05.000Z", stamp); err != nil {
		t.Errorf("nowISO() = %q is not RFC3339 with milliseconds: %v", stamp, err)
	}
}
