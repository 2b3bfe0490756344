package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Rifat12/task-api/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// ActivityEntry is one recorded task lifecycle event.
type ActivityEntry struct {
	TaskID    string    `json:"task_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule records task lifecycle activity as a driven
// adapter. It subscribes to domain events via the EventConsumerModule
// interface; the log is in-memory and advisory only.
type NotificationModule struct {
	activity []ActivityEntry
	mu       sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		activity: make([]ActivityEntry, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskStatusChangedV1, m.handleTaskStatusChanged, m); err != nil {
		return fmt.Errorf("failed to register TaskStatusChanged consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCreated, TaskStatusChanged, TaskDeleted")
	return nil
}

func (m *NotificationModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task created: %s - %s", event.TaskID, event.Title)
	m.record(event.TaskID, "task_created", fmt.Sprintf("New %s-priority task '%s' created", event.Priority, event.Title))
	return nil
}

func (m *NotificationModule) handleTaskStatusChanged(_ context.Context, event events.TaskStatusChangedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task %s is now %s", event.TaskID, event.Status)
	m.record(event.TaskID, "task_status_changed", fmt.Sprintf("Task %s marked %s", event.TaskID, event.Status))
	return nil
}

func (m *NotificationModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task deleted: %s", event.TaskID)
	m.record(event.TaskID, "task_deleted", fmt.Sprintf("Task %s deleted (was %s)", event.TaskID, event.Status))
	return nil
}

func (m *NotificationModule) record(taskID, entryType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activity = append(m.activity, ActivityEntry{
		TaskID:    taskID,
		Type:      entryType,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// Activity returns a copy of the recorded entries.
func (m *NotificationModule) Activity() []ActivityEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]ActivityEntry, len(m.activity))
	copy(result, m.activity)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
