package task

import (
	"errors"
	"fmt"

	domain "github.com/Rifat12/task-api/domain/task"
	"gorm.io/gorm"
)

// ListFilter holds the optional equality filters and sort field for
// listing tasks. Empty fields are ignored.
type ListFilter struct {
	Status   string
	Priority string
	SortBy   string
}

// sortClauses is the allow-list of ORDER BY clauses. Only column names
// from this map ever reach SQL text; filter values are always bound
// parameters.
var sortClauses = map[string]string{
	"createdAt": "createdAt DESC",
	"title":     "title ASC",
	"priority":  "priority ASC",
	"status":    "status ASC",
}

// defaultOrder keeps unsorted listings deterministic: SQLite rowid is
// insertion order for this table.
const defaultOrder = "rowid ASC"

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task row.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its id.
func (r *Repository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindAll retrieves tasks matching the filter. Status and priority are
// AND'd when both present. An empty result is not an error.
func (r *Repository) FindAll(filter ListFilter) ([]*domain.Task, error) {
	query := r.db.Model(&domain.Task{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	order := defaultOrder
	if clause, ok := sortClauses[filter.SortBy]; ok {
		order = clause
	}
	query = query.Order(order)

	var tasks []*domain.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus sets the status of exactly one row and returns the row
// re-fetched after the write. The update and the fetch are two round
// trips; a concurrent delete of the same id between them surfaces as
// ErrTaskNotFound.
func (r *Repository) UpdateStatus(id string, status domain.Status) (*domain.Task, error) {
	result := r.db.Model(&domain.Task{}).Where("id = ?", id).Update("status", status)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}
	return r.FindByID(id)
}

// Delete removes a task row and returns the record as it existed
// immediately before deletion. The fetch and the delete are two round
// trips; losing the race to a concurrent delete surfaces as
// ErrTaskNotFound.
func (r *Repository) Delete(id string) (*domain.Task, error) {
	task, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
