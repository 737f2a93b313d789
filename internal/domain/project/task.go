package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// TaskPriority represents how urgent a task is
type TaskPriority string

const (
	PriorityUrgent TaskPriority = "URGENT"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityLow    TaskPriority = "LOW"
)

// IsValid reports whether the priority is a known value
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TaskStatus represents the lifecycle status of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusCanceled   TaskStatus = "CANCELED"
	TaskStatusOnHold     TaskStatus = "ON_HOLD"
)

// IsValid reports whether the status is a known value
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone, TaskStatusCanceled, TaskStatusOnHold:
		return true
	}
	return false
}

// Task belongs to exactly one project. ProjectID is a plain foreign-key
// back-reference, set once at creation and immutable afterwards; lookups
// must always be scoped by (taskID, projectID).
type Task struct {
	shared.BaseEntity
	ProjectID   uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
}

// NewTask creates a new task bound to a project
func NewTask(projectID uuid.UUID, title string, dueDate time.Time, priority TaskPriority, status TaskStatus) (*Task, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID is required")
	}
	t := &Task{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
	}
	if err := t.apply(title, "", dueDate, priority, status); err != nil {
		return nil, err
	}
	return t, nil
}

// SetDescription sets the task description
func (t *Task) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	t.Description = description
	t.Touch()
	return nil
}

// Replace overwrites every mutable attribute with the given values.
// The owning project binding is not part of the replaceable set.
func (t *Task) Replace(title, description string, dueDate time.Time, priority TaskPriority, status TaskStatus) error {
	if err := t.apply(title, description, dueDate, priority, status); err != nil {
		return err
	}
	t.Touch()
	return nil
}

func (t *Task) apply(title, description string, dueDate time.Time, priority TaskPriority, status TaskStatus) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title is required")
	}
	if len(title) > 150 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 150 characters")
	}
	description = strings.TrimSpace(description)
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	if dueDate.IsZero() {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
	}
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_PRIORITY", "Unknown task priority")
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown task status")
	}

	t.Title = title
	t.Description = description
	t.DueDate = dueDate
	t.Priority = priority
	t.Status = status
	return nil
}
