package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the persistence contract for projects.
// Each call is atomic; multi-call sequences are not.
type ProjectRepository interface {
	// Save persists a new project
	Save(ctx context.Context, p *Project) error

	// FindByID finds a project by ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindAll returns all projects in store-defined order
	FindAll(ctx context.Context) ([]Project, error)

	// ExistsByID reports whether a project with the given ID exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Update persists changes to an existing project
	Update(ctx context.Context, p *Project) error

	// Delete removes the project and all of its tasks in a single
	// transaction, so no task can be orphaned
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the persistence contract for tasks
type TaskRepository interface {
	// Save persists a new task
	Save(ctx context.Context, t *Task) error

	// FindByProjectID returns all tasks owned by a project
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]Task, error)

	// FindByIDAndProjectID finds a task by ID scoped to its owning project,
	// returning shared.ErrNotFound when the pair does not match
	FindByIDAndProjectID(ctx context.Context, id, projectID uuid.UUID) (*Task, error)

	// Update persists changes to an existing task
	Update(ctx context.Context, t *Task) error

	// Delete removes a single task
	Delete(ctx context.Context, id uuid.UUID) error
}
