package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTaskRepository implements project.TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Save persists a new task
func (r *GormTaskRepository) Save(ctx context.Context, t *project.Task) error {
	model := models.TaskModelFromDomain(t)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByProjectID returns all tasks owned by a project ordered by creation time
func (r *GormTaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]project.Task, error) {
	var rows []models.TaskModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	tasks := make([]project.Task, len(rows))
	for i := range rows {
		tasks[i] = *rows[i].ToDomain()
	}
	return tasks, nil
}

// FindByIDAndProjectID finds a task by ID scoped to its owning project
func (r *GormTaskRepository) FindByIDAndProjectID(ctx context.Context, id, projectID uuid.UUID) (*project.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists the full state of an existing task. The write is an
// explicit UPDATE scoped by id; a missing row surfaces as ErrNotFound
// and is never re-created.
func (r *GormTaskRepository) Update(ctx context.Context, t *project.Task) error {
	model := models.TaskModelFromDomain(t)
	result := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a single task
func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTaskRepository implements TaskRepository
var _ project.TaskRepository = (*GormTaskRepository)(nil)
