package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TaskService owns the task lifecycle. Every operation is scoped to a
// parent project: a task ID alone never resolves.
type TaskService struct {
	taskRepo       project.TaskRepository
	projectService *ProjectService
	logger         *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo project.TaskRepository, projectService *ProjectService, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo:       taskRepo,
		projectService: projectService,
		logger:         logger,
	}
}

// Create persists a new task under an existing project
func (s *TaskService) Create(ctx context.Context, projectID uuid.UUID, input TaskInput) (*TaskResult, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	t, err := project.NewTask(projectID, input.Title, input.DueDate, project.TaskPriority(input.Priority), project.TaskStatus(input.Status))
	if err != nil {
		return nil, err
	}
	if err := t.SetDescription(input.Description); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, t); err != nil {
		s.logger.Error("Failed to persist task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create task")
	}

	s.logger.Info("Task created",
		zap.String("task_id", t.ID.String()),
		zap.String("project_id", projectID.String()))

	return newTaskResult(t), nil
}

// ListByProject returns all tasks owned by a project. The parent is
// checked explicitly so an empty project and a missing project stay
// distinguishable.
func (s *TaskService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]TaskResult, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		s.logger.Error("Failed to list tasks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list tasks")
	}

	results := make([]TaskResult, len(tasks))
	for i := range tasks {
		results[i] = *newTaskResult(&tasks[i])
	}
	return results, nil
}

// GetByID finds a task scoped to its owning project. A task living
// under a different project resolves as absent, never as a
// cross-project hit. Absence is a normal outcome: nil result, nil
// error.
func (s *TaskService) GetByID(ctx context.Context, projectID, taskID uuid.UUID) (*TaskResult, error) {
	t, err := s.taskRepo.FindByIDAndProjectID(ctx, taskID, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to fetch task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch task")
	}
	return newTaskResult(t), nil
}

// Update performs a full-field replace of the task's mutable
// attributes. The owning-project binding is immutable here.
func (s *TaskService) Update(ctx context.Context, projectID, taskID uuid.UUID, input TaskInput) (*TaskResult, error) {
	t, err := s.findScoped(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if err := t.Replace(input.Title, input.Description, input.DueDate, project.TaskPriority(input.Priority), project.TaskStatus(input.Status)); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		s.logger.Error("Failed to persist task update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update task")
	}

	s.logger.Info("Task updated",
		zap.String("task_id", t.ID.String()),
		zap.String("project_id", projectID.String()))

	return newTaskResult(t), nil
}

// Delete removes exactly one task, under the same scoping rule as Update
func (s *TaskService) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	t, err := s.findScoped(ctx, projectID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, t.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Task not found")
		}
		s.logger.Error("Failed to delete task", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete task")
	}

	s.logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("project_id", projectID.String()))

	return nil
}

func (s *TaskService) requireProject(ctx context.Context, projectID uuid.UUID) error {
	exists, err := s.projectService.Exists(ctx, projectID)
	if err != nil {
		s.logger.Error("Failed to check project existence", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve project")
	}
	if !exists {
		return shared.NewDomainError("NOT_FOUND", "Project not found")
	}
	return nil
}

func (s *TaskService) findScoped(ctx context.Context, projectID, taskID uuid.UUID) (*project.Task, error) {
	t, err := s.taskRepo.FindByIDAndProjectID(ctx, taskID, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Task not found")
		}
		s.logger.Error("Failed to fetch task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch task")
	}
	return t, nil
}
