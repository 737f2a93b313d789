package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProjectService owns the project lifecycle and the project/task
// consistency rules around deletion.
type ProjectService struct {
	projectRepo project.ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo project.ProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create persists a new project and returns it with its generated ID
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*ProjectResult, error) {
	p, err := project.NewProject(input.Title, project.Status(input.Status), input.StartDate, input.Address.toDomain())
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := p.SetDescription(input.Description); err != nil {
			return nil, err
		}
	}
	p.SetEndDate(input.EndDate)

	if err := s.projectRepo.Save(ctx, p); err != nil {
		s.logger.Error("Failed to persist project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create project")
	}

	s.logger.Info("Project created", zap.String("project_id", p.ID.String()))

	return newProjectResult(p), nil
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]ProjectResult, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list projects")
	}

	results := make([]ProjectResult, len(projects))
	for i := range projects {
		results[i] = *newProjectResult(&projects[i])
	}
	return results, nil
}

// GetByID finds a project by ID. Absence is a normal outcome: a nil
// result with a nil error means no such project.
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResult, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to fetch project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch project")
	}
	return newProjectResult(p), nil
}

// Update performs a full-field replace of the project's mutable
// attributes. Fields omitted from the input are cleared, not kept.
// The task collection is never touched.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input ProjectInput) (*ProjectResult, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
		}
		s.logger.Error("Failed to fetch project for update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	if err := p.Replace(input.Title, input.Description, project.Status(input.Status), input.StartDate, input.EndDate, input.Address.toDomain()); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		s.logger.Error("Failed to persist project update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	s.logger.Info("Project updated", zap.String("project_id", p.ID.String()))

	return newProjectResult(p), nil
}

// Delete removes a project and, through the store's transaction, all
// of its tasks. Existence is probed first so a miss never reaches the
// cascading delete.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.projectRepo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to check project existence", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete project")
	}
	if !exists {
		return shared.NewDomainError("NOT_FOUND", "Project not found")
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Project not found")
		}
		s.logger.Error("Failed to delete project", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete project")
	}

	s.logger.Info("Project deleted", zap.String("project_id", id.String()))

	return nil
}

// Exists reports whether a project with the given ID exists. It backs
// the task service's parent checks.
func (s *ProjectService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.projectRepo.ExistsByID(ctx, id)
}
