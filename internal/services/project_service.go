package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taskflow-dev/taskflow-api/internal/authz"
	"github.com/taskflow-dev/taskflow-api/internal/constants"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectName   = fmt.Errorf("project name must be between %d and %d characters", constants.MinProjectNameLength, constants.MaxProjectNameLength)
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrNoProjectFields      = errors.New("no fields to update")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// Create creates a new project owned by the acting admin.
func (s *ProjectService) Create(actor authz.Actor, input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < constants.MinProjectNameLength || len(name) > constants.MaxProjectNameLength {
		return nil, ErrInvalidProjectName
	}

	project := &models.Project{
		Name:        name,
		Description: input.Description,
		Status:      models.ProjectStatusActive,
		CreatedBy:   actor.ID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.projectRepo.FindByID(project.ID)
}

// List returns all projects.
func (s *ProjectService) List() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Update applies a partial update to a project. A payload with no
// recognized field is a validation error, not a no-op.
func (s *ProjectService) Update(id uint64, payload dto.ProjectPayload) (*models.Project, error) {
	if payload.Empty() {
		return nil, ErrNoProjectFields
	}

	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if len(name) < constants.MinProjectNameLength || len(name) > constants.MaxProjectNameLength {
			return nil, ErrInvalidProjectName
		}
		project.Name = name
	}
	if payload.Description != nil {
		project.Description = *payload.Description
	}
	if payload.Status != nil {
		if !models.IsValidProjectStatus(*payload.Status) {
			return nil, ErrInvalidProjectStatus
		}
		project.Status = models.ProjectStatus(*payload.Status)
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.projectRepo.FindByID(project.ID)
}

// Delete removes a project together with all of its tasks.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
