package dto

import (
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// ProjectDTO represents a project in API responses, with the creator's
// username joined in at read time.
type ProjectDTO struct {
	ID              uint64               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Status          models.ProjectStatus `json:"status"`
	CreatedBy       uint64               `json:"created_by"`
	CreatorUsername string               `json:"creator_username,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	// Include creator username if preloaded
	if project.Creator.ID != 0 {
		dto.CreatorUsername = project.Creator.Username
	}

	return dto
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// ProjectPayload is the partial-update payload for projects. Absent fields
// stay untouched.
type ProjectPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Empty reports whether no recognized field is present.
func (p *ProjectPayload) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil
}
