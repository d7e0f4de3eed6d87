package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// TaskDTO represents a task in API responses, with project and assignee
// display fields joined in at read time.
type TaskDTO struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	ProjectID    uint64              `json:"project_id"`
	ProjectName  string              `json:"project_name,omitempty"`
	AssignedTo   uint64              `json:"assigned_to"`
	AssigneeName string              `json:"assignee_name,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		ProjectID:   task.ProjectID,
		AssignedTo:  task.AssignedTo,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include display fields if preloaded
	if task.Project.ID != 0 {
		dto.ProjectName = task.Project.Name
	}
	if task.Assignee.ID != 0 {
		dto.AssigneeName = task.Assignee.Name
		if dto.AssigneeName == "" {
			dto.AssigneeName = task.Assignee.Username
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = ToTaskDTO(t)
	}
	return dtos
}

// Canonical task payload field names, as used in authorization change sets.
const (
	TaskFieldTitle       = "title"
	TaskFieldDescription = "description"
	TaskFieldStatus      = "status"
	TaskFieldPriority    = "priority"
	TaskFieldProject     = "project_id"
	TaskFieldAssignee    = "assigned_to"
)

// Recognized aliases for the project and assignee references. Clients have
// historically sent any of these interchangeably; they are mapped onto the
// canonical field before validation. First match wins.
var (
	taskProjectAliases  = []string{"project_id", "projectId"}
	taskAssigneeAliases = []string{"assigned_to", "assignee_id", "assigneeId", "user_id"}
)

// TaskPayload is the create/update payload for tasks. It normalizes field
// aliases during unmarshalling and records which canonical fields were
// present, so services can distinguish "absent" from "zero" and
// authorization can inspect the change set.
type TaskPayload struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	ProjectID   *uint64
	AssignedTo  *uint64

	fields []string
}

// Fields returns the canonical names of the fields present in the payload.
func (p *TaskPayload) Fields() []string {
	return p.fields
}

// Empty reports whether no recognized field is present.
func (p *TaskPayload) Empty() bool {
	return len(p.fields) == 0
}

func (p *TaskPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = TaskPayload{}

	var err error
	if p.Title, err = stringField(raw, TaskFieldTitle); err != nil {
		return err
	} else if p.Title != nil {
		p.fields = append(p.fields, TaskFieldTitle)
	}
	if p.Description, err = stringField(raw, TaskFieldDescription); err != nil {
		return err
	} else if p.Description != nil {
		p.fields = append(p.fields, TaskFieldDescription)
	}
	if p.Status, err = stringField(raw, TaskFieldStatus); err != nil {
		return err
	} else if p.Status != nil {
		p.fields = append(p.fields, TaskFieldStatus)
	}
	if p.Priority, err = stringField(raw, TaskFieldPriority); err != nil {
		return err
	} else if p.Priority != nil {
		p.fields = append(p.fields, TaskFieldPriority)
	}

	if p.ProjectID, err = idField(raw, taskProjectAliases); err != nil {
		return fmt.Errorf("%s: %w", TaskFieldProject, err)
	} else if p.ProjectID != nil {
		p.fields = append(p.fields, TaskFieldProject)
	}
	if p.AssignedTo, err = idField(raw, taskAssigneeAliases); err != nil {
		return fmt.Errorf("%s: %w", TaskFieldAssignee, err)
	} else if p.AssignedTo != nil {
		p.fields = append(p.fields, TaskFieldAssignee)
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func stringField(raw map[string]json.RawMessage, key string) (*string, error) {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, fmt.Errorf("%s must be a string", key)
	}
	return &s, nil
}

func idField(raw map[string]json.RawMessage, aliases []string) (*uint64, error) {
	for _, alias := range aliases {
		v, ok := raw[alias]
		if !ok || isNull(v) {
			continue
		}
		id, err := decodeID(v)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	return nil, nil
}

// decodeID accepts a JSON number or a numeric string.
func decodeID(raw json.RawMessage) (uint64, error) {
	var n uint64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", s)
		}
		return id, nil
	}
	return 0, fmt.Errorf("expected a numeric id")
}
