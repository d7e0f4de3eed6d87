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
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAccessDenied     = errors.New("you do not have permission to view this task")
	ErrTaskMutationDenied   = errors.New("you do not have permission to update this task")
	ErrTaskStatusOnly       = errors.New("you may only update the task status")
	ErrInvalidTaskTitle     = fmt.Errorf("task title must be between %d and %d characters", constants.MinTaskTitleLength, constants.MaxTaskTitleLength)
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidTaskPriority  = errors.New("invalid task priority")
	ErrInvalidTaskProject   = errors.New("project does not exist")
	ErrInvalidTaskAssignee  = errors.New("assignee does not exist")
	ErrTaskProjectRequired  = errors.New("a project reference is required")
	ErrTaskAssigneeRequired = errors.New("an assignee is required")
	ErrNoTaskFields         = errors.New("no fields to update")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// List returns every task for admins and only assigned tasks for
// employees.
func (s *TaskService) List(actor authz.Actor) ([]models.Task, error) {
	if actor.IsAdmin() {
		tasks, err := s.taskRepo.FindAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, nil
	}
	return s.ListMine(actor)
}

// ListMine returns the tasks assigned to the actor.
func (s *TaskService) ListMine(actor authz.Actor) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByAssignee(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned tasks: %w", err)
	}
	return tasks, nil
}

// ListByProject returns the tasks of a project, narrowed to the actor's
// own tasks for employees.
func (s *TaskService) ListByProject(actor authz.Actor, projectID uint64) ([]models.Task, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	tasks, err := s.taskRepo.FindByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}

	if actor.IsAdmin() {
		return tasks, nil
	}

	visible := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.AssignedTo == actor.ID {
			visible = append(visible, task)
		}
	}
	return visible, nil
}

// Get retrieves a task, enforcing the read rule.
func (s *TaskService) Get(actor authz.Actor, id uint64) (*models.Task, error) {
	task, err := s.findTask(id)
	if err != nil {
		return nil, err
	}

	if !authz.CanAccessTask(actor.Role, actor.ID, task) {
		return nil, ErrTaskAccessDenied
	}

	return task, nil
}

// Create creates a new task after verifying the referenced project and
// assignee exist. Status defaults to pending, priority to medium.
func (s *TaskService) Create(payload dto.TaskPayload) (*models.Task, error) {
	if payload.Title == nil {
		return nil, ErrInvalidTaskTitle
	}
	title := strings.TrimSpace(*payload.Title)
	if len(title) < constants.MinTaskTitleLength || len(title) > constants.MaxTaskTitleLength {
		return nil, ErrInvalidTaskTitle
	}
	if payload.ProjectID == nil {
		return nil, ErrTaskProjectRequired
	}
	if payload.AssignedTo == nil {
		return nil, ErrTaskAssigneeRequired
	}

	task := &models.Task{
		Title:      title,
		ProjectID:  *payload.ProjectID,
		AssignedTo: *payload.AssignedTo,
		Status:     models.TaskStatusPending,
		Priority:   models.TaskPriorityMedium,
	}

	if payload.Description != nil {
		task.Description = *payload.Description
	}
	if payload.Status != nil {
		if !models.IsValidTaskStatus(*payload.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = models.TaskStatus(*payload.Status)
	}
	if payload.Priority != nil {
		if !models.IsValidTaskPriority(*payload.Priority) {
			return nil, ErrInvalidTaskPriority
		}
		task.Priority = models.TaskPriority(*payload.Priority)
	}

	if err := s.verifyReferences(task.ProjectID, task.AssignedTo); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID)
}

// Update applies a partial update to a task. Admins may change any field;
// an employee may change only the status of a task assigned to them, and
// the whole mutation is rejected if any other field is present. Status
// transitions are unrestricted within the enum.
func (s *TaskService) Update(actor authz.Actor, id uint64, payload dto.TaskPayload) (*models.Task, error) {
	task, err := s.findTask(id)
	if err != nil {
		return nil, err
	}

	if payload.Empty() {
		return nil, ErrNoTaskFields
	}

	if !actor.IsAdmin() {
		if !authz.CanAccessTask(actor.Role, actor.ID, task) {
			return nil, ErrTaskMutationDenied
		}
		if !authz.CanMutateTask(actor.Role, actor.ID, task, payload.Fields()) {
			return nil, ErrTaskStatusOnly
		}
	}

	if payload.Title != nil {
		title := strings.TrimSpace(*payload.Title)
		if len(title) < constants.MinTaskTitleLength || len(title) > constants.MaxTaskTitleLength {
			return nil, ErrInvalidTaskTitle
		}
		task.Title = title
	}
	if payload.Description != nil {
		task.Description = *payload.Description
	}
	if payload.Status != nil {
		if !models.IsValidTaskStatus(*payload.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = models.TaskStatus(*payload.Status)
	}
	if payload.Priority != nil {
		if !models.IsValidTaskPriority(*payload.Priority) {
			return nil, ErrInvalidTaskPriority
		}
		task.Priority = models.TaskPriority(*payload.Priority)
	}

	projectID := task.ProjectID
	assignedTo := task.AssignedTo
	if payload.ProjectID != nil {
		projectID = *payload.ProjectID
	}
	if payload.AssignedTo != nil {
		assignedTo = *payload.AssignedTo
	}
	if projectID != task.ProjectID || assignedTo != task.AssignedTo {
		if err := s.verifyReferences(projectID, assignedTo); err != nil {
			return nil, err
		}
		task.ProjectID = projectID
		task.AssignedTo = assignedTo
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID)
}

// Delete removes a task.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.findTask(id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) findTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func (s *TaskService) verifyReferences(projectID, assignedTo uint64) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidTaskProject
		}
		return fmt.Errorf("failed to verify project: %w", err)
	}
	if _, err := s.userRepo.FindByID(assignedTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidTaskAssignee
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	return nil
}
