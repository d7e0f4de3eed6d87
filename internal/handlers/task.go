package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	"github.com/taskflow-dev/taskflow-api/internal/middleware"
	"github.com/taskflow-dev/taskflow-api/internal/response"
	"github.com/taskflow-dev/taskflow-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns every task for admins and only assigned tasks for
// employees.
func (h *TaskHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.List(actor)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dtos := dto.ToTaskDTOs(tasks)
	response.List(c, len(dtos), dtos)
}

// MyTasks returns the tasks assigned to the authenticated actor.
func (h *TaskHandler) MyTasks(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListMine(actor)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dtos := dto.ToTaskDTOs(tasks)
	response.List(c, len(dtos), dtos)
}

// ByProject returns the tasks of a project, narrowed to the actor's own
// tasks for employees.
func (h *TaskHandler) ByProject(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByProject(actor, projectID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	dtos := dto.ToTaskDTOs(tasks)
	response.List(c, len(dtos), dtos)
}

// Get returns a single task.
func (h *TaskHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(actor, id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.OK(c, "", dto.ToTaskDTO(*task))
}

// Create creates a new task. The route is admin-only.
func (h *TaskHandler) Create(c *gin.Context) {
	var payload dto.TaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(payload)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Created(c, "Task created successfully", dto.ToTaskDTO(*task))
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload dto.TaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(actor, id, payload)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.OK(c, "Task updated successfully", dto.ToTaskDTO(*task))
}

// Delete removes a task. The route is admin-only.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	response.OK(c, "Task deleted successfully", nil)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskAccessDenied),
		errors.Is(err, services.ErrTaskMutationDenied),
		errors.Is(err, services.ErrTaskStatusOnly):
		response.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidTaskTitle),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrInvalidTaskPriority),
		errors.Is(err, services.ErrInvalidTaskProject),
		errors.Is(err, services.ErrInvalidTaskAssignee),
		errors.Is(err, services.ErrTaskProjectRequired),
		errors.Is(err, services.ErrTaskAssigneeRequired),
		errors.Is(err, services.ErrNoTaskFields):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
