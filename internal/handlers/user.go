package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	"github.com/taskflow-dev/taskflow-api/internal/response"
	"github.com/taskflow-dev/taskflow-api/internal/services"
)

// UserHandler coordinates user-management HTTP handlers. Every route is
// admin-only.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondUserError(c, err)
		return
	}

	dtos := dto.ToUserDTOs(users)
	response.List(c, len(dtos), dtos)
}

// Employees returns all users with the employee role.
func (h *UserHandler) Employees(c *gin.Context) {
	users, err := h.userService.ListEmployees()
	if err != nil {
		respondUserError(c, err)
		return
	}

	dtos := dto.ToUserDTOs(users)
	response.List(c, len(dtos), dtos)
}

// Get returns a single user.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.OK(c, "", dto.ToUserDTO(*user))
}

// Create creates a new user.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username, email and password are required")
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Created(c, "User created successfully", dto.ToUserDTO(*user))
}

// Update applies a partial update to a user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload dto.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(id, payload)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.OK(c, "User updated successfully", dto.ToUserDTO(*user))
}

// Delete removes a user. Deleting the bootstrap admin is rejected.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		respondUserError(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}
