package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	"github.com/taskflow-dev/taskflow-api/internal/middleware"
	"github.com/taskflow-dev/taskflow-api/internal/response"
	"github.com/taskflow-dev/taskflow-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	token, user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token": token,
		"user":  dto.ToUserDTO(*user),
	})
}

// Register creates a new user. Reachable only by admins; the route is
// guarded by RequireRoles.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}

	var req RegisterRequest
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

	response.Created(c, "User registered successfully", dto.ToUserDTO(*user))
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(actor.ID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.OK(c, "", dto.ToUserDTO(*user))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrNoUserFields):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBootstrapAdmin):
		response.Forbidden(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
