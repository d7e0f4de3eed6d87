package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/pkg/logger"
)

// Envelope is the uniform response shape returned by every endpoint. The
// HTTP status code carries the numeric status.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListEnvelope is the envelope used for collection responses. Count is
// always serialized, including zero.
type ListEnvelope struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// List sends a 200 response with a collection and its count.
func List(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, ListEnvelope{Success: true, Count: count, Data: data})
}

// Error sends an error envelope with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	Error(c, http.StatusConflict, message)
}

// Internal logs the underlying error server-side and sends a generic 500
// response. The error detail never reaches the client.
func Internal(c *gin.Context, err error) {
	log := logger.Get()
	log.Error().
		Err(err).
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Msg("internal error")
	Error(c, http.StatusInternalServerError, "Internal server error")
}
