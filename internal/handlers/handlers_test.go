package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow-api/internal/auth"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/router"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv bundles an in-memory database with a fully wired router.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	tokens := auth.NewTokenService("test-secret", time.Hour)
	return &testEnv{
		db:     db,
		router: router.New(db, tokens),
		tokens: tokens,
	}
}

func (e *testEnv) createUser(t *testing.T, username, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createProject(t *testing.T, name string, createdBy uint64) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:      name,
		Status:    models.ProjectStatusActive,
		CreatedBy: createdBy,
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *testEnv) createTask(t *testing.T, title string, projectID, assignedTo uint64) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:      title,
		ProjectID:  projectID,
		AssignedTo: assignedTo,
		Status:     models.TaskStatusPending,
		Priority:   models.TaskPriorityMedium,
	}
	require.NoError(t, e.db.Create(task).Error)
	return task
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

// request performs a JSON request through the full router, optionally
// authenticated with a bearer token.
func (e *testEnv) request(t *testing.T, method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors the uniform response shape for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
