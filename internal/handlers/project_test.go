package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow-api/internal/models"
)

func TestCreateProject(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)
	token := env.tokenFor(t, admin)

	w := env.request(t, http.MethodPost, "/api/projects", map[string]string{
		"name":        "Website Redesign",
		"description": "Refresh the marketing site",
	}, token)

	requireStatus(t, w, http.StatusCreated)
	var data struct {
		ID              uint64 `json:"id"`
		Name            string `json:"name"`
		Status          string `json:"status"`
		CreatedBy       uint64 `json:"created_by"`
		CreatorUsername string `json:"creator_username"`
	}
	decodeData(t, decodeEnvelope(t, w), &data)
	require.NotZero(t, data.ID)
	require.Equal(t, "Website Redesign", data.Name)
	require.Equal(t, "active", data.Status)
	require.Equal(t, admin.ID, data.CreatedBy)
	require.Equal(t, "alice", data.CreatorUsername)
}

func TestCreateProject_NameTooShort(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)

	w := env.request(t, http.MethodPost, "/api/projects", map[string]string{
		"name": "ab",
	}, env.tokenFor(t, admin))

	requireStatus(t, w, http.StatusBadRequest)
}

func TestProjectMutation_AdminOnly(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)
	employee := env.createUser(t, "bob", "bob@example.com", "supersecret", models.RoleEmployee)
	project := env.createProject(t, "Website Redesign", admin.ID)
	token := env.tokenFor(t, employee)

	create := env.request(t, http.MethodPost, "/api/projects", map[string]string{"name": "Shadow Project"}, token)
	requireStatus(t, create, http.StatusForbidden)

	update := env.request(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), map[string]string{"name": "Renamed"}, token)
	requireStatus(t, update, http.StatusForbidden)

	del := env.request(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil, token)
	requireStatus(t, del, http.StatusForbidden)

	// Reads stay open to any authenticated user.
	list := env.request(t, http.MethodGet, "/api/projects", nil, token)
	requireStatus(t, list, http.StatusOK)
	require.Equal(t, 1, decodeEnvelope(t, list).Count)

	get := env.request(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), nil, token)
	requireStatus(t, get, http.StatusOK)
}

func TestUpdateProject_Partial(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)
	token := env.tokenFor(t, admin)

	project := env.createProject(t, "Website Redesign", admin.ID)
	require.NoError(t, env.db.Model(project).Update("description", "Refresh the marketing site").Error)

	url := fmt.Sprintf("/api/projects/%d", project.ID)
	w := env.request(t, http.MethodPut, url, map[string]string{"status": "completed"}, token)

	requireStatus(t, w, http.StatusOK)
	var data struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	decodeData(t, decodeEnvelope(t, w), &data)
	require.Equal(t, "Website Redesign", data.Name)
	require.Equal(t, "Refresh the marketing site", data.Description)
	require.Equal(t, "completed", data.Status)

	// Re-applying the same payload leaves the resource unchanged.
	again := env.request(t, http.MethodPut, url, map[string]string{"status": "completed"}, token)
	requireStatus(t, again, http.StatusOK)
	var repeat struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	decodeData(t, decodeEnvelope(t, again), &repeat)
	require.Equal(t, data, repeat)
}

func TestUpdateProject_EmptyPayload(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)
	project := env.createProject(t, "Website Redesign", admin.ID)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), map[string]string{}, env.tokenFor(t, admin))

	requireStatus(t, w, http.StatusBadRequest)
}

func TestUpdateProject_InvalidStatus(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)
	project := env.createProject(t, "Website Redesign", admin.ID)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), map[string]string{
		"status": "paused",
	}, env.tokenFor(t, admin))

	requireStatus(t, w, http.StatusBadRequest)
}

func TestGetProject_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)

	w := env.request(t, http.MethodGet, "/api/projects/9999", nil, env.tokenFor(t, admin))

	requireStatus(t, w, http.StatusNotFound)
}

func TestGetProject_InvalidID(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)

	w := env.request(t, http.MethodGet, "/api/projects/abc", nil, env.tokenFor(t, admin))

	requireStatus(t, w, http.StatusBadRequest)
}

func TestDeleteProject_CascadesTasks(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "alice", "alice@example.com", "supersecret", models.RoleAdmin)
	employee := env.createUser(t, "bob", "bob@example.com", "supersecret", models.RoleEmployee)

	project := env.createProject(t, "Website Redesign", admin.ID)
	other := env.createProject(t, "Mobile App", admin.ID)
	env.createTask(t, "Design homepage", project.ID, employee.ID)
	env.createTask(t, "Write copy", project.ID, employee.ID)
	env.createTask(t, "Set up CI", other.ID, employee.ID)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil, env.tokenFor(t, admin))
	requireStatus(t, w, http.StatusOK)

	var orphaned int64
	require.NoError(t, env.db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&orphaned).Error)
	require.Zero(t, orphaned)

	// Tasks of other projects are untouched.
	var remaining int64
	require.NoError(t, env.db.Model(&models.Task{}).Count(&remaining).Error)
	require.EqualValues(t, 1, remaining)
}
