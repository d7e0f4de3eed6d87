package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskflow-dev/taskflow-api/internal/models"
)

func TestCanAccessTask(t *testing.T) {
	task := &models.Task{ID: 1, AssignedTo: 7}

	tests := []struct {
		name    string
		role    models.UserRole
		actorID uint64
		want    bool
	}{
		{"admin sees any task", models.RoleAdmin, 99, true},
		{"assignee sees own task", models.RoleEmployee, 7, true},
		{"employee denied on foreign task", models.RoleEmployee, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessTask(tt.role, tt.actorID, task))
		})
	}
}

func TestCanMutateTask(t *testing.T) {
	task := &models.Task{ID: 1, AssignedTo: 7}

	tests := []struct {
		name    string
		role    models.UserRole
		actorID uint64
		changed []string
		want    bool
	}{
		{"admin changes any field", models.RoleAdmin, 99, []string{"title", "priority"}, true},
		{"assignee changes status", models.RoleEmployee, 7, []string{"status"}, true},
		{"assignee rejected on title", models.RoleEmployee, 7, []string{"title"}, false},
		{"assignee rejected on mixed change set", models.RoleEmployee, 7, []string{"status", "priority"}, false},
		{"non-assignee rejected even for status", models.RoleEmployee, 8, []string{"status"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutateTask(tt.role, tt.actorID, task, tt.changed))
		})
	}
}
