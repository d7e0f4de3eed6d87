// Package authz holds the pure role and ownership decision rules. The
// functions here take everything they need as parameters and touch neither
// the database nor the request context.
package authz

import "github.com/taskflow-dev/taskflow-api/internal/models"

// TaskStatusField is the only task field an employee assignee may change.
const TaskStatusField = "status"

// IsAdmin reports whether the role grants unconditional access.
func IsAdmin(role models.UserRole) bool {
	return role == models.RoleAdmin
}

// CanAccessTask decides whether an actor may read a task. Admins see
// everything; employees see only tasks assigned to them.
func CanAccessTask(role models.UserRole, actorID uint64, task *models.Task) bool {
	if IsAdmin(role) {
		return true
	}
	return task.AssignedTo == actorID
}

// CanMutateTask decides whether an actor may apply the given change set to
// a task. Admins may change any field. An employee may change only the
// status field, and only on a task assigned to them; the presence of any
// other field in the change set rejects the whole mutation.
func CanMutateTask(role models.UserRole, actorID uint64, task *models.Task, changed []string) bool {
	if IsAdmin(role) {
		return true
	}
	if task.AssignedTo != actorID {
		return false
	}
	for _, field := range changed {
		if field != TaskStatusField {
			return false
		}
	}
	return true
}
