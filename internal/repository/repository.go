package repository

import "github.com/taskflow-dev/taskflow-api/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindAll lists all users
	FindAll() ([]models.User, error)

	// FindByRole lists all users with the given role
	FindByRole(role models.UserRole) ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete removes a user together with their created projects and
	// assigned tasks
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with the creator preloaded
	FindByID(id uint64) (*models.Project, error)

	// FindAll lists all projects with creators preloaded
	FindAll() ([]models.Project, error)

	// Update persists changes to a project
	Update(project *models.Project) error

	// Delete removes a project and all of its tasks
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with project and assignee preloaded
	FindByID(id uint64) (*models.Task, error)

	// FindAll lists all tasks
	FindAll() ([]models.Task, error)

	// FindByAssignee lists tasks assigned to a user
	FindByAssignee(userID uint64) ([]models.Task, error)

	// FindByProject lists tasks belonging to a project
	FindByProject(projectID uint64) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error
}
