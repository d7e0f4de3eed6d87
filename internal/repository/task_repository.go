package repository

import (
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with project and assignee preloaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Project").Preload("Assignee").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAll lists all tasks
func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.listQuery().Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByAssignee lists tasks assigned to a user
func (r *GormTaskRepository) FindByAssignee(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.listQuery().Where("assigned_to = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByProject lists tasks belonging to a project
func (r *GormTaskRepository) FindByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.listQuery().Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

func (r *GormTaskRepository) listQuery() *gorm.DB {
	return r.db.Preload("Project").Preload("Assignee").Order("created_at DESC")
}
