package router

import (
	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/auth"
	"github.com/taskflow-dev/taskflow-api/internal/handlers"
	"github.com/taskflow-dev/taskflow-api/internal/middleware"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/repository"
	"github.com/taskflow-dev/taskflow-api/internal/services"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine.
func New(db *gorm.DB, tokens *auth.TokenService) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/register", requireAuth, adminOnly, authHandler.Register)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", projectHandler.List)
			projects.POST("", adminOnly, projectHandler.Create)
			projects.GET("/:id", projectHandler.Get)
			projects.PUT("/:id", adminOnly, projectHandler.Update)
			projects.DELETE("/:id", adminOnly, projectHandler.Delete)
		}

		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/my", taskHandler.MyTasks)
			tasks.GET("/project/:projectId", taskHandler.ByProject)
			tasks.GET("/:id", taskHandler.Get)
			tasks.POST("", adminOnly, taskHandler.Create)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", adminOnly, taskHandler.Delete)
		}

		users := api.Group("/users")
		users.Use(requireAuth, adminOnly)
		{
			users.GET("", userHandler.List)
			users.GET("/employees", userHandler.Employees)
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return r
}
