package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-tasks/internal/services"
	"github.com/adanyl0v/go-todo-tasks/internal/validation"
)

type Handler interface {
	HandleGetTask(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleEditTask(c *gin.Context)
	HandlePatchTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleGetAllTasks(c *gin.Context)

	HandleHealth(c *gin.Context)

	HandleRequestIDMiddleware(c *gin.Context)
	HandleLoggerMiddleware(c *gin.Context)
	HandleMetricsMiddleware(c *gin.Context)
}

type handlerImpl struct {
	logger    zerolog.Logger
	tasks     services.TaskService
	validator *validation.Validator
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	validator *validation.Validator,
) Handler {
	return &handlerImpl{
		logger:    logger,
		tasks:     taskService,
		validator: validator,
	}
}

// RegisterRoutes mounts the task API and the ancillary endpoints.
// Metrics exposition is left to the caller.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleRequestIDMiddleware, h.HandleLoggerMiddleware, h.HandleMetricsMiddleware)

	router.GET("/healthz", h.HandleHealth)

	tasksRouter := router.Group("/tasks")
	tasksRouter.GET("", h.HandleGetAllTasks)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("/:id", h.HandleGetTask)
	tasksRouter.PUT("/:id", h.HandleEditTask)
	tasksRouter.PATCH("/:id", h.HandlePatchTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
