package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-tasks/internal/dto"
	"github.com/adanyl0v/go-todo-tasks/internal/services"
)

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(c, taskID)
	if err != nil {
		h.abortWithServiceError(c, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req dto.TaskDTO
	if !h.bindTaskDTO(c, &req) {
		return
	}
	// The id is assigned by the store.
	req.ID = 0

	task, err := h.tasks.CreateTask(c, req)
	if err != nil {
		h.abortWithServiceError(c, err, "failed to create task")
		return
	}

	h.logger.Debug().
		Int64("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, task)
}

func (h *handlerImpl) HandleEditTask(c *gin.Context) {
	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	var req dto.TaskDTO
	if !h.bindTaskDTO(c, &req) {
		return
	}

	task, err := h.tasks.EditTask(c, taskID, req)
	if err != nil {
		h.abortWithServiceError(c, err, "failed to edit task")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandlePatchTask(c *gin.Context) {
	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	var req dto.TaskPatchDTO
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.PatchTask(c, taskID, req)
	if err != nil {
		h.abortWithServiceError(c, err, "failed to patch task")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := h.bindTaskID(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		h.abortWithServiceError(c, err, "failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleGetAllTasks(c *gin.Context) {
	tasks, err := h.tasks.GetAllTasks(c)
	if err != nil {
		h.abortWithServiceError(c, err, "failed to get tasks")
		return
	}

	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlerImpl) bindTaskID(c *gin.Context) (int64, bool) {
	param := c.Param("id")
	taskID, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", param).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return taskID, true
}

// bindTaskDTO decodes and validates a create or full edit body.
func (h *handlerImpl) bindTaskDTO(c *gin.Context, req *dto.TaskDTO) bool {
	err := c.ShouldBindJSON(req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return false
	}

	fieldErrs := h.validator.ValidateTask(*req)
	if len(fieldErrs) > 0 {
		h.logger.Error().
			Interface("fields", fieldErrs).
			Msg("invalid task")
		abort(c, newValidationError(fieldErrs))
		return false
	}
	return true
}

func (h *handlerImpl) abortWithServiceError(c *gin.Context, err error, msg string) {
	h.logger.Error().
		Err(err).
		Msg(msg)

	var notFoundErr *services.TaskNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		abort(c, newNotFoundError(notFoundErr.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
