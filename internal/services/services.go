package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adanyl0v/go-todo-tasks/internal/dto"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskNotFoundError reports a task ID with no stored task. It matches
// ErrTaskNotFound with errors.Is.
type TaskNotFoundError struct {
	ID int64
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task with id %d not found", e.ID)
}

func (e *TaskNotFoundError) Unwrap() error {
	return ErrTaskNotFound
}

type TaskService interface {
	// GetTask returns a *TaskNotFoundError if there's no task with the given ID.
	GetTask(ctx context.Context, id int64) (*dto.TaskDTO, error)

	// CreateTask stores a new task and returns it with the assigned ID.
	//
	// The DTO is expected to be validated by the caller.
	CreateTask(ctx context.Context, taskDTO dto.TaskDTO) (*dto.TaskDTO, error)

	// DeleteTask returns a *TaskNotFoundError and deletes nothing
	// if there's no task with the given ID.
	DeleteTask(ctx context.Context, id int64) error

	// EditTask overwrites every non-null field of the DTO on the stored
	// task. Null fields keep their stored values, the same as PatchTask.
	//
	// It returns a *TaskNotFoundError if there's no task with the given ID.
	EditTask(ctx context.Context, id int64, taskDTO dto.TaskDTO) (*dto.TaskDTO, error)

	// PatchTask applies a partial update. It returns a
	// *TaskNotFoundError if there's no task with the given ID.
	PatchTask(ctx context.Context, id int64, patchDTO dto.TaskPatchDTO) (*dto.TaskDTO, error)

	// GetAllTasks returns every task in store order, or an empty slice.
	GetAllTasks(ctx context.Context) ([]dto.TaskDTO, error)
}
