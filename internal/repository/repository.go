package repository

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-todo-tasks/internal/models"
)

var ErrTaskNotExist = errors.New("task does not exist")

type TaskRepository interface {
	// Save inserts the task if its ID is zero and assigns a fresh ID,
	// otherwise it overwrites the stored task with the same ID.
	Save(ctx context.Context, task *models.Task) (*models.Task, error)

	// FindByID returns ErrTaskNotExist if there's no task with the given ID.
	FindByID(ctx context.Context, id int64) (*models.Task, error)

	// FindAll returns every task in insertion order.
	FindAll(ctx context.Context) ([]*models.Task, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID is a no-op for a missing ID. Callers that care check
	// ExistsByID first.
	DeleteByID(ctx context.Context, id int64) error
}
