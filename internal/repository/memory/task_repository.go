package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-tasks/internal/models"
	"github.com/adanyl0v/go-todo-tasks/internal/repository"
)

type taskRepositoryImpl struct {
	logger zerolog.Logger

	mu     sync.RWMutex
	lastID int64
	order  []int64
	tasks  map[int64]*models.Task
}

func NewTaskRepository(logger zerolog.Logger) repository.TaskRepository {
	return &taskRepositoryImpl{
		logger: logger,
		tasks:  make(map[int64]*models.Task),
	}
}

func (r *taskRepositoryImpl) Save(_ context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := task.Clone()
	if stored.ID == 0 {
		r.lastID++
		stored.ID = r.lastID
		r.order = append(r.order, stored.ID)
		r.tasks[stored.ID] = stored

		r.logger.Debug().
			Int64("task_id", stored.ID).
			Msg("inserted task")
		return stored.Clone(), nil
	}

	if _, ok := r.tasks[stored.ID]; !ok {
		r.logger.Error().
			Int64("task_id", stored.ID).
			Msg("task not found")
		return nil, fmt.Errorf("failed to update task %d: %w", stored.ID, repository.ErrTaskNotExist)
	}
	r.tasks[stored.ID] = stored

	r.logger.Debug().
		Int64("task_id", stored.ID).
		Msg("updated task")
	return stored.Clone(), nil
}

func (r *taskRepositoryImpl) FindByID(_ context.Context, id int64) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotExist
	}
	return task.Clone(), nil
}

func (r *taskRepositoryImpl) FindAll(_ context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.tasks[id].Clone())
	}
	return tasks, nil
}

func (r *taskRepositoryImpl) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tasks[id]
	return ok, nil
}

func (r *taskRepositoryImpl) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return nil
	}
	delete(r.tasks, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })

	r.logger.Debug().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}
