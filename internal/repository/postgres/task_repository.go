package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-tasks/internal/models"
	"github.com/adanyl0v/go-todo-tasks/internal/repository"
)

// Querier is the subset of *pgxpool.Pool the repository uses. It's
// also satisfied by pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type taskRepositoryImpl struct {
	logger zerolog.Logger
	db     Querier
}

func NewTaskRepository(logger zerolog.Logger, db Querier) repository.TaskRepository {
	return &taskRepositoryImpl{
		logger: logger,
		db:     db,
	}
}

const createTasksTableQuery = `
CREATE TABLE IF NOT EXISTS tasks (
    id               BIGSERIAL PRIMARY KEY,
    task_name        TEXT        NOT NULL,
    task_description TEXT        NOT NULL,
    due_date         TIMESTAMPTZ NULL,
    completed        BOOLEAN     NOT NULL DEFAULT FALSE
)
`

// EnsureSchema creates the tasks table if it doesn't exist yet.
func EnsureSchema(ctx context.Context, db Querier) error {
	_, err := db.Exec(ctx, createTasksTableQuery)
	if err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}
	return nil
}

func (r *taskRepositoryImpl) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == 0 {
		return r.insert(ctx, task)
	}
	return r.update(ctx, task)
}

func (r *taskRepositoryImpl) insert(ctx context.Context, task *models.Task) (*models.Task, error) {
	saved := task.Clone()

	const insertTaskQuery = `
INSERT INTO tasks (task_name,
                   task_description,
                   due_date,
                   completed)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	err := r.db.QueryRow(
		ctx,
		insertTaskQuery,
		saved.TaskName,
		saved.TaskDescription,
		saved.DueDate,
		saved.Completed,
	).Scan(&saved.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	r.logger.Debug().
		Int64("task_id", saved.ID).
		Msg("inserted task")
	return saved, nil
}

func (r *taskRepositoryImpl) update(ctx context.Context, task *models.Task) (*models.Task, error) {
	const updateTaskQuery = `
UPDATE tasks
SET task_name = $1,
    task_description = $2,
    due_date = $3,
    completed = $4
WHERE id = $5
`
	tag, err := r.db.Exec(
		ctx,
		updateTaskQuery,
		task.TaskName,
		task.TaskDescription,
		task.DueDate,
		task.Completed,
		task.ID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Error().
			Int64("task_id", task.ID).
			Msg("task not found")
		return nil, fmt.Errorf("failed to update task %d: %w", task.ID, repository.ErrTaskNotExist)
	}
	r.logger.Debug().
		Int64("task_id", task.ID).
		Msg("updated task")
	return task.Clone(), nil
}

func (r *taskRepositoryImpl) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{ID: id}

	const selectTaskByIDQuery = `
SELECT task_name,
       task_description,
       due_date,
       completed
FROM tasks
WHERE id = $1
`
	var dueDate *time.Time
	err := r.db.QueryRow(
		ctx,
		selectTaskByIDQuery,
		task.ID,
	).Scan(
		&task.TaskName,
		&task.TaskDescription,
		&dueDate,
		&task.Completed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrTaskNotExist
		}

		r.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to select task by id")
		return nil, err
	}
	task.DueDate = localTime(dueDate)

	r.logger.Debug().
		Int64("task_id", id).
		Msg("selected task by id")
	return task, nil
}

func (r *taskRepositoryImpl) FindAll(ctx context.Context) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       task_name,
       task_description,
       due_date,
       completed
FROM tasks
ORDER BY id
`
	rows, err := r.db.Query(ctx, selectTasksQuery)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{}
		var dueDate *time.Time
		err = rows.Scan(
			&task.ID,
			&task.TaskName,
			&task.TaskDescription,
			&dueDate,
			&task.Completed,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		task.DueDate = localTime(dueDate)
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (r *taskRepositoryImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const existsTaskQuery = `
SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)
`
	var exists bool
	err := r.db.QueryRow(ctx, existsTaskQuery, id).Scan(&exists)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to check task existence")
		return false, err
	}
	return exists, nil
}

func (r *taskRepositoryImpl) DeleteByID(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	r.logger.Debug().
		Int64("task_id", id).
		Int64("affected", tag.RowsAffected()).
		Msg("deleted task")
	return nil
}

// Due dates travel over the wire in local time, so bring them back
// from the UTC value pgx scans out of timestamptz.
func localTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	local := t.Local()
	return &local
}
