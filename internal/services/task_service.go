package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-tasks/internal/dto"
	"github.com/adanyl0v/go-todo-tasks/internal/mapper"
	"github.com/adanyl0v/go-todo-tasks/internal/metrics"
	"github.com/adanyl0v/go-todo-tasks/internal/models"
	"github.com/adanyl0v/go-todo-tasks/internal/repository"
)

const (
	opGetTask     = "get"
	opCreateTask  = "create"
	opDeleteTask  = "delete"
	opEditTask    = "edit"
	opPatchTask   = "patch"
	opGetAllTasks = "list"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	repo   repository.TaskRepository
	mapper mapper.TaskMapper
}

func NewTaskService(
	logger zerolog.Logger,
	repo repository.TaskRepository,
	taskMapper mapper.TaskMapper,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		repo:   repo,
		mapper: taskMapper,
	}
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*dto.TaskDTO, error) {
	task, err := s.findTask(ctx, opGetTask, id)
	if err != nil {
		return nil, err
	}

	taskDTO := s.mapper.ToDTO(task)
	metrics.IncrementTaskOperation(opGetTask, metrics.ResultSuccess)
	s.logger.Info().
		Int64("task_id", id).
		Msg("task found")
	return &taskDTO, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, taskDTO dto.TaskDTO) (*dto.TaskDTO, error) {
	task, err := s.repo.Save(ctx, s.mapper.ToEntity(taskDTO))
	if err != nil {
		metrics.IncrementTaskOperation(opCreateTask, metrics.ResultError)
		s.logger.Error().
			Err(err).
			Msg("failed to save task")
		return nil, err
	}

	created := s.mapper.ToDTO(task)
	metrics.IncrementTaskOperation(opCreateTask, metrics.ResultSuccess)
	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return &created, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		metrics.IncrementTaskOperation(opDeleteTask, metrics.ResultError)
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to check task existence")
		return err
	}
	if !exists {
		metrics.IncrementTaskOperation(opDeleteTask, metrics.ResultNotFound)
		s.logger.Error().
			Int64("task_id", id).
			Msg("task not found")
		return &TaskNotFoundError{ID: id}
	}

	err = s.repo.DeleteByID(ctx, id)
	if err != nil {
		metrics.IncrementTaskOperation(opDeleteTask, metrics.ResultError)
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}

	metrics.IncrementTaskOperation(opDeleteTask, metrics.ResultSuccess)
	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) EditTask(ctx context.Context, id int64, taskDTO dto.TaskDTO) (*dto.TaskDTO, error) {
	task, err := s.findTask(ctx, opEditTask, id)
	if err != nil {
		return nil, err
	}

	s.mapper.EditTaskFromDTO(taskDTO, task)
	return s.saveUpdated(ctx, opEditTask, task)
}

func (s *taskServiceImpl) PatchTask(ctx context.Context, id int64, patchDTO dto.TaskPatchDTO) (*dto.TaskDTO, error) {
	task, err := s.findTask(ctx, opPatchTask, id)
	if err != nil {
		return nil, err
	}

	s.mapper.PatchTaskFromDTO(patchDTO, task)
	return s.saveUpdated(ctx, opPatchTask, task)
}

func (s *taskServiceImpl) GetAllTasks(ctx context.Context) ([]dto.TaskDTO, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		metrics.IncrementTaskOperation(opGetAllTasks, metrics.ResultError)
		s.logger.Error().
			Err(err).
			Msg("failed to find tasks")
		return nil, err
	}

	taskDTOs := s.mapper.ToDTOList(tasks)
	metrics.IncrementTaskOperation(opGetAllTasks, metrics.ResultSuccess)
	s.logger.Info().
		Int("count", len(taskDTOs)).
		Msg("tasks found")
	return taskDTOs, nil
}

func (s *taskServiceImpl) findTask(ctx context.Context, op string, id int64) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotExist) {
			metrics.IncrementTaskOperation(op, metrics.ResultNotFound)
			s.logger.Error().
				Int64("task_id", id).
				Msg("task not found")
			return nil, &TaskNotFoundError{ID: id}
		}

		metrics.IncrementTaskOperation(op, metrics.ResultError)
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to find task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("selected task")
	return task, nil
}

func (s *taskServiceImpl) saveUpdated(ctx context.Context, op string, task *models.Task) (*dto.TaskDTO, error) {
	updated, err := s.repo.Save(ctx, task)
	if err != nil {
		// The task may have been deleted between the lookup and the save.
		if errors.Is(err, repository.ErrTaskNotExist) {
			metrics.IncrementTaskOperation(op, metrics.ResultNotFound)
			return nil, &TaskNotFoundError{ID: task.ID}
		}

		metrics.IncrementTaskOperation(op, metrics.ResultError)
		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to save task")
		return nil, err
	}

	updatedDTO := s.mapper.ToDTO(updated)
	metrics.IncrementTaskOperation(op, metrics.ResultSuccess)
	s.logger.Info().
		Int64("task_id", updated.ID).
		Str("operation", op).
		Msg("updated task")
	return &updatedDTO, nil
}
