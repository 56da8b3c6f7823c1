package mapper

import (
	"time"

	"github.com/adanyl0v/go-todo-tasks/internal/dto"
	"github.com/adanyl0v/go-todo-tasks/internal/models"
)

type TaskMapper interface {
	// ToEntity copies the DTO fields onto a new task, leaving its ID unset.
	ToEntity(taskDTO dto.TaskDTO) *models.Task

	ToDTO(task *models.Task) dto.TaskDTO

	// EditTaskFromDTO overwrites the task fields that are non-null in
	// the DTO. Null fields leave the task untouched.
	EditTaskFromDTO(taskDTO dto.TaskDTO, task *models.Task)

	// PatchTaskFromDTO follows the same rule as EditTaskFromDTO.
	PatchTaskFromDTO(patchDTO dto.TaskPatchDTO, task *models.Task)

	ToDTOList(tasks []*models.Task) []dto.TaskDTO
}

type taskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return taskMapperImpl{}
}

func (taskMapperImpl) ToEntity(taskDTO dto.TaskDTO) *models.Task {
	task := &models.Task{}
	applyUpdate(taskDTO.TaskName, taskDTO.TaskDescription, taskDTO.DueDate, taskDTO.Completed, task)
	return task
}

func (taskMapperImpl) ToDTO(task *models.Task) dto.TaskDTO {
	taskDTO := dto.TaskDTO{
		ID:              task.ID,
		TaskName:        dto.String(task.TaskName),
		TaskDescription: dto.String(task.TaskDescription),
		Completed:       dto.Bool(task.Completed),
	}
	if task.DueDate != nil {
		taskDTO.DueDate = dto.NewDueDate(*task.DueDate)
	}
	return taskDTO
}

func (taskMapperImpl) EditTaskFromDTO(taskDTO dto.TaskDTO, task *models.Task) {
	applyUpdate(taskDTO.TaskName, taskDTO.TaskDescription, taskDTO.DueDate, taskDTO.Completed, task)
}

func (taskMapperImpl) PatchTaskFromDTO(patchDTO dto.TaskPatchDTO, task *models.Task) {
	applyUpdate(patchDTO.TaskName, patchDTO.TaskDescription, patchDTO.DueDate, patchDTO.Completed, task)
}

func (m taskMapperImpl) ToDTOList(tasks []*models.Task) []dto.TaskDTO {
	taskDTOs := make([]dto.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		taskDTOs = append(taskDTOs, m.ToDTO(task))
	}
	return taskDTOs
}

func applyUpdate(
	taskName *string,
	taskDescription *string,
	dueDate *dto.DueDate,
	completed *bool,
	task *models.Task,
) {
	if taskName != nil {
		task.TaskName = *taskName
	}
	if taskDescription != nil {
		task.TaskDescription = *taskDescription
	}
	if dueDate != nil {
		t := time.Time(*dueDate)
		task.DueDate = &t
	}
	if completed != nil {
		task.Completed = *completed
	}
}
