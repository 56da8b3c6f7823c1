package mapper

import (
	"testing"
	"time"

	"github.com/adanyl0v/go-todo-tasks/internal/dto"
	"github.com/adanyl0v/go-todo-tasks/internal/models"
)

var dueDate = time.Date(2099, time.July, 19, 23, 30, 0, 0, time.Local)

func sampleTask() *models.Task {
	d := dueDate
	return &models.Task{
		ID:              1,
		TaskName:        "Clean your room",
		TaskDescription: "Description",
		DueDate:         &d,
		Completed:       false,
	}
}

func TestToEntity(t *testing.T) {
	task := NewTaskMapper().ToEntity(dto.TaskDTO{
		ID:              42,
		TaskName:        dto.String("Dishes"),
		TaskDescription: dto.String("Description"),
		DueDate:         dto.NewDueDate(dueDate),
		Completed:       dto.Bool(true),
	})

	if task.ID != 0 {
		t.Fatalf("expected unset id, got %d", task.ID)
	}
	if task.TaskName != "Dishes" || task.TaskDescription != "Description" || !task.Completed {
		t.Fatalf("got %+v", task)
	}
	if task.DueDate == nil || !task.DueDate.Equal(dueDate) {
		t.Fatalf("dueDate=%v", task.DueDate)
	}
}

func TestToDTO(t *testing.T) {
	taskDTO := NewTaskMapper().ToDTO(sampleTask())

	if taskDTO.ID != 1 {
		t.Fatalf("id=%d", taskDTO.ID)
	}
	if *taskDTO.TaskName != "Clean your room" || *taskDTO.TaskDescription != "Description" || *taskDTO.Completed {
		t.Fatalf("got %+v", taskDTO)
	}
	if taskDTO.DueDate == nil || !taskDTO.DueDate.Time().Equal(dueDate) {
		t.Fatalf("dueDate=%v", taskDTO.DueDate)
	}
}

func TestToDTO_NilDueDate(t *testing.T) {
	task := sampleTask()
	task.DueDate = nil

	if taskDTO := NewTaskMapper().ToDTO(task); taskDTO.DueDate != nil {
		t.Fatalf("expected nil due date, got %v", taskDTO.DueDate)
	}
}

func TestPatchTaskFromDTO_OnlyNonNullFields(t *testing.T) {
	task := sampleTask()

	NewTaskMapper().PatchTaskFromDTO(dto.TaskPatchDTO{
		TaskName: dto.String("Wipe the floor"),
	}, task)

	if task.TaskName != "Wipe the floor" {
		t.Fatalf("taskName=%q", task.TaskName)
	}
	if task.TaskDescription != "Description" {
		t.Fatalf("taskDescription=%q", task.TaskDescription)
	}
	if task.DueDate == nil || !task.DueDate.Equal(dueDate) {
		t.Fatalf("dueDate=%v", task.DueDate)
	}
	if task.Completed {
		t.Fatalf("completed changed")
	}
	if task.ID != 1 {
		t.Fatalf("id changed to %d", task.ID)
	}
}

func TestEditTaskFromDTO_OverwritesPresentFields(t *testing.T) {
	task := sampleTask()
	newDueDate := dueDate.Add(5 * 24 * time.Hour)

	NewTaskMapper().EditTaskFromDTO(dto.TaskDTO{
		ID:              99,
		TaskDescription: dto.String(""),
		DueDate:         dto.NewDueDate(newDueDate),
		Completed:       dto.Bool(true),
	}, task)

	if task.ID != 1 {
		t.Fatalf("id changed to %d", task.ID)
	}
	if task.TaskName != "Clean your room" {
		t.Fatalf("taskName=%q", task.TaskName)
	}
	if task.TaskDescription != "" {
		t.Fatalf("taskDescription=%q", task.TaskDescription)
	}
	if !task.DueDate.Equal(newDueDate) || !task.Completed {
		t.Fatalf("got %+v", task)
	}
}

func TestToDTOList(t *testing.T) {
	m := NewTaskMapper()

	empty := m.ToDTOList(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", empty)
	}

	list := m.ToDTOList([]*models.Task{
		{ID: 1, TaskName: "Task 1", TaskDescription: "Desc 1"},
		{ID: 2, TaskName: "Task 2", TaskDescription: "Desc 2"},
	})
	if len(list) != 2 {
		t.Fatalf("len=%d", len(list))
	}
	if *list[0].TaskName != "Task 1" || *list[0].TaskDescription != "Desc 1" || list[1].ID != 2 {
		t.Fatalf("got %+v", list)
	}
}
