package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-tasks/internal/models"
	"github.com/adanyl0v/go-todo-tasks/internal/repository"
)

func TestSave_AssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(zerolog.Nop())

	first, err := repo.Save(ctx, &models.Task{TaskName: "Task 1"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.Save(ctx, &models.Task{TaskName: "Task 2"})
	if err != nil {
		t.Fatal(err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids=%d,%d", first.ID, second.ID)
	}
}

func TestSave_DoesNotReuseDeletedIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(zerolog.Nop())

	task, _ := repo.Save(ctx, &models.Task{TaskName: "Task 1"})
	if err := repo.DeleteByID(ctx, task.ID); err != nil {
		t.Fatal(err)
	}

	next, err := repo.Save(ctx, &models.Task{TaskName: "Task 2"})
	if err != nil {
		t.Fatal(err)
	}
	if next.ID == task.ID {
		t.Fatalf("id %d reused", next.ID)
	}
}

func TestSave_UpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(zerolog.Nop())

	task, _ := repo.Save(ctx, &models.Task{TaskName: "Task 1", TaskDescription: "Desc"})
	task.TaskName = "Renamed"
	task.Completed = true
	if _, err := repo.Save(ctx, task); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TaskName != "Renamed" || got.TaskDescription != "Desc" || !got.Completed {
		t.Fatalf("got %+v", got)
	}
}

func TestSave_UnknownIDFails(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())

	_, err := repo.Save(context.Background(), &models.Task{ID: 7, TaskName: "Ghost"})
	if !errors.Is(err, repository.ErrTaskNotExist) {
		t.Fatalf("expected ErrTaskNotExist, got %v", err)
	}
}

func TestFindByID_Missing(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())

	_, err := repo.FindByID(context.Background(), 1)
	if !errors.Is(err, repository.ErrTaskNotExist) {
		t.Fatalf("expected ErrTaskNotExist, got %v", err)
	}
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(zerolog.Nop())

	dueDate := time.Date(2099, time.July, 19, 23, 30, 0, 0, time.Local)
	task, _ := repo.Save(ctx, &models.Task{TaskName: "Task 1", DueDate: &dueDate})

	got, _ := repo.FindByID(ctx, task.ID)
	got.TaskName = "mutated"
	*got.DueDate = got.DueDate.Add(time.Hour)

	again, _ := repo.FindByID(ctx, task.ID)
	if again.TaskName != "Task 1" || !again.DueDate.Equal(dueDate) {
		t.Fatalf("stored task was mutated: %+v", again)
	}
}

func TestFindAll_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(zerolog.Nop())

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", tasks)
	}

	for _, name := range []string{"a", "b", "c"} {
		if _, err := repo.Save(ctx, &models.Task{TaskName: name}); err != nil {
			t.Fatal(err)
		}
	}
	_ = repo.DeleteByID(ctx, 2)

	tasks, _ = repo.FindAll(ctx)
	if len(tasks) != 2 || tasks[0].TaskName != "a" || tasks[1].TaskName != "c" {
		t.Fatalf("got %+v", tasks)
	}
}

func TestExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(zerolog.Nop())

	task, _ := repo.Save(ctx, &models.Task{TaskName: "Task 1"})

	exists, err := repo.ExistsByID(ctx, task.ID)
	if err != nil || !exists {
		t.Fatalf("exists=%v err=%v", exists, err)
	}

	if err := repo.DeleteByID(ctx, task.ID); err != nil {
		t.Fatal(err)
	}
	exists, _ = repo.ExistsByID(ctx, task.ID)
	if exists {
		t.Fatalf("task still exists after delete")
	}

	if err := repo.DeleteByID(ctx, task.ID); err != nil {
		t.Fatalf("delete of missing id: %v", err)
	}
}
