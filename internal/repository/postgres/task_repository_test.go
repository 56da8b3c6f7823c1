package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-tasks/internal/models"
	"github.com/adanyl0v/go-todo-tasks/internal/repository"
)

func newTestRepository(t *testing.T) repository.TaskRepository {
	t.Helper()

	dbURL := os.Getenv("TEST_POSTGRES_URL")
	if dbURL == "" {
		t.Skip("TEST_POSTGRES_URL not set (integration test)")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatal(err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE tasks RESTART IDENTITY"); err != nil {
		t.Fatal(err)
	}
	return NewTaskRepository(zerolog.Nop(), pool)
}

func TestTaskRepository_CRUD(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	dueDate := time.Date(2099, time.July, 19, 23, 30, 0, 0, time.Local)
	created, err := repo.Save(ctx, &models.Task{
		TaskName:        "Dishes",
		TaskDescription: "Description",
		DueDate:         &dueDate,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TaskName != "Dishes" || got.TaskDescription != "Description" || got.Completed {
		t.Fatalf("got %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(dueDate) {
		t.Fatalf("dueDate=%v", got.DueDate)
	}

	got.Completed = true
	got.DueDate = nil
	if _, err := repo.Save(ctx, got); err != nil {
		t.Fatal(err)
	}
	updated, _ := repo.FindByID(ctx, created.ID)
	if !updated.Completed || updated.DueDate != nil {
		t.Fatalf("got %+v", updated)
	}

	if err := repo.DeleteByID(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	exists, err := repo.ExistsByID(ctx, created.ID)
	if err != nil || exists {
		t.Fatalf("exists=%v err=%v", exists, err)
	}
	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, repository.ErrTaskNotExist) {
		t.Fatalf("expected ErrTaskNotExist, got %v", err)
	}
}

func TestTaskRepository_FindAllOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Task 1", "Task 2"} {
		if _, err := repo.Save(ctx, &models.Task{TaskName: name}); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 || tasks[0].TaskName != "Task 1" || tasks[1].TaskName != "Task 2" {
		t.Fatalf("got %+v", tasks)
	}
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Save(context.Background(), &models.Task{ID: 12345, TaskName: "Ghost"})
	if !errors.Is(err, repository.ErrTaskNotExist) {
		t.Fatalf("expected ErrTaskNotExist, got %v", err)
	}
}
