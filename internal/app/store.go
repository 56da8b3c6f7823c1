package app

import (
	"github.com/adanyl0v/go-todo-tasks/internal/config"
	"github.com/adanyl0v/go-todo-tasks/internal/repository"
	"github.com/adanyl0v/go-todo-tasks/internal/repository/memory"
	"github.com/adanyl0v/go-todo-tasks/internal/repository/postgres"
)

var globalTaskRepository repository.TaskRepository

// MustOpenStore builds the task repository for the configured driver,
// connecting to postgres first when needed.
func MustOpenStore() {
	driver := config.Global().Store.Driver
	switch driver {
	case config.StoreDriverPostgres:
		MustConnectPostgres()
		globalTaskRepository = postgres.NewTaskRepository(globalLogger, globalPostgresPool)
	case config.StoreDriverMemory:
		globalTaskRepository = memory.NewTaskRepository(globalLogger)
	}
	globalLogger.Info().
		Str("driver", driver).
		Msg("opened task store")
}

func CloseStore() {
	DisconnectPostgres()
}
