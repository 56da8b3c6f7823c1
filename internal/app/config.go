package app

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-todo-tasks/internal/config"
)

const configPathEnv = "CONFIG_PATH"

func MustReadEnv() {
	var reader config.Reader = config.NewEnvReader()
	if path := os.Getenv(configPathEnv); path != "" {
		reader = config.NewFileReader(path)
		globalLogger.Info().
			Str("path", path).
			Msg("reading config file")
	}

	cfg, err := reader.Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("store_driver", cfg.Store.Driver).
		Msg("read env")

	config.SetGlobal(cfg)
}
