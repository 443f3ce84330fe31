package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. TODO_FILE.
const Prefix = "TODO"

type Config struct {
	File     string `envconfig:"FILE" default:"todos.json"`
	Title    string `envconfig:"TITLE" default:"Today's Todos"`
	Theme    string `envconfig:"THEME" default:"classic"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads the environment, after merging in the given .env files when
// they exist. With no files, ".env" in the working directory is tried.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &c, nil
}
