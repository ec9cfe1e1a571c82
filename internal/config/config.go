package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-simulator/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultInputDir  = "input"
	defaultOutputDir = "output"
)

type Config struct {
	Stage     string
	InputDir  string
	OutputDir string
	LogLevel  string
}

// Load reads the configuration from the environment. Outside prod a .env
// file in the working directory is loaded first; it is optional.
func Load() (*Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	stage := envOrDefault("STAGE", StageDev)
	if stage != StageDev && stage != StageProd {
		return nil, cerr.ErrInvalidStage(stage)
	}

	defaultLevel := "debug"
	if stage == StageProd {
		defaultLevel = "info"
	}

	return &Config{
		Stage:     stage,
		InputDir:  envOrDefault("INPUT_DIR", defaultInputDir),
		OutputDir: envOrDefault("OUTPUT_DIR", defaultOutputDir),
		LogLevel:  envOrDefault("LOG_LEVEL", defaultLevel),
	}, nil
}

func (c *Config) IsDev() bool {
	return c.Stage == StageDev
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
