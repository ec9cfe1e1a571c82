package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cerr "github.com/saeidalz13/battleship-simulator/internal/error"
)

// chdir moves the test into dir and restores the working directory after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STAGE", "INPUT_DIR", "OUTPUT_DIR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	expected := Config{Stage: StageDev, InputDir: "input", OutputDir: "output", LogLevel: "debug"}
	if *cfg != expected {
		t.Fatalf("expected: %+v\t got: %+v", expected, *cfg)
	}
	if !cfg.IsDev() {
		t.Fatal("expected dev stage")
	}
}

func TestLoadProd(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)
	t.Setenv("STAGE", StageProd)
	t.Setenv("OUTPUT_DIR", "/tmp/results")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected log level: info\t got: %s", cfg.LogLevel)
	}
	if cfg.OutputDir != "/tmp/results" {
		t.Fatalf("expected output dir: /tmp/results\t got: %s", cfg.OutputDir)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to ""
	for _, key := range []string{"INPUT_DIR", "LOG_LEVEL"} {
		os.Unsetenv(key)
	}

	content := "INPUT_DIR=fixtures\nLOG_LEVEL=warn\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "fixtures" || cfg.LogLevel != "warn" {
		t.Fatalf("expected values from .env\t got: %+v", *cfg)
	}
}

func TestLoadInvalidStage(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)
	t.Setenv("STAGE", "staging")

	if _, err := Load(); !errors.Is(err, cerr.ErrConfig) {
		t.Fatalf("expected config error\t got: %v", err)
	}
}
