package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saeidalz13/battleship-simulator/internal/config"
)

func TestCommand(t *testing.T) {
	root := t.TempDir()
	inputDir := filepath.Join(root, "in")
	outputDir := filepath.Join(root, "out")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		t.Fatal(err)
	}
	input := "10\n(0, 0, N) (9, 2, E)\n(0, 0) MRMLMM\n(9, 2)\n"
	if err := os.WriteFile(filepath.Join(inputDir, "game.txt"), []byte(input), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Stage: config.StageProd, InputDir: "input", OutputDir: "output", LogLevel: "error"}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "missing arguments",
			args:    []string{"battleship", "game.txt"},
			wantErr: true,
		},
		{
			name:    "missing input file",
			args:    []string{"battleship", "--input-dir", inputDir, "--output-dir", outputDir, "--log-level", "error", "nope.txt", "result.txt"},
			wantErr: true,
		},
		{
			name: "valid run",
			args: []string{"battleship", "--input-dir", inputDir, "--output-dir", outputDir, "--log-level", "error", "game.txt", "result.txt"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := newCommand(cfg).Run(context.Background(), test.args)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			output, err := os.ReadFile(filepath.Join(outputDir, "result.txt"))
			if err != nil {
				t.Fatal(err)
			}
			expected := "(1, 3, N)\n(9, 2, E) SUNK\n"
			if string(output) != expected {
				t.Fatalf("expected output: %q\t got: %q", expected, string(output))
			}
		})
	}
}
