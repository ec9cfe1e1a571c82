package simulation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/battleship-simulator/internal/parser"
	mb "github.com/saeidalz13/battleship-simulator/models/battleship"
)

const (
	defaultInputDir  = "input"
	defaultOutputDir = "output"
	outputDirPerm    = 0755
)

type Simulator struct {
	inputDir  string
	outputDir string
}

type Option func(*Simulator) error

func NewSimulator(optFuncs ...Option) (*Simulator, error) {
	var simulator Simulator
	for _, opt := range optFuncs {
		if err := opt(&simulator); err != nil {
			return nil, err
		}
	}
	if simulator.inputDir == "" {
		simulator.inputDir = defaultInputDir
	}
	if simulator.outputDir == "" {
		simulator.outputDir = defaultOutputDir
	}

	return &simulator, nil
}

func WithInputDir(dir string) Option {
	return func(s *Simulator) error {
		if dir == "" {
			return fmt.Errorf("input directory cannot be empty")
		}
		s.inputDir = dir
		return nil
	}
}

func WithOutputDir(dir string) Option {
	return func(s *Simulator) error {
		if dir == "" {
			return fmt.Errorf("output directory cannot be empty")
		}
		s.outputDir = dir
		return nil
	}
}

type Result struct {
	GameUuid string
	States   []string
	Summary  mb.Summary
}

// Run reads inputFile from the input directory, simulates it and writes the
// final ship states to outputFile in the output directory. Per-operation
// failures are logged and do not make Run fail.
func (s *Simulator) Run(inputFile, outputFile string) (*Result, error) {
	inputPath := filepath.Join(s.inputDir, inputFile)
	outputPath := filepath.Join(s.outputDir, outputFile)

	log.Info().Str("path", inputPath).Msg("reading simulation setup")
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", inputPath, err)
	}
	defer f.Close()

	result, err := Simulate(f)
	if err != nil {
		return nil, fmt.Errorf("simulation of %q failed: %w", inputPath, err)
	}

	if err := writeStates(outputPath, result.States); err != nil {
		return nil, err
	}

	log.Info().
		Str("game", result.GameUuid).
		Str("path", outputPath).
		Int("ships", len(result.States)).
		Msg("output written")
	return result, nil
}

// Simulate parses r, places the ships and applies every operation.
// Parse and placement errors abort; operation errors do not.
func Simulate(r io.Reader) (*Result, error) {
	setup, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}

	game, err := mb.NewGame(setup.Size)
	if err != nil {
		return nil, err
	}

	if err := game.PlaceShips(setup.Ships); err != nil {
		return nil, err
	}

	summary := game.ExecuteAll(setup.Operations)
	log.Info().
		Str("game", game.Uuid()).
		Int("applied", summary.Applied).
		Int("failed", summary.Failed).
		Int("hits", summary.Hits).
		Int("misses", summary.Misses).
		Msg("simulation finished")

	return &Result{
		GameUuid: game.Uuid(),
		States:   game.FinalShipStates(),
		Summary:  summary,
	}, nil
}

func writeStates(path string, states []string) error {
	if err := os.MkdirAll(filepath.Dir(path), outputDirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, state := range states {
		if _, err := w.WriteString(state + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("failed to write output file %q: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	return f.Close()
}
