package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/saeidalz13/battleship-simulator/internal/config"
	"github.com/saeidalz13/battleship-simulator/internal/logger"
	"github.com/saeidalz13/battleship-simulator/simulation"
)

func newCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "battleship",
		Usage:     "simulate battleship movements and shots based on an input file",
		ArgsUsage: "<input_file> <output_file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input-dir",
				Usage: "directory the input file is read from",
				Value: cfg.InputDir,
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "directory the output file is written to",
				Value: cfg.OutputDir,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
				Value: cfg.LogLevel,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected 2 arguments <input_file> <output_file>, got %d", cmd.NArg())
			}
			logger.Init(cmd.String("log-level"), cfg.IsDev())

			simulator, err := simulation.NewSimulator(
				simulation.WithInputDir(cmd.String("input-dir")),
				simulation.WithOutputDir(cmd.String("output-dir")),
			)
			if err != nil {
				return err
			}

			_, err = simulator.Run(cmd.Args().Get(0), cmd.Args().Get(1))
			return err
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.IsDev())

	if err := newCommand(cfg).Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}
