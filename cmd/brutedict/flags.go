package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"brutedict/cmd/brutedict/commands"
	"brutedict/internal/estimate"
	"brutedict/internal/generator"
	"brutedict/internal/style"
)

// generationFlags are shared by the root command and its subcommands.
func generationFlags() []cli.Flag {
	def := generator.DefaultConfig()
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "min-len",
			Value: def.MinLen,
			Usage: "Minimum candidate length in characters",
		},
		&cli.IntFlag{
			Name:  "max-len",
			Value: def.MaxLen,
			Usage: "Maximum candidate length in characters",
		},
		&cli.IntFlag{
			Name:  "max-parts",
			Value: def.MaxParts,
			Usage: "Maximum number of token groups per candidate",
		},
		&cli.IntFlag{
			Name:  "max-symbols",
			Value: def.MaxSymbolsPerSeparator,
			Usage: "Maximum symbols forming one separator",
		},
		&cli.BoolFlag{
			Name:  "repeat-symbols",
			Value: def.AllowRepeatSymbols,
			Usage: "Allow a symbol to repeat inside one separator",
		},
		&cli.Int64Flag{
			Name:  "threshold",
			Value: estimate.DefaultThreshold,
			Usage: "Estimated size above which confirmation is required",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Concurrent workers (0 uses all CPUs)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "output.txt",
			Usage:   "Wordlist output path",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Skip the confirmation for large estimates",
		},
		&cli.BoolFlag{
			Name:  "no-shuffle",
			Usage: "Save candidates in sorted order",
		},
		&cli.StringFlag{
			Name:  "zip",
			Usage: "Encrypted ZIP archive to test the candidates against",
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Value: 1024,
			Usage: "Candidates handed to a crack worker at once",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Abort after this duration (0 disables)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "Log level: debug, info, warn or error",
		},
	}
}

func options(cmd *cli.Command) commands.Options {
	opts := commands.DefaultOptions()
	opts.Config.MinLen = int(cmd.Int("min-len"))
	opts.Config.MaxLen = int(cmd.Int("max-len"))
	opts.Config.MaxParts = int(cmd.Int("max-parts"))
	opts.Config.MaxSymbolsPerSeparator = int(cmd.Int("max-symbols"))
	opts.Config.AllowRepeatSymbols = cmd.Bool("repeat-symbols")
	opts.Config.Workers = int(cmd.Int("workers"))
	opts.Threshold = cmd.Int64("threshold")
	opts.Output = cmd.String("output")
	opts.AssumeYes = cmd.Bool("yes")
	opts.NoShuffle = cmd.Bool("no-shuffle")
	opts.Zip = cmd.String("zip")
	opts.BatchSize = int(cmd.Int("batch-size"))
	opts.Color = style.Detect(os.Stdout)
	return opts
}

func newLogger(cmd *cli.Command) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	if d := cmd.Duration("timeout"); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
