// Package main provides the entry point for the wordlist generator.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"brutedict/cmd/brutedict/commands"
	"brutedict/internal/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:    "brutedict",
		Usage:   "Generate targeted password wordlists from personal data or keywords",
		Version: "1.0.0",
		Flags:   generationFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := withTimeout(ctx, cmd)
			defer cancel()
			return commands.RunInteractive(ctx, commands.DefaultIO(), newLogger(cmd), options(cmd))
		},
		Commands: []*cli.Command{
			{
				Name:  "editorial",
				Usage: "Combine name, surname and extra keyword groups with numbers and symbols",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "first",
						Aliases: []string{"f"},
						Usage:   "First name (primary identifier)",
					},
					&cli.StringFlag{
						Name:    "last",
						Aliases: []string{"l"},
						Usage:   "Last name (secondary identifier)",
					},
					&cli.StringFlag{
						Name:  "nicknames",
						Usage: "Comma-separated alternates for the first name",
					},
					&cli.StringFlag{
						Name:  "surnames",
						Usage: "Comma-separated alternates for the last name",
					},
					&cli.StringFlag{
						Name:  "extra",
						Usage: "Further keyword groups: comma-separated lists joined by ';'",
					},
					&cli.StringFlag{
						Name:    "numbers",
						Aliases: []string{"n"},
						Usage:   "Comma-separated numbers to place before, after or between tokens",
					},
					&cli.StringFlag{
						Name:    "symbols",
						Aliases: []string{"s"},
						Usage:   "Comma-separated separator symbols, or @common / @all",
					},
					&cli.StringFlag{
						Name:  "caps",
						Value: "none",
						Usage: "Capitalization mode: none, tokens or firstchar",
					},
					&cli.StringFlag{
						Name:  "caps-scope",
						Value: "both",
						Usage: "Groups capitalized in tokens mode: names, surnames or both",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ctx, cancel := withTimeout(ctx, cmd)
					defer cancel()
					return commands.RunEditorial(ctx, commands.DefaultIO(), newLogger(cmd), options(cmd), commands.EditorialArgs{
						Primary:       cmd.String("first"),
						Secondary:     cmd.String("last"),
						PrimaryAlts:   cmd.String("nicknames"),
						SecondaryAlts: cmd.String("surnames"),
						Extra:         cmd.String("extra"),
						Numbers:       cmd.String("numbers"),
						Symbols:       cmd.String("symbols"),
						CapsMode:      cmd.String("caps"),
						CapsScope:     cmd.String("caps-scope"),
					})
				},
			},
			{
				Name:  "mix",
				Usage: "Concatenate ordered selections of distinct keywords",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "keywords",
						Aliases:  []string{"k"},
						Required: true,
						Usage:    "Comma-separated keywords",
					},
					&cli.IntFlag{
						Name:    "max-words",
						Aliases: []string{"w"},
						Value:   3,
						Usage:   "Maximum keywords per candidate",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ctx, cancel := withTimeout(ctx, cmd)
					defer cancel()
					return commands.RunMix(ctx, commands.DefaultIO(), newLogger(cmd), options(cmd), commands.MixArgs{
						Keywords: cmd.String("keywords"),
						MaxWords: int(cmd.Int("max-words")),
					})
				},
			},
			{
				Name:  "crack",
				Usage: "Try every line of a saved wordlist as the password of an encrypted ZIP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "wordlist",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Wordlist file, one candidate per line",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ctx, cancel := withTimeout(ctx, cmd)
					defer cancel()
					return commands.RunCrack(ctx, commands.DefaultIO(), newLogger(cmd), commands.CrackOptions{
						Zip:       cmd.String("zip"),
						Wordlist:  cmd.String("wordlist"),
						Workers:   int(cmd.Int("workers")),
						BatchSize: int(cmd.Int("batch-size")),
						Color:     style.Detect(os.Stdout),
					})
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		if errors.Is(err, commands.ErrReported) {
			os.Exit(2)
		}
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
