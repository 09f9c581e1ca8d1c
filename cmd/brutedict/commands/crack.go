package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"brutedict/internal/cracker"
	"brutedict/internal/tui"
	"brutedict/internal/verifier"
	"brutedict/internal/wordlist"

	tea "github.com/charmbracelet/bubbletea"
	validation "github.com/jellydator/validation"
)

// CrackOptions configures a standalone run of a saved wordlist against an archive.
type CrackOptions struct {
	Zip       string
	Wordlist  string
	Workers   int
	BatchSize int
	Color     bool
}

func (o CrackOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Zip, validation.Required),
		validation.Field(&o.Wordlist, validation.Required),
		validation.Field(&o.Workers, validation.Min(0)),
		validation.Field(&o.BatchSize, validation.Min(0)),
	)
}

// RunCrack loads a wordlist from disk and tries every line as the archive password.
func RunCrack(ctx context.Context, streams IOTuple, logger *slog.Logger, opts CrackOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid crack options: %w", err)
	}
	words, err := wordlist.Load(ctx, opts.Wordlist)
	if err != nil {
		return fmt.Errorf("load wordlist: %w", err)
	}
	sessOpts := DefaultOptions()
	sessOpts.Config.Workers = opts.Workers
	if opts.BatchSize > 0 {
		sessOpts.BatchSize = opts.BatchSize
	}
	sessOpts.Color = opts.Color
	s := newSession(streams, logger, sessOpts)
	s.out.Info("Loaded %s candidates from %s", s.out.Count(len(words)), opts.Wordlist)
	return s.crack(ctx, opts.Zip, words)
}

func (s *session) crack(ctx context.Context, zipPath string, words []string) error {
	zipBytes, err := os.ReadFile(zipPath)
	if err != nil {
		return fmt.Errorf("read zip: %w", err)
	}
	info, err := verifier.Inspect(zipBytes)
	if err != nil {
		s.out.Error("Cannot use %s: %v", zipPath, err)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	s.logger.Debug("archive inspected",
		slog.String("path", zipPath),
		slog.Int("entries", info.Entries),
		slog.Int("encrypted", info.Encrypted),
		slog.String("target", info.Target),
		slog.Bool("prefiltered", info.Prefiltered),
	)
	s.out.Info("Testing %s candidates against %s (%s)", s.out.Count(len(words)), zipPath, info.Target)

	workers := s.opts.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	run, err := cracker.NewRunner(cracker.Config{
		ZipBytes:    zipBytes,
		Words:       words,
		Workers:     workers,
		BatchSize:   s.opts.BatchSize,
		ReportEvery: time.Second,
		Logger:      s.logger,
	})
	if err != nil {
		return err
	}
	if err := run.Start(ctx); err != nil {
		return err
	}

	if s.opts.Color {
		model := tui.NewModel(tui.Config{
			Title:       "Wordlist check: " + info.Target,
			Workers:     workers,
			SampleEvery: time.Second,
			StatsCh:     run.StatsCh(),
			ResultCh:    run.ResultCh(),
			Stop:        cancel,
			Total:       run.Total(),
		})
		if _, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(s.io.Writer)).Run(); err != nil {
			s.logger.Warn("live view stopped", slog.Any("error", err))
			cancel()
		}
	}
	res := run.Wait()

	if res.Found {
		s.out.Done("Password found: %s", res.Password)
		return nil
	}
	if ctx.Err() != nil {
		s.out.Error("Cancelled after %s attempts.", s.out.Count(int(res.Attempts)))
		return fmt.Errorf("%w: %w", ErrReported, ctx.Err())
	}
	s.out.Error("Password not in wordlist (%s attempts).", s.out.Count(int(res.Attempts)))
	return nil
}

