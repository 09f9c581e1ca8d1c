// Package commands contains the CLI command implementations.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"os"
	"time"

	"brutedict/internal/estimate"
	"brutedict/internal/generator"
	"brutedict/internal/prompt"
	"brutedict/internal/style"
	"brutedict/internal/tui"
	"brutedict/internal/wordlist"
)

// ErrReported marks failures already explained to the operator.
var ErrReported = errors.New("reported to operator")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Options are the settings shared by both generation strategies.
type Options struct {
	Config    generator.Config
	Threshold int64
	AssumeYes bool
	Output    string
	NoShuffle bool
	// Zip, when set, runs the saved candidates against this archive.
	Zip       string
	BatchSize int
	// Color enables ANSI styling and the live crack view.
	Color bool
	// Rand shuffles the output; nil seeds a fresh generator.
	Rand *rand.Rand
}

// DefaultOptions returns the reference settings.
func DefaultOptions() Options {
	return Options{
		Config:    generator.DefaultConfig(),
		Threshold: estimate.DefaultThreshold,
		Output:    "output.txt",
		BatchSize: 1024,
	}
}

type session struct {
	io     IOTuple
	out    *style.Printer
	ask    *prompt.Prompter
	logger *slog.Logger
	opts   Options
}

func newSession(streams IOTuple, logger *slog.Logger, opts Options) *session {
	out := style.NewPrinter(streams.Writer, opts.Color)
	if logger == nil {
		logger = slog.Default()
	}
	return &session{
		io:     streams,
		out:    out,
		ask:    prompt.New(streams.Reader, streams.Writer, out),
		logger: logger,
		opts:   opts,
	}
}

// confirm applies the estimate gate. It returns false when the operator
// declines a run above the threshold.
func (s *session) confirm(bound *big.Int) (bool, error) {
	s.logger.Debug("estimate computed",
		slog.String("bound", bound.String()),
		slog.Int64("threshold", s.opts.Threshold),
	)
	if !estimate.Exceeds(bound, s.opts.Threshold) {
		s.out.Info("Estimated combinations: %s", s.out.CountBig(bound))
		return true, nil
	}
	s.out.Warn("Estimated combinations: %s. This may take a long time and use a lot of RAM.", s.out.CountBig(bound))
	if s.opts.AssumeYes {
		return true, nil
	}
	ok, err := s.ask.YesNo("Continue anyway?", false)
	if err != nil {
		return false, err
	}
	if !ok {
		s.out.Error("Operation cancelled by user.")
	}
	return ok, nil
}

// persist shuffles, saves and optionally cracks the generated candidates.
func (s *session) persist(ctx context.Context, words []string) error {
	if len(words) == 0 {
		s.out.Error("No combinations found matching the length criteria.")
		return fmt.Errorf("%w: %w", ErrReported, generator.ErrEmptyResult)
	}
	if !s.opts.NoShuffle {
		rng := s.opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		wordlist.Shuffle(words, rng)
	}

	fmt.Fprintln(s.io.Writer)
	start := time.Now()
	lastPct := -1
	err := wordlist.Write(s.opts.Output, words, func(done, total int) {
		pct := done * 100 / total
		if pct == lastPct {
			return
		}
		lastPct = pct
		percent := float64(done) / float64(total)
		s.out.Progress("Saving", tui.ProgressBar(percent, 40), percent, done, total)
	})
	if err != nil {
		fmt.Fprintln(s.io.Writer)
		s.out.Error("Error while saving: %v", err)
		return err
	}
	s.out.ProgressDone("Save complete.")
	s.logger.Info("wordlist saved",
		slog.String("path", s.opts.Output),
		slog.Int("candidates", len(words)),
		slog.Duration("elapsed", time.Since(start)),
	)
	s.out.Summary(len(words), s.opts.Output)

	if s.opts.Zip == "" {
		return nil
	}
	return s.crack(ctx, s.opts.Zip, words)
}

// reportInput turns precondition failures into operator messages.
func (s *session) reportInput(err error) error {
	switch {
	case errors.Is(err, generator.ErrNoGroups):
		s.out.Error("No valid tokens provided. Exiting.")
	case errors.Is(err, generator.ErrNoKeywords):
		s.out.Error("No keywords provided. Exiting.")
	default:
		return err
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}
