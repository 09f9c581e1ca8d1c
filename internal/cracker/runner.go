// Package cracker runs a wordlist against an encrypted ZIP archive on a pool of workers.
package cracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"brutedict/internal/verifier"
)

// ErrNoArchive is returned by NewRunner when Config.ZipBytes is empty.
var ErrNoArchive = errors.New("no zip data")

// Stats is a snapshot of cumulative attempts.
type Stats struct {
	PerWorker []uint64
	Total     uint64
	Timestamp time.Time
}

// Result is published once per run.
type Result struct {
	Found    bool
	Password string
	Attempts uint64
}

type Config struct {
	ZipBytes []byte
	Words    []string

	Workers     int
	BatchSize   int
	ReportEvery time.Duration
	// FoundCallback runs on the worker goroutine that found the password.
	FoundCallback func(password string)

	// Verifier defaults to verifier.NewCPU().
	Verifier verifier.Verifier
	Logger   *slog.Logger
}

// Runner feeds the wordlist to workers in batches and publishes periodic
// Stats and a single Result.
type Runner struct {
	cfg Config

	stats   chan Stats
	results chan Result
	done    chan struct{}

	publish sync.Once
	mu      sync.Mutex
	result  Result

	attempts []atomic.Uint64
}

func NewRunner(cfg Config) (*Runner, error) {
	if len(cfg.ZipBytes) == 0 {
		return nil, ErrNoArchive
	}
	cfg.Workers = max(cfg.Workers, 1)
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1024
	}
	if cfg.ReportEvery <= 0 {
		cfg.ReportEvery = 2 * time.Second
	}
	if cfg.Verifier == nil {
		cfg.Verifier = verifier.NewCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Runner{
		cfg:      cfg,
		stats:    make(chan Stats, 8),
		results:  make(chan Result, 1),
		done:     make(chan struct{}),
		attempts: make([]atomic.Uint64, cfg.Workers),
	}, nil
}

// StatsCh is closed after the final snapshot.
func (r *Runner) StatsCh() <-chan Stats { return r.stats }

// ResultCh carries the Result and is then closed.
func (r *Runner) ResultCh() <-chan Result { return r.results }

// Total is the number of candidates the run will try at most.
func (r *Runner) Total() int { return len(r.cfg.Words) }

func (r *Runner) GetResult() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Wait blocks until the run finishes and returns its result.
func (r *Runner) Wait() Result {
	<-r.done
	return r.GetResult()
}

func (r *Runner) finish(res Result) {
	r.publish.Do(func() {
		res.Attempts = r.snapshot(time.Time{}).Total
		r.mu.Lock()
		r.result = res
		r.mu.Unlock()
		r.results <- res
	})
}

func (r *Runner) snapshot(at time.Time) Stats {
	s := Stats{PerWorker: make([]uint64, len(r.attempts)), Timestamp: at}
	for i := range r.attempts {
		s.PerWorker[i] = r.attempts[i].Load()
		s.Total += s.PerWorker[i]
	}
	return s
}

// Start creates one verifier worker per goroutine and launches the run in
// the background. It returns once every worker is ready.
func (r *Runner) Start(parent context.Context) error {
	workers := make([]verifier.Worker, 0, r.cfg.Workers)
	for range r.cfg.Workers {
		w, err := r.cfg.Verifier.NewWorker(r.cfg.ZipBytes)
		if err != nil {
			for _, w := range workers {
				w.Close()
			}
			return fmt.Errorf("create verifier worker: %w", err)
		}
		workers = append(workers, w)
	}
	r.cfg.Logger.Info("crack run started",
		slog.Int("workers", r.cfg.Workers),
		slog.Int("candidates", len(r.cfg.Words)),
		slog.Int("batch_size", r.cfg.BatchSize),
	)

	ctx, cancel := context.WithCancel(parent)
	jobs := make(chan batch, 2*r.cfg.Workers)

	var wg sync.WaitGroup
	for id, w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.work(ctx, cancel, id, w, jobs)
		}()
	}
	go r.feed(ctx, jobs)

	idle := make(chan struct{})
	reported := make(chan struct{})
	go r.report(idle, reported)

	go func() {
		wg.Wait()
		cancel()
		close(idle)
		<-reported
		close(r.stats)
		r.finish(Result{})
		close(r.results)

		res := r.GetResult()
		r.cfg.Logger.Info("crack run finished",
			slog.Bool("found", res.Found),
			slog.Uint64("attempts", res.Attempts),
		)
		close(r.done)
	}()
	return nil
}

// work verifies batches until jobs drain, ctx ends or a password matches.
func (r *Runner) work(ctx context.Context, cancel context.CancelFunc, id int, w verifier.Worker, jobs <-chan batch) {
	defer w.Close()
	for {
		var b batch
		select {
		case <-ctx.Done():
			return
		case next, ok := <-jobs:
			if !ok {
				return
			}
			b = next
		}

		idx, n := w.BatchVerify(b)
		r.attempts[id].Add(uint64(n))
		if idx < 0 || idx >= len(b) {
			continue
		}
		r.finish(Result{Found: true, Password: b[idx]})
		if r.cfg.FoundCallback != nil {
			r.cfg.FoundCallback(b[idx])
		}
		cancel()
		return
	}
}

func (r *Runner) feed(ctx context.Context, jobs chan<- batch) {
	defer close(jobs)
	for _, b := range batches(r.cfg.Words, r.cfg.BatchSize) {
		select {
		case <-ctx.Done():
			return
		case jobs <- b:
		}
	}
}

// report sends a snapshot every ReportEvery, skipping ticks the consumer is
// too slow for. Once idle is closed it sends a final snapshot, evicting the
// oldest queued one if needed, and closes reported.
func (r *Runner) report(idle <-chan struct{}, reported chan<- struct{}) {
	defer close(reported)
	tick := time.NewTicker(r.cfg.ReportEvery)
	defer tick.Stop()
	for {
		select {
		case now := <-tick.C:
			select {
			case r.stats <- r.snapshot(now):
			default:
			}
		case <-idle:
			last := r.snapshot(time.Now())
			for {
				select {
				case r.stats <- last:
					return
				default:
				}
				select {
				case <-r.stats:
				default:
				}
			}
		}
	}
}
