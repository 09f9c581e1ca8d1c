package generator

import (
	"context"
	"iter"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many enumeration steps a branch takes between
// context checks. Steps are counted whether or not they produce a candidate
// inside the length window.
const cancelCheckEvery = 256

// poller watches ctx on behalf of one branch.
type poller struct {
	ctx context.Context
	n   int
}

// cancelled records one step and reports whether ctx is done. The context
// is consulted on the first step and every cancelCheckEvery steps after.
func (p *poller) cancelled() bool {
	check := p.n%cancelCheckEvery == 0
	p.n++
	return check && p.ctx.Err() != nil
}

// Engine runs either strategy under a validated Config.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New validates cfg and returns an Engine. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger}, nil
}

// Config returns the engine's bounds.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) workers() int {
	if e.cfg.Workers > 0 {
		return e.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// candidateSet is the deduplicating output shared by all branches of one run.
type candidateSet struct {
	mu sync.Mutex
	m  map[string]struct{}
}

func newCandidateSet() *candidateSet {
	return &candidateSet{m: make(map[string]struct{})}
}

func (s *candidateSet) merge(local map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range local {
		s.m[c] = struct{}{}
	}
}

func (s *candidateSet) sorted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// collect drains every branch into one set. Branches run on up to
// e.workers() goroutines; each fills a private map that is merged once the
// branch completes, so the result does not depend on scheduling. Branches
// poll ctx themselves and stop early once it is done.
func (e *Engine) collect(ctx context.Context, strategy string, branches []iter.Seq[string]) ([]string, error) {
	start := time.Now()
	set := newCandidateSet()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for _, branch := range branches {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			local := make(map[string]struct{})
			for c := range branch {
				local[c] = struct{}{}
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			set.merge(local)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := set.sorted()
	e.logger.Info("generation complete",
		slog.String("strategy", strategy),
		slog.Int("branches", len(branches)),
		slog.Int("candidates", len(out)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}
