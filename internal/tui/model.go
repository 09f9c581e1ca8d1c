// Package tui renders the live view of a crack run.
package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"brutedict/internal/cracker"
)

// Config wires the view to a running cracker.Runner.
type Config struct {
	Title       string
	Workers     int
	SampleEvery time.Duration
	StatsCh     <-chan cracker.Stats
	ResultCh    <-chan cracker.Result
	// Stop is called when the operator quits the view.
	Stop func()

	// Total is the wordlist size, used for progress and ETA when positive.
	Total int
}

type (
	statsMsg        cracker.Stats
	statsClosedMsg  struct{}
	resultMsg       cracker.Result
	resultClosedMsg struct{}
)

func waitStats(ch <-chan cracker.Stats) tea.Cmd {
	return func() tea.Msg {
		if s, ok := <-ch; ok {
			return statsMsg(s)
		}
		return statsClosedMsg{}
	}
}

func waitResult(ch <-chan cracker.Result) tea.Cmd {
	return func() tea.Msg {
		if r, ok := <-ch; ok {
			return resultMsg(r)
		}
		return resultClosedMsg{}
	}
}

type model struct {
	cfg Config

	// rates holds the attempts per second of each worker over the last sample.
	rates      []float64
	prevCounts []uint64
	prevSample time.Time
	attempts   uint64

	outcome  string // "" while running, then "found" or "exhausted"
	password string

	pending int // open channels
	started time.Time
	digits  int
}

// NewModel returns the bubbletea model for one crack run.
func NewModel(cfg Config) model {
	if cfg.Title == "" {
		cfg.Title = "Wordlist check"
	}
	return model{
		cfg:        cfg,
		rates:      make([]float64, cfg.Workers),
		prevCounts: make([]uint64, cfg.Workers),
		pending:    2,
		started:    time.Now(),
		digits:     len(strconv.Itoa(cfg.Workers)),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitStats(m.cfg.StatsCh), waitResult(m.cfg.ResultCh))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if k := msg.String(); k == "q" || k == "ctrl+c" || k == "esc" {
			if m.cfg.Stop != nil {
				m.cfg.Stop()
			}
			return m, tea.Quit
		}
		return m, nil

	case statsMsg:
		m.sample(cracker.Stats(msg))
		return m, waitStats(m.cfg.StatsCh)

	case resultMsg:
		if msg.Found {
			m.outcome, m.password = "found", msg.Password
			return m, tea.Quit
		}
		m.outcome = "exhausted"
		return m, waitResult(m.cfg.ResultCh)

	case statsClosedMsg, resultClosedMsg:
		m.pending--
		if m.pending == 0 {
			return m, tea.Quit
		}
	}
	return m, nil
}

// sample turns cumulative per-worker counters into rates.
func (m *model) sample(s cracker.Stats) {
	m.attempts = s.Total
	if m.prevSample.IsZero() {
		m.prevSample = s.Timestamp
		copy(m.prevCounts, s.PerWorker)
		return
	}
	elapsed := s.Timestamp.Sub(m.prevSample).Seconds()
	if elapsed <= 0 {
		elapsed = max(m.cfg.SampleEvery.Seconds(), 1)
	}
	n := min(len(m.rates), len(s.PerWorker))
	for i := range n {
		m.rates[i] = float64(s.PerWorker[i]-m.prevCounts[i]) / elapsed
		m.prevCounts[i] = s.PerWorker[i]
	}
	m.prevSample = s.Timestamp
}
