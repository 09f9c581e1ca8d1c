package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	rateWidth     = 7
	ratesPerRow   = 4
	progressWidth = 40
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	foundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.cfg.Title) + faintStyle.Render(" (q to quit)") + "\n")
	fmt.Fprintf(&b, "Workers: %d | Refresh: %s | Elapsed: %s\n\n",
		len(m.rates), m.cfg.SampleEvery, time.Since(m.started).Truncate(time.Second))

	var sum float64
	for i, r := range m.rates {
		sum += r
		fmt.Fprintf(&b, "[W%0*d %*.0f/s] ", m.digits, i+1, rateWidth, r)
		if (i+1)%ratesPerRow == 0 || i == len(m.rates)-1 {
			b.WriteByte('\n')
		}
	}

	if m.cfg.Total > 0 {
		p := percentOf(m.attempts, m.cfg.Total)
		fmt.Fprintf(&b, "\nProgress: %s %5.1f%% | ETA: %s\n",
			ProgressBar(p, progressWidth), p*100, etaString(m.attempts, m.cfg.Total, sum))
	}
	fmt.Fprintf(&b, "\nRate: %*.0f/s | Attempts total: %d\n", rateWidth, sum, m.attempts)

	switch m.outcome {
	case "found":
		b.WriteString("\n" + foundStyle.Render("Password found: "+m.password) + "\n")
	case "exhausted":
		b.WriteString("\nWordlist exhausted.\n")
	}
	return b.String()
}

// percentOf returns done/total clamped to [0,1].
func percentOf(done uint64, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Min(1, float64(done)/float64(total))
}

// etaString estimates the time left from the attempts made and the current rate.
func etaString(done uint64, total int, rate float64) string {
	switch {
	case done >= uint64(total):
		return "0s"
	case rate <= 0:
		return "∞"
	}
	secs := float64(uint64(total)-done) / rate
	if math.IsInf(secs, 0) || math.IsNaN(secs) {
		return "∞"
	}
	return humanizeDuration(time.Duration(secs * float64(time.Second)))
}

// humanizeDuration prints d as "1d 2h 3m 4s", dropping leading zero units.
func humanizeDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	total := int64(d / time.Second)
	units := []struct {
		suffix string
		secs   int64
	}{{"d", 86400}, {"h", 3600}, {"m", 60}, {"s", 1}}

	var parts []string
	for _, u := range units {
		v := total / u.secs
		total %= u.secs
		if v > 0 || len(parts) > 0 || u.suffix == "s" {
			parts = append(parts, strconv.FormatInt(v, 10)+u.suffix)
		}
	}
	return strings.Join(parts, " ")
}

// ProgressBar renders an ASCII bar of width cells for percent in [0,1].
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	percent = math.Max(0, math.Min(1, percent))
	filled := min(int(math.Round(percent*float64(width))), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
