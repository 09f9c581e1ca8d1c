// Package style renders operator-facing status lines. Colour is decided
// once, when the Printer is created.
package style

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const banner = `
 _                _            _ _      _
| |              | |          | (_)    | |
| |__  _ __ _   _| |_ ___   __| |_  ___| |_
| '_ \| '__| | | | __/ _ \ / _` + "`" + ` | |/ __| __|
| |_) | |  | |_| | ||  __/| (_| | | (__| |_
|_.__/|_|   \__,_|\__\___| \__,_|_|\___|\__|
`

// Detect reports whether w is a terminal that should receive colour.
func Detect(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	cyan, green, yellow, red, magenta, dim lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{plain, plain, plain, plain, plain, plain}
	}
	c := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return palette{
		cyan:    c("14"),
		green:   c("10"),
		yellow:  c("11"),
		red:     c("9"),
		magenta: c("13"),
		dim:     lipgloss.NewStyle().Faint(true),
	}
}

// Printer writes marked status lines such as "[+] Estimated combinations: 12".
type Printer struct {
	w   io.Writer
	p   palette
	num *message.Printer
}

// NewPrinter returns a Printer for w; color enables ANSI styling.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		w:   w,
		p:   newPalette(color),
		num: message.NewPrinter(language.English),
	}
}

// Count formats n with thousands separators.
func (p *Printer) Count(n int) string {
	return p.num.Sprintf("%d", n)
}

// CountBig formats n with thousands separators when it fits in an int64.
func (p *Printer) CountBig(n *big.Int) string {
	if n.IsInt64() {
		return p.num.Sprintf("%d", n.Int64())
	}
	return n.String()
}

func (p *Printer) line(marker string, markerStyle, textStyle lipgloss.Style, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", markerStyle.Render(marker), textStyle.Render(fmt.Sprintf(format, args...)))
}

// Banner prints the tool banner.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.p.green.Render(banner))
	fmt.Fprintln(p.w, p.p.dim.Render("Initializing module..."))
	fmt.Fprintln(p.w)
}

// Info prints a "[+]" line.
func (p *Printer) Info(format string, args ...any) {
	p.line("[+]", p.p.green, lipgloss.NewStyle(), format, args...)
}

// Notice prints a highlighted line without marker.
func (p *Printer) Notice(format string, args ...any) {
	fmt.Fprintln(p.w, p.p.magenta.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a "[!!]" line.
func (p *Printer) Warn(format string, args ...any) {
	p.line("[!!]", p.p.red, p.p.red, format, args...)
}

// Error prints a "[!]" line.
func (p *Printer) Error(format string, args ...any) {
	p.line("[!]", p.p.red, p.p.red, format, args...)
}

// Done prints a "[*]" line.
func (p *Printer) Done(format string, args ...any) {
	p.line("[*]", p.p.green, lipgloss.NewStyle(), format, args...)
}

// Menu prints a numbered option list under a title.
func (p *Printer) Menu(title string, options ...string) {
	p.line("[+]", p.p.green, p.p.magenta, "%s", title)
	for i, o := range options {
		fmt.Fprintf(p.w, "  %s) %s\n", p.p.yellow.Render(fmt.Sprint(i+1)), p.p.green.Render(o))
	}
	fmt.Fprintln(p.w)
}

// Prompt renders the label of an interactive question.
func (p *Printer) Prompt(label, def string) string {
	s := p.p.green.Render("[+]") + " " + p.p.cyan.Render(label)
	if def != "" {
		s += " [" + def + "]"
	}
	return s + ": "
}

// Progress redraws an in-place progress line; call ProgressDone afterwards.
func (p *Printer) Progress(label, bar string, percent float64, done, total int) {
	fmt.Fprintf(p.w, "\r%s %s %s %3.0f%% (%s/%s)",
		p.p.green.Render("[+]"), p.p.magenta.Render(label), bar, percent*100, p.Count(done), p.Count(total))
}

// ProgressDone finishes a progress line.
func (p *Printer) ProgressDone(msg string) {
	fmt.Fprintf(p.w, "\r%s %s%s\n", p.p.green.Render("[*]"), msg, strings.Repeat(" ", 70))
}

// Summary prints the closing box with the candidate total and output path.
func (p *Printer) Summary(total int, path string) {
	rule := p.p.green.Render("+" + strings.Repeat("=", 60))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, rule)
	p.line("[*]", p.p.green, lipgloss.NewStyle(), "%s: %s", p.p.magenta.Render("TOTAL COMBINATIONS"), p.p.yellow.Render(p.Count(total)))
	p.line("[*]", p.p.green, lipgloss.NewStyle(), "Saved to: %s", p.p.cyan.Render(path))
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w)
}
