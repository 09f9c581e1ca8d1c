// Package prompt collects interactive answers from the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrClosed is returned when input ends before an answer is given.
var ErrClosed = errors.New("input closed")

// Labeler renders the question shown before reading an answer.
type Labeler interface {
	Prompt(label, def string) string
}

type plainLabeler struct{}

func (plainLabeler) Prompt(label, def string) string {
	if def == "" {
		return label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", label, def)
}

// Prompter reads answers line by line.
type Prompter struct {
	r     *bufio.Reader
	w     io.Writer
	label Labeler
}

// New returns a Prompter reading from r and writing questions to w.
// A nil labeler renders plain "label [default]: " questions.
func New(r io.Reader, w io.Writer, labeler Labeler) *Prompter {
	if labeler == nil {
		labeler = plainLabeler{}
	}
	return &Prompter{r: bufio.NewReader(r), w: w, label: labeler}
}

func (p *Prompter) readLine(label, def string) (string, error) {
	fmt.Fprint(p.w, p.label.Prompt(label, def))
	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// String asks for free text, returning def on an empty answer.
func (p *Prompter) String(label, def string) (string, error) {
	line, err := p.readLine(label, def)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// YesNo asks a yes/no question. Only answers starting with "y" are affirmative.
func (p *Prompter) YesNo(label string, def bool) (bool, error) {
	defStr := "y"
	if !def {
		defStr = "n"
	}
	line, err := p.readLine(label+" (y/n)", defStr)
	if err != nil {
		return false, err
	}
	if line == "" {
		return def, nil
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

// Int asks for an integer of at least minValue, re-asking on invalid input.
func (p *Prompter) Int(label string, def, minValue int) (int, error) {
	for {
		line, err := p.readLine(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < minValue {
			fmt.Fprintf(p.w, "Please enter an integer of at least %d.\n", minValue)
			continue
		}
		return v, nil
	}
}
