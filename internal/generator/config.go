// Package generator enumerates candidate passwords from token groups
// (editorial strategy) or from a flat keyword list (mix strategy).
package generator

import (
	"errors"
	"fmt"

	validation "github.com/jellydator/validation"
)

var (
	// ErrNoGroups is returned when no group yields a usable token.
	ErrNoGroups = errors.New("no usable token groups")
	// ErrNoKeywords is returned when the mix keyword list is empty.
	ErrNoKeywords = errors.New("no keywords")
	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("invalid generation config")
	// ErrEmptyResult reports that no candidate fell inside the length window.
	ErrEmptyResult = errors.New("no combinations matching the length criteria")
)

// Config bounds the enumeration.
type Config struct {
	// MinLen and MaxLen are the inclusive candidate length window, in characters.
	MinLen int
	MaxLen int
	// MaxParts caps how many groups (or keywords) one candidate combines.
	MaxParts int
	// MaxSymbolsPerSeparator caps how many atomic symbols form one separator.
	MaxSymbolsPerSeparator int
	// AllowRepeatSymbols lets a symbol appear more than once in a separator.
	AllowRepeatSymbols bool
	// Workers is the number of branches evaluated concurrently. Zero means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the reference bounds.
func DefaultConfig() Config {
	return Config{
		MinLen:                 6,
		MaxLen:                 25,
		MaxParts:               3,
		MaxSymbolsPerSeparator: 1,
		AllowRepeatSymbols:     true,
	}
}

// Validate checks the bounds before any enumeration runs.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.MinLen, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxLen, validation.Required, validation.Min(c.MinLen)),
		validation.Field(&c.MaxParts, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxSymbolsPerSeparator, validation.Min(0)),
		validation.Field(&c.Workers, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) inWindow(n int) bool {
	return n >= c.MinLen && n <= c.MaxLen
}
