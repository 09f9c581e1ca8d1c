package token

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects how capitalized variants are produced.
type Mode int

const (
	// ModeNone emits tokens as given plus their lowercase form.
	ModeNone Mode = iota
	// ModeTokens adds a first-letter-uppercase variant to tokens whose kind is in scope.
	ModeTokens
	// ModeFirstChar adds an uppercase-first-character variant of every assembled candidate.
	ModeFirstChar
)

func (m Mode) String() string {
	switch m {
	case ModeTokens:
		return "tokens"
	case ModeFirstChar:
		return "firstchar"
	default:
		return "none"
	}
}

// ParseMode maps user input to a Mode. Unknown input yields ModeNone.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tokens", "token", "t":
		return ModeTokens
	case "firstchar", "first", "f":
		return ModeFirstChar
	default:
		return ModeNone
	}
}

// Scope is the set of kinds that receive a capitalized variant in ModeTokens.
type Scope int

const (
	// ScopeNone capitalizes no tokens.
	ScopeNone Scope = iota
	// ScopePrimary capitalizes the primary identifier and its alternates.
	ScopePrimary
	// ScopeSecondary capitalizes the secondary identifier and its alternates.
	ScopeSecondary
	// ScopeBoth capitalizes primary and secondary tokens.
	ScopeBoth
)

func (s Scope) String() string {
	switch s {
	case ScopePrimary:
		return "primary"
	case ScopeSecondary:
		return "secondary"
	case ScopeBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseScope maps user input to a Scope. Empty input means both slots;
// anything unrecognised falls back to the primary slot.
func ParseScope(s string) Scope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "b":
		return ScopeBoth
	case "secondary", "surnames", "surname", "s":
		return ScopeSecondary
	case "none":
		return ScopeNone
	default:
		return ScopePrimary
	}
}

// Includes reports whether tokens of kind k are in scope.
func (s Scope) Includes(k Kind) bool {
	switch k {
	case Primary:
		return s == ScopePrimary || s == ScopeBoth
	case Secondary:
		return s == ScopeSecondary || s == ScopeBoth
	default:
		return false
	}
}

// Policy is the capitalization policy applied during generation.
type Policy struct {
	Mode  Mode
	Scope Scope
}

// Capitalizes reports whether tokens of kind k get a capitalized variant.
func (p Policy) Capitalizes(k Kind) bool {
	return p.Mode == ModeTokens && p.Scope.Includes(k)
}

// FirstChar reports whether assembled candidates get an uppercase-first variant.
func (p Policy) FirstChar() bool {
	return p.Mode == ModeFirstChar
}

// Variants returns the sorted surface forms of t: the original text, its
// lowercase form and, when t's kind is in scope, the text with its first
// character uppercased. Empty text has no variants.
func (p Policy) Variants(t Token) []string {
	if t.Text == "" {
		return nil
	}
	out := []string{t.Text, cases.Lower(language.Und).String(t.Text)}
	if p.Capitalizes(t.Kind) {
		out = append(out, FirstUpper(t.Text))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// FirstUpper uppercases the first character of s and leaves the rest unchanged.
func FirstUpper(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// StartsWithLetter reports whether the first character of s is alphabetic.
func StartsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLetter(r)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
