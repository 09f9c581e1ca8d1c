package charset

import (
	"slices"
	"strings"
	"unicode"
)

// Named symbol presets accepted in a symbol list.
const (
	PresetCommon = "@common"
	PresetAll    = "@all"
)

// SpecialCommon returns a small, common set of separator symbols.
func SpecialCommon() []string {
	const s = "!@#$%^&*_-."
	return split(s)
}

// SpecialAll returns every printable ASCII punctuation character.
func SpecialAll() []string {
	out := make([]string, 0, 32)
	for r := rune(33); r <= rune(126); r++ {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		out = append(out, string(r))
	}
	return out
}

// ExpandSymbols replaces preset names with their symbols and de-duplicates
// the result, preserving first-seen order.
func ExpandSymbols(symbols []string) []string {
	sets := make([][]string, 0, len(symbols))
	for _, s := range symbols {
		switch s {
		case PresetCommon:
			sets = append(sets, SpecialCommon())
		case PresetAll:
			sets = append(sets, SpecialAll())
		default:
			sets = append(sets, []string{s})
		}
	}
	return Combine(sets...)
}

// SplitList splits a comma-separated list, trimming entries and dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Combine merges multiple lists into one, de-duplicated, preserving order.
// Blank entries are dropped.
func Combine(sets ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range sets {
		for _, v := range s {
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Separators returns every separator string of 1..maxLen atomic symbols,
// sorted and de-duplicated. With allowRepeat the sequences are drawn with
// replacement; otherwise no symbol appears twice and the length is capped
// at len(alphabet).
func Separators(alphabet []string, maxLen int, allowRepeat bool) []string {
	if len(alphabet) == 0 || maxLen <= 0 {
		return nil
	}
	if !allowRepeat {
		maxLen = min(maxLen, len(alphabet))
	}
	set := make(map[string]struct{})
	var walk func(prefix string, depth int, used []bool)
	walk = func(prefix string, depth int, used []bool) {
		if depth > 0 {
			set[prefix] = struct{}{}
		}
		if depth == maxLen {
			return
		}
		for i, sym := range alphabet {
			if !allowRepeat && used[i] {
				continue
			}
			used[i] = true
			walk(prefix+sym, depth+1, used)
			used[i] = false
		}
	}
	walk("", 0, make([]bool, len(alphabet)))

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
