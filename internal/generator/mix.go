package generator

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"unicode/utf8"
)

// MixKeywords drops blank entries from keywords. Repeated keywords are kept:
// each occurrence is a separate position, so "ab" listed twice can form "abab".
func MixKeywords(keywords []string) []string {
	return slices.DeleteFunc(slices.Clone(keywords), func(kw string) bool { return kw == "" })
}

// Mix concatenates every ordered selection of 1..maxWords keyword positions,
// without separators, and returns the sorted set inside the length window.
// Keywords are cleaned by MixKeywords first. A non-positive maxWords yields
// an empty result.
func (e *Engine) Mix(ctx context.Context, keywords []string, maxWords int) ([]string, error) {
	kws := MixKeywords(keywords)
	if len(kws) == 0 {
		return nil, ErrNoKeywords
	}
	if maxWords <= 0 {
		return nil, nil
	}
	depth := min(maxWords, len(kws))

	// One branch per leading keyword.
	branches := make([]iter.Seq[string], len(kws))
	for i := range kws {
		branches[i] = e.mixBranch(ctx, kws, i, depth)
	}
	e.logger.Debug("mix planned",
		slog.Int("keywords", len(kws)),
		slog.Int("max_words", depth),
	)
	return e.collect(ctx, "mix", branches)
}

// mixBranch yields the concatenation of every keyword sequence of length
// 1..depth that starts with kws[first] and uses no position twice. It stops
// early once ctx is done.
func (e *Engine) mixBranch(ctx context.Context, kws []string, first, depth int) iter.Seq[string] {
	return func(yield func(string) bool) {
		poll := &poller{ctx: ctx}
		used := make([]bool, len(kws))
		var walk func(prefix string, n int) bool
		walk = func(prefix string, n int) bool {
			if poll.cancelled() {
				return false
			}
			if e.cfg.inWindow(utf8.RuneCountInString(prefix)) && !yield(prefix) {
				return false
			}
			if n == depth {
				return true
			}
			for i, kw := range kws {
				if used[i] {
					continue
				}
				used[i] = true
				ok := walk(prefix+kw, n+1)
				used[i] = false
				if !ok {
					return false
				}
			}
			return true
		}
		used[first] = true
		walk(kws[first], 1)
	}
}
