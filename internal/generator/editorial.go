package generator

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"brutedict/internal/charset"
	"brutedict/internal/token"
)

// EditorialInput is everything the editorial strategy combines.
type EditorialInput struct {
	Groups  []token.Group
	Numbers []string
	Symbols []string
	Policy  token.Policy
}

// plan is the precomputed, read-only state shared by every branch.
type plan struct {
	cfg       Config
	variants  [][]string // per group
	seps      []string   // "" first
	numbers   []string   // "" first
	firstChar bool
}

// Editorial combines 1..MaxParts distinct groups in every order, joined by
// every separator choice, with at most one number placed before, after or
// between tokens. It returns the sorted set of candidates inside the length
// window.
func (e *Engine) Editorial(ctx context.Context, in EditorialInput) ([]string, error) {
	p := e.newPlan(in)
	if len(p.variants) == 0 {
		return nil, ErrNoGroups
	}

	var branches []iter.Seq[string]
	maxParts := min(e.cfg.MaxParts, len(p.variants))
	for parts := 1; parts <= maxParts; parts++ {
		before := len(branches)
		for perm := range permutations(len(p.variants), parts) {
			branches = append(branches, p.branch(ctx, slices.Clone(perm)))
		}
		e.logger.Debug("editorial level planned",
			slog.Int("parts", parts),
			slog.Int("permutations", len(branches)-before),
			slog.Int("separators", len(p.seps)),
			slog.Int("numbers", len(p.numbers)),
		)
	}
	return e.collect(ctx, "editorial", branches)
}

func (e *Engine) newPlan(in EditorialInput) *plan {
	p := &plan{
		cfg:       e.cfg,
		firstChar: in.Policy.FirstChar(),
	}
	for _, g := range in.Groups {
		if v := g.Variants(in.Policy); len(v) > 0 {
			p.variants = append(p.variants, v)
		}
	}
	symbols := charset.Combine(in.Symbols)
	p.seps = append([]string{""}, charset.Separators(symbols, e.cfg.MaxSymbolsPerSeparator, e.cfg.AllowRepeatSymbols)...)
	p.numbers = append([]string{""}, charset.Combine(in.Numbers)...)
	return p
}

// branch enumerates every candidate for one ordered selection of groups.
// It stops early once ctx is done.
func (p *plan) branch(ctx context.Context, perm []int) iter.Seq[string] {
	return func(yield func(string) bool) {
		poll := &poller{ctx: ctx}
		parts := len(perm)
		lists := make([][]string, parts)
		varSizes := make([]int, parts)
		for i, gi := range perm {
			lists[i] = p.variants[gi]
			varSizes[i] = len(lists[i])
		}
		sepSizes := make([]int, parts-1)
		for i := range sepSizes {
			sepSizes[i] = len(p.seps)
		}

		offsets := make([]int, parts)
		var b strings.Builder
		for sepIdx := range product(sepSizes) {
			for varIdx := range product(varSizes) {
				if poll.cancelled() {
					return
				}
				b.Reset()
				for i, vi := range varIdx {
					offsets[i] = b.Len()
					b.WriteString(lists[i][vi])
					if i < len(sepIdx) {
						b.WriteString(p.seps[sepIdx[i]])
					}
				}
				core := b.String()
				if !p.place(core, offsets, yield) {
					return
				}
			}
		}
	}
}

// place emits core with each number choice: bare for the empty number,
// otherwise prepended, appended and spliced in front of every token after
// the first.
func (p *plan) place(core string, offsets []int, yield func(string) bool) bool {
	for _, num := range p.numbers {
		if num == "" {
			if !p.emit(core, yield) {
				return false
			}
			continue
		}
		if !p.emit(num+core, yield) || !p.emit(core+num, yield) {
			return false
		}
		for _, off := range offsets[1:] {
			if !p.emit(core[:off]+num+core[off:], yield) {
				return false
			}
		}
	}
	return true
}

// emit yields c and, in firstchar mode, its uppercase-first form when it
// differs. Candidates outside the length window are dropped.
func (p *plan) emit(c string, yield func(string) bool) bool {
	if p.cfg.inWindow(utf8.RuneCountInString(c)) && !yield(c) {
		return false
	}
	if p.firstChar && token.StartsWithLetter(c) {
		if u := token.FirstUpper(c); u != c && p.cfg.inWindow(utf8.RuneCountInString(u)) {
			return yield(u)
		}
	}
	return true
}
