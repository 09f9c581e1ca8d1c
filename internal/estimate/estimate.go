// Package estimate bounds how many candidates a generation run can produce
// before it is started, so the caller can ask for confirmation first.
package estimate

import (
	"math/big"

	"brutedict/internal/token"
)

const (
	// DefaultThreshold is the bound above which generation needs explicit confirmation.
	DefaultThreshold = 2_000_000
	// AvgVariantsPerSlot is the floor on surface forms assumed per group.
	AvgVariantsPerSlot = 2
)

// EditorialParams describes an editorial run for estimation.
type EditorialParams struct {
	Groups   int
	Numbers  int
	Symbols  int
	MaxParts int
	// MaxSymbolsPerSeparator and AllowRepeatSymbols size the separator set.
	MaxSymbolsPerSeparator int
	AllowRepeatSymbols     bool
	// FirstChar doubles every emission for the uppercase-first form.
	FirstChar bool
	// VariantsPerSlot is the largest variant list of any group, see
	// MaxVariants. Values below AvgVariantsPerSlot are raised to it.
	VariantsPerSlot int
}

// Editorial returns an upper bound on pre-filter candidates summed over
// parts = 1..min(MaxParts, Groups):
//
//	P(groups, parts) * V^parts * S^(parts-1) * (1 + N*(parts+1)) * F
//
// where S counts separator choices including the empty one and F is 2 in
// firstchar mode.
func Editorial(p EditorialParams) *big.Int {
	total := new(big.Int)
	if p.Groups <= 0 || p.MaxParts <= 0 {
		return total
	}
	v := int64(max(p.VariantsPerSlot, AvgVariantsPerSlot))
	seps := Separators(p.Symbols, p.MaxSymbolsPerSeparator, p.AllowRepeatSymbols)
	seps.Add(seps, big.NewInt(1))
	numbers := int64(max(p.Numbers, 0))

	term := new(big.Int)
	for parts := 1; parts <= min(p.MaxParts, p.Groups); parts++ {
		term.Set(Permutations(p.Groups, parts))
		term.Mul(term, new(big.Int).Exp(big.NewInt(v), big.NewInt(int64(parts)), nil))
		term.Mul(term, new(big.Int).Exp(seps, big.NewInt(int64(parts-1)), nil))
		term.Mul(term, big.NewInt(1+numbers*int64(parts+1)))
		if p.FirstChar {
			term.Lsh(term, 1)
		}
		total.Add(total, term)
	}
	return total
}

// MaxVariants returns the length of the longest variant list among groups
// under policy.
func MaxVariants(groups []token.Group, policy token.Policy) int {
	n := 0
	for _, g := range groups {
		n = max(n, len(g.Variants(policy)))
	}
	return n
}

// Separators returns the number of non-empty separator sequences of
// 1..maxLen symbols drawn from an alphabet of n symbols, with or without
// repetition. It bounds the size of charset.Separators from above.
func Separators(n, maxLen int, allowRepeat bool) *big.Int {
	total := new(big.Int)
	if n <= 0 || maxLen <= 0 {
		return total
	}
	if !allowRepeat {
		maxLen = min(maxLen, n)
	}
	term := big.NewInt(1)
	for k := 1; k <= maxLen; k++ {
		f := n
		if !allowRepeat {
			f = n - k + 1
		}
		term.Mul(term, big.NewInt(int64(f)))
		total.Add(total, term)
	}
	return total
}

// Mix returns the exact number of keyword permutations of length
// 1..min(maxWords, n).
func Mix(n, maxWords int) *big.Int {
	total := new(big.Int)
	for r := 1; r <= min(maxWords, n); r++ {
		total.Add(total, Permutations(n, r))
	}
	return total
}

// Permutations returns nPr, or zero when r is out of range.
func Permutations(n, r int) *big.Int {
	if r < 0 || r > n {
		return new(big.Int)
	}
	out := big.NewInt(1)
	for i := n; i > n-r; i-- {
		out.Mul(out, big.NewInt(int64(i)))
	}
	return out
}

// Exceeds reports whether bound is strictly above threshold.
func Exceeds(bound *big.Int, threshold int64) bool {
	return bound.Cmp(big.NewInt(threshold)) > 0
}
