package estimate

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brutedict/internal/charset"
	"brutedict/internal/generator"
	"brutedict/internal/token"
)

func TestMix(t *testing.T) {
	assert.Equal(t, int64(4), Mix(2, 2).Int64())
	assert.Equal(t, int64(3+6+6), Mix(3, 3).Int64())
	assert.Equal(t, int64(3), Mix(3, 1).Int64())
	assert.Equal(t, int64(0), Mix(0, 3).Int64())
	assert.Equal(t, int64(0), Mix(3, 0).Int64())
}

func TestPermutations(t *testing.T) {
	assert.Equal(t, int64(60), Permutations(5, 3).Int64())
	assert.Equal(t, int64(1), Permutations(5, 0).Int64())
	assert.Equal(t, int64(0), Permutations(2, 3).Int64())
}

func TestSeparators(t *testing.T) {
	assert.Equal(t, int64(6), Separators(2, 2, true).Int64())
	assert.Equal(t, int64(4), Separators(2, 5, false).Int64())
	assert.Equal(t, int64(15), Separators(3, 3, false).Int64())
	assert.Equal(t, int64(0), Separators(0, 3, true).Int64())
	assert.Equal(t, int64(0), Separators(3, 0, true).Int64())

	// 32 + 32^2 + ... + 32^13 does not fit in an int64.
	huge := Separators(32, 13, true)
	assert.Positive(t, huge.Sign())
	assert.False(t, huge.IsInt64())

	alphabet := []string{"!", "@", "#", "$"}
	for n := 1; n <= len(alphabet); n++ {
		for l := 1; l <= 3; l++ {
			for _, repeat := range []bool{true, false} {
				want := len(charset.Separators(alphabet[:n], l, repeat))
				assert.Equal(t, int64(want), Separators(n, l, repeat).Int64(), "n=%d l=%d repeat=%v", n, l, repeat)
			}
		}
	}
}

func TestMaxVariants(t *testing.T) {
	groups := token.BuildGroups("Ana", "Lima", []string{"Annie"}, nil)
	assert.Equal(t, 4, MaxVariants(groups, token.Policy{}))
	assert.Equal(t, 4, MaxVariants(groups, token.Policy{Mode: token.ModeTokens, Scope: token.ScopeBoth}))

	lower := token.BuildGroups("ana", "lima", []string{"annie"}, nil)
	assert.Equal(t, 2, MaxVariants(lower, token.Policy{}))
	assert.Equal(t, 4, MaxVariants(lower, token.Policy{Mode: token.ModeTokens, Scope: token.ScopePrimary}))
	assert.Equal(t, 0, MaxVariants(nil, token.Policy{}))
}

func TestEditorialSmall(t *testing.T) {
	// parts=1: 2 * 2 * 1 * (1+1*2) = 12
	// parts=2: 2 * 4 * 2 * (1+1*3) = 64
	got := Editorial(EditorialParams{
		Groups:                 2,
		Numbers:                1,
		Symbols:                1,
		MaxParts:               3,
		MaxSymbolsPerSeparator: 1,
		AllowRepeatSymbols:     true,
	})
	assert.Equal(t, int64(76), got.Int64())

	assert.Equal(t, int64(0), Editorial(EditorialParams{MaxParts: 3}).Int64())
}

func TestEditorialMonotonic(t *testing.T) {
	base := EditorialParams{
		Groups:                 2,
		Numbers:                1,
		Symbols:                1,
		MaxParts:               1,
		MaxSymbolsPerSeparator: 2,
		AllowRepeatSymbols:     true,
	}
	grow := map[string]func(*EditorialParams){
		"max parts": func(p *EditorialParams) { p.MaxParts++ },
		"groups":    func(p *EditorialParams) { p.Groups++ },
		"numbers":   func(p *EditorialParams) { p.Numbers++ },
		"symbols":   func(p *EditorialParams) { p.Symbols++ },
	}
	for name, step := range grow {
		t.Run(name, func(t *testing.T) {
			p := base
			prev := Editorial(p)
			for range 5 {
				step(&p)
				next := Editorial(p)
				assert.GreaterOrEqual(t, next.Cmp(prev), 0)
				prev = next
			}
		})
	}
}

func TestEditorialLargeSeparatorSets(t *testing.T) {
	base := EditorialParams{
		Groups:                 2,
		Numbers:                1,
		Symbols:                32,
		MaxParts:               3,
		MaxSymbolsPerSeparator: 13,
		AllowRepeatSymbols:     true,
	}
	grow := map[string]func(*EditorialParams){
		"symbols":     func(p *EditorialParams) { p.Symbols += 16 },
		"max symbols": func(p *EditorialParams) { p.MaxSymbolsPerSeparator += 8 },
	}
	for name, step := range grow {
		t.Run(name, func(t *testing.T) {
			p := base
			prev := Editorial(p)
			require.Positive(t, prev.Sign())
			require.True(t, Exceeds(prev, DefaultThreshold))
			for range 4 {
				step(&p)
				next := Editorial(p)
				assert.Positive(t, next.Sign())
				assert.True(t, Exceeds(next, DefaultThreshold))
				assert.Positive(t, next.Cmp(prev))
				prev = next
			}
		})
	}
}

func TestEditorialBoundsEngineOutput(t *testing.T) {
	tests := []struct {
		name    string
		groups  []token.Group
		numbers []string
		symbols []string
		policy  token.Policy
	}{
		{
			name: "single token groups firstchar",
			groups: []token.Group{
				token.NewGroup(token.Primary, "ana"),
				token.NewGroup(token.Secondary, "lima"),
				token.NewGroup(token.Other, "rex"),
			},
			numbers: []string{"1", "22"},
			symbols: []string{"_", "."},
			policy:  token.Policy{Mode: token.ModeFirstChar},
		},
		{
			name:   "alternates with capitalized tokens",
			groups: token.BuildGroups("Ana", "Lima", []string{"Annie", "Anita", "Nana"}, []string{"Limo", "Lim"}),
			policy: token.Policy{Mode: token.ModeTokens, Scope: token.ScopeBoth},
		},
		{
			name:    "alternates with numbers and symbols",
			groups:  token.BuildGroups("ana", "lima", []string{"annie", "nana"}, []string{"limo"}),
			numbers: []string{"7"},
			symbols: []string{"-"},
			policy:  token.Policy{Mode: token.ModeTokens, Scope: token.ScopePrimary},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := generator.DefaultConfig()
			cfg.MinLen = 1
			cfg.MaxSymbolsPerSeparator = 2
			e, err := generator.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
			require.NoError(t, err)

			got, err := e.Editorial(context.Background(), generator.EditorialInput{
				Groups:  tt.groups,
				Numbers: tt.numbers,
				Symbols: tt.symbols,
				Policy:  tt.policy,
			})
			require.NoError(t, err)
			require.NotEmpty(t, got)

			bound := Editorial(EditorialParams{
				Groups:                 len(tt.groups),
				Numbers:                len(tt.numbers),
				Symbols:                len(tt.symbols),
				MaxParts:               cfg.MaxParts,
				MaxSymbolsPerSeparator: cfg.MaxSymbolsPerSeparator,
				AllowRepeatSymbols:     cfg.AllowRepeatSymbols,
				FirstChar:              tt.policy.FirstChar(),
				VariantsPerSlot:        MaxVariants(tt.groups, tt.policy),
			})
			assert.LessOrEqual(t, big.NewInt(int64(len(got))).Cmp(bound), 0, "got %d candidates, bound %s", len(got), bound)
		})
	}
}

func TestExceeds(t *testing.T) {
	assert.False(t, Exceeds(big.NewInt(DefaultThreshold), DefaultThreshold))
	assert.True(t, Exceeds(big.NewInt(DefaultThreshold+1), DefaultThreshold))
}
