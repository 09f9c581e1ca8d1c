package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyVariants(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		token  Token
		want   []string
	}{
		{
			name:   "primary in primary scope",
			policy: Policy{Mode: ModeTokens, Scope: ScopePrimary},
			token:  Token{Text: "ana", Kind: Primary},
			want:   []string{"Ana", "ana"},
		},
		{
			name:   "secondary outside primary scope",
			policy: Policy{Mode: ModeTokens, Scope: ScopePrimary},
			token:  Token{Text: "ana", Kind: Secondary},
			want:   []string{"ana"},
		},
		{
			name:   "mixed case keeps original and lowercase",
			policy: Policy{Mode: ModeNone},
			token:  Token{Text: "McKay", Kind: Secondary},
			want:   []string{"McKay", "mckay"},
		},
		{
			name:   "capitalized form leaves remainder unchanged",
			policy: Policy{Mode: ModeTokens, Scope: ScopeBoth},
			token:  Token{Text: "deLuca", Kind: Secondary},
			want:   []string{"DeLuca", "deLuca", "deluca"},
		},
		{
			name:   "firstchar mode adds no token variant",
			policy: Policy{Mode: ModeFirstChar, Scope: ScopeBoth},
			token:  Token{Text: "ana", Kind: Primary},
			want:   []string{"ana"},
		},
		{
			name:   "other kind never capitalized",
			policy: Policy{Mode: ModeTokens, Scope: ScopeBoth},
			token:  Token{Text: "rex", Kind: Other},
			want:   []string{"rex"},
		},
		{
			name:   "empty text",
			policy: Policy{Mode: ModeTokens, Scope: ScopeBoth},
			token:  Token{Text: "", Kind: Primary},
			want:   nil,
		},
		{
			name:   "non ascii",
			policy: Policy{Mode: ModeTokens, Scope: ScopePrimary},
			token:  Token{Text: "élodie", Kind: Primary},
			want:   []string{"Élodie", "élodie"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Variants(tt.token))
		})
	}
}

func TestGroupVariants(t *testing.T) {
	g := NewGroup(Primary, "Ana", "annie", "ana")
	p := Policy{Mode: ModeTokens, Scope: ScopePrimary}
	assert.Equal(t, []string{"Ana", "Annie", "ana", "annie"}, g.Variants(p))
}

func TestNewGroupDropsBlanksAndDuplicates(t *testing.T) {
	g := NewGroup(Other, "", "x", "y", "x", "")
	assert.Equal(t, Group{{Text: "x", Kind: Other}, {Text: "y", Kind: Other}}, g)
}

func TestBuildGroups(t *testing.T) {
	t.Run("both slots", func(t *testing.T) {
		groups := BuildGroups("ana", "lima", []string{"annie"}, nil)
		assert.Len(t, groups, 2)
		assert.Equal(t, Group{{"ana", Primary}, {"annie", Primary}}, groups[0])
		assert.Equal(t, Group{{"lima", Secondary}}, groups[1])
	})

	t.Run("alternates without identifier", func(t *testing.T) {
		groups := BuildGroups("", "", nil, []string{"silva"})
		assert.Equal(t, []Group{{{"silva", Secondary}}}, groups)
	})

	t.Run("nothing usable", func(t *testing.T) {
		assert.Empty(t, BuildGroups("", "", []string{""}, nil))
	})
}

func TestParse(t *testing.T) {
	assert.Equal(t, ModeTokens, ParseMode(" T "))
	assert.Equal(t, ModeFirstChar, ParseMode("first"))
	assert.Equal(t, ModeNone, ParseMode("shout"))

	assert.Equal(t, ScopeBoth, ParseScope(""))
	assert.Equal(t, ScopePrimary, ParseScope("names"))
	assert.Equal(t, ScopeSecondary, ParseScope("s"))
	assert.Equal(t, ScopePrimary, ParseScope("whatever"))
}

func TestScopeIncludes(t *testing.T) {
	tests := []struct {
		scope     Scope
		primary   bool
		secondary bool
	}{
		{scope: ScopeNone},
		{scope: ScopePrimary, primary: true},
		{scope: ScopeSecondary, secondary: true},
		{scope: ScopeBoth, primary: true, secondary: true},
	}
	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			assert.Equal(t, tt.primary, tt.scope.Includes(Primary))
			assert.Equal(t, tt.secondary, tt.scope.Includes(Secondary))
			assert.False(t, tt.scope.Includes(Other))
		})
	}
	assert.Equal(t, ScopeNone, ParseScope("none"))
}

func TestFirstUpper(t *testing.T) {
	assert.Equal(t, "Ana_lima", FirstUpper("ana_lima"))
	assert.Equal(t, "1ana", FirstUpper("1ana"))
	assert.Equal(t, "", FirstUpper(""))
	assert.True(t, StartsWithLetter("ana"))
	assert.False(t, StartsWithLetter("_ana"))
	assert.False(t, StartsWithLetter(""))
}
