// Package token models the keyword fragments candidates are built from.
package token

// Kind classifies a token for capitalization purposes.
type Kind int

const (
	// Primary is the primary identifier (first name) and its alternates.
	Primary Kind = iota
	// Secondary is the secondary identifier (last name) and its alternates.
	Secondary
	// Other is any keyword outside the two identifier slots.
	Other
)

func (k Kind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Token is a single literal fragment eligible for inclusion in a candidate.
type Token struct {
	Text string
	Kind Kind
}

// Group holds mutually exclusive alternatives for one slot. A candidate
// uses at most one token of a group and never the same group twice.
type Group []Token

// NewGroup builds a group of the given kind, dropping blank and duplicate texts.
func NewGroup(kind Kind, texts ...string) Group {
	seen := make(map[string]bool, len(texts))
	g := make(Group, 0, len(texts))
	for _, t := range texts {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		g = append(g, Token{Text: t, Kind: kind})
	}
	return g
}

// Variants returns the sorted, deduplicated union of every token's variants.
func (g Group) Variants(p Policy) []string {
	set := make(map[string]struct{})
	for _, t := range g {
		for _, v := range p.Variants(t) {
			set[v] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// BuildGroups returns the primary group (primary identifier plus its
// alternates) followed by the secondary group. Empty groups are omitted.
func BuildGroups(primary, secondary string, primaryAlts, secondaryAlts []string) []Group {
	var groups []Group
	if g := NewGroup(Primary, append([]string{primary}, primaryAlts...)...); len(g) > 0 {
		groups = append(groups, g)
	}
	if g := NewGroup(Secondary, append([]string{secondary}, secondaryAlts...)...); len(g) > 0 {
		groups = append(groups, g)
	}
	return groups
}
