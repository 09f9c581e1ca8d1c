package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("ana\n\nYES\n\nabc\n0\n4\n"), &out, nil)

	s, err := p.String("First name", "")
	require.NoError(t, err)
	assert.Equal(t, "ana", s)

	s, err = p.String("Capitalization? (none/tokens/firstchar)", "none")
	require.NoError(t, err)
	assert.Equal(t, "none", s)

	yes, err := p.YesNo("Continue anyway?", false)
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = p.YesNo("Continue anyway?", false)
	require.NoError(t, err)
	assert.False(t, yes)

	n, err := p.Int("Max words per password", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Contains(t, out.String(), "First name: ")
	assert.Contains(t, out.String(), "Continue anyway? (y/n) [n]: ")
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter an integer of at least 1."))
}

func TestPrompterLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("lima"), &bytes.Buffer{}, nil)
	s, err := p.String("Last name", "")
	require.NoError(t, err)
	assert.Equal(t, "lima", s)

	_, err = p.String("Nicknames", "")
	assert.ErrorIs(t, err, ErrClosed)
}
