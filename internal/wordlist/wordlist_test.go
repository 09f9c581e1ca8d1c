package wordlist

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWriteCreatesParentsAndTerminatesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "output.txt")
	words := []string{"analima", "limaana1", "Ana_lima"}

	var calls []int
	err := Write(path, words, func(done, total int) {
		assert.Equal(t, len(words), total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, calls)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "analima\nlimaana1\nAna_lima\n", string(data))
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, Write(path, nil, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadRoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ntwo\nthree"), 0o644))

	words, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, words)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "list.txt")
	words := make([]string, 5000)
	for i := range words {
		words[i] = "word"
	}
	require.NoError(t, Write(path, words, nil))

	ctx, cancel := context.WithCancel(context.Background())
	ch, errc, err := Read(ctx, path)
	require.NoError(t, err)
	<-ch
	cancel()
	for range ch {
	}
	assert.NoError(t, <-errc)
}

func TestShuffleKeepsElements(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f"}
	shuffled := slices.Clone(words)
	Shuffle(shuffled, rand.New(rand.NewPCG(1, 2)))

	slices.Sort(shuffled)
	assert.Equal(t, words, shuffled)
}
