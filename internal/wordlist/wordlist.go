// Package wordlist persists and reads newline-delimited candidate lists.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// ProgressFunc is called after each written line with the running count.
type ProgressFunc func(done, total int)

// Shuffle randomises the order of words in place.
func Shuffle(words []string, rng *rand.Rand) {
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

// Write stores words at path, one per line, creating parent directories as
// needed. progress may be nil.
func Write(path string, words []string, progress ProgressFunc) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wordlist: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 64*1024)
	for i, word := range words {
		if _, err := w.WriteString(word); err != nil {
			return fmt.Errorf("write wordlist: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write wordlist: %w", err)
		}
		if progress != nil {
			progress(i+1, len(words))
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush wordlist: %w", err)
	}
	return f.Close()
}

// Load reads every non-empty line of the wordlist at path.
func Load(ctx context.Context, path string) ([]string, error) {
	ch, errc, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}
	var words []string
	for w := range ch {
		words = append(words, w)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	return words, ctx.Err()
}

// Read streams the non-empty lines of the wordlist at path. The word
// channel is closed when the file is exhausted or ctx is done; the error
// channel then carries the scan error, if any.
func Read(ctx context.Context, path string) (<-chan string, <-chan error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open wordlist: %w", err)
	}

	ch := make(chan string, 1000)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(ch)
		defer f.Close()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case ch <- line:
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("read wordlist: %w", err)
		}
	}()
	return ch, errc, nil
}
