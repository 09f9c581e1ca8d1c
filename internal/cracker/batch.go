package cracker

type batch []string

// batches splits words into consecutive slices of at most size entries.
// The slices alias words.
func batches(words []string, size int) []batch {
	if size <= 0 {
		size = 1
	}
	out := make([]batch, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		out = append(out, batch(words[start:end]))
	}
	return out
}
