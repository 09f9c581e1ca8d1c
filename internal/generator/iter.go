package generator

import "iter"

// permutations yields every ordered selection of k distinct indices from
// [0, n). The yielded slice is reused between iterations.
func permutations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > n {
			return
		}
		perm := make([]int, 0, k)
		used := make([]bool, n)
		var walk func() bool
		walk = func() bool {
			if len(perm) == k {
				return yield(perm)
			}
			for i := 0; i < n; i++ {
				if used[i] {
					continue
				}
				used[i] = true
				perm = append(perm, i)
				ok := walk()
				perm = perm[:len(perm)-1]
				used[i] = false
				if !ok {
					return false
				}
			}
			return true
		}
		walk()
	}
}

// product yields every index tuple of the cartesian product of ranges
// [0, sizes[i]), last position varying fastest. An empty sizes slice yields
// one empty tuple; a zero size yields nothing. The yielded slice is reused.
func product(sizes []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, s := range sizes {
			if s <= 0 {
				return
			}
		}
		idx := make([]int, len(sizes))
		for {
			if !yield(idx) {
				return
			}
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < sizes[i] {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
