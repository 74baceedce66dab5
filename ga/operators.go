package ga

import "github.com/katalvlaran/vrp/rng"

// orderCrossover implements OX: copies a random contiguous subsequence of
// parent1 into the child at the same positions, then fills the remaining
// positions with parent2's customers in their relative order, skipping any
// already placed. Returns two children built symmetrically from (p1,p2)
// and (p2,p1).
func orderCrossover(p1, p2 []int, r rng.Source) ([]int, []int) {
	n := len(p1)
	if n < 2 {
		return append([]int(nil), p1...), append([]int(nil), p2...)
	}

	a := r.IntN(n)
	b := r.IntN(n)
	if a > b {
		a, b = b, a
	}

	return orderCrossoverChild(p1, p2, a, b), orderCrossoverChild(p2, p1, a, b)
}

// orderCrossoverChild builds one OX child: donor supplies the fixed window
// [a,b], filler supplies the remaining positions in its own relative order.
func orderCrossoverChild(donor, filler []int, a, b int) []int {
	n := len(donor)
	child := make([]int, n)
	placed := make(map[int]bool, n)

	for i := a; i <= b; i++ {
		child[i] = donor[i]
		placed[donor[i]] = true
	}

	pos := (b + 1) % n
	for _, v := range filler {
		if placed[v] {
			continue
		}
		child[pos] = v
		placed[v] = true
		pos = (pos + 1) % n
	}

	return child
}

// swapMutation exchanges two random positions. The two positions are drawn
// independently and may coincide, in which case the tour is unchanged.
func swapMutation(tour []int, r rng.Source) {
	n := len(tour)
	if n < 2 {
		return
	}
	i := r.IntN(n)
	j := r.IntN(n)
	tour[i], tour[j] = tour[j], tour[i]
}

// invertMutation reverses a random contiguous sub-range (2-opt-style).
func invertMutation(tour []int, r rng.Source) {
	n := len(tour)
	if n < 2 {
		return
	}
	a := r.IntN(n)
	b := r.IntN(n)
	if a > b {
		a, b = b, a
	}
	for lo, hi := a, b; lo < hi; lo, hi = lo+1, hi-1 {
		tour[lo], tour[hi] = tour[hi], tour[lo]
	}
}
