package localsearch

import "github.com/katalvlaran/vrp/distmatrix"

// OrOpt applies Or-opt improvement to a single route: tries relocating
// contiguous segments of length 1, 2, and 3 to a different position within
// the same route, accepting the move whenever it shortens the route.
// Repeats every segment length until a full pass makes no move. O(n^2) per
// pass, O(n^3) worst case for convergence.
func OrOpt(route []int, depot int, dist distmatrix.Matrix) ([]int, float64) {
	if len(route) < 2 {
		return append([]int(nil), route...), routeDistance(route, depot, dist)
	}

	current := append([]int(nil), route...)
	improved := true
	for improved {
		improved = false
		maxSeg := 3
		if len(current) < maxSeg {
			maxSeg = len(current)
		}
		for segLen := 1; segLen <= maxSeg; segLen++ {
			if tryOrOptPass(&current, depot, dist, segLen) {
				improved = true
			}
		}
	}

	return current, routeDistance(current, depot, dist)
}

// tryOrOptPass scans every (from, to) placement of a segLen-length segment
// and executes the single best improving relocation found, if any.
func tryOrOptPass(route *[]int, depot int, dist distmatrix.Matrix, segLen int) bool {
	r := *route
	n := len(r)
	if n < segLen+1 {
		return false
	}

	bestDelta := eps
	bestFrom, bestTo := -1, -1

	for from := 0; from <= n-segLen; from++ {
		prev := depot
		if from > 0 {
			prev = r[from-1]
		}
		after := depot
		if from+segLen < n {
			after = r[from+segLen]
		}
		segFirst := r[from]
		segLast := r[from+segLen-1]

		removalGain := dist.Get(prev, segFirst) + dist.Get(segLast, after) - dist.Get(prev, after)

		for to := 0; to <= n-segLen; to++ {
			if to >= from && to <= from+segLen {
				continue
			}

			var insPrev, insNext int
			if to < from {
				insPrev = depot
				if to > 0 {
					insPrev = r[to-1]
				}
				insNext = r[to]
			} else {
				insPrev = r[to-1]
				insNext = depot
				if to < n {
					insNext = r[to]
				}
			}

			insertionCost := dist.Get(insPrev, segFirst) + dist.Get(segLast, insNext) - dist.Get(insPrev, insNext)
			delta := insertionCost - removalGain
			if delta < bestDelta {
				bestDelta = delta
				bestFrom = from
				bestTo = to
			}
		}
	}

	if bestFrom < 0 {
		return false
	}

	segment := append([]int(nil), r[bestFrom:bestFrom+segLen]...)
	rest := append([]int(nil), r[:bestFrom]...)
	rest = append(rest, r[bestFrom+segLen:]...)

	insertPos := bestTo
	if bestTo > bestFrom {
		insertPos = bestTo - segLen
	}

	out := make([]int, 0, n)
	out = append(out, rest[:insertPos]...)
	out = append(out, segment...)
	out = append(out, rest[insertPos:]...)

	*route = out
	return true
}
