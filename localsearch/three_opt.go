package localsearch

import "github.com/katalvlaran/vrp/distmatrix"

// ThreeOpt applies 3-opt improvement to a single route: for every triple of
// cut positions (i,j,k), the route splits into four segments A,B,C,D and
// the seven non-identity reconnections are evaluated; the first improving
// one found is accepted and scanning restarts. Routes shorter than four
// customers have no three non-adjacent edges and pass through unchanged.
func ThreeOpt(route []int, depot int, dist distmatrix.Matrix) ([]int, float64) {
	if len(route) < 4 {
		return append([]int(nil), route...), routeDistance(route, depot, dist)
	}

	current := append([]int(nil), route...)
	improved := true
	for improved {
		improved = false
		n := len(current)

	outer:
		for i := 0; i < n-2; i++ {
			for j := i + 1; j < n-1; j++ {
				for k := j + 1; k < n; k++ {
					if next, ok := tryThreeOptMove(current, depot, dist, i, j, k); ok {
						current = next
						improved = true
						break outer
					}
				}
			}
		}
	}

	return current, routeDistance(current, depot, dist)
}

// tryThreeOptMove evaluates the seven reconnection patterns for cuts
// (i,j,k) against segments A=route[:i+1], B=route[i+1:j+1], C=route[j+1:k+1],
// D=route[k+1:], returning the best improving reconstruction if one clears
// eps.
func tryThreeOptMove(route []int, depot int, dist distmatrix.Matrix, i, j, k int) ([]int, bool) {
	n := len(route)

	aEnd := route[i]
	bStart := route[i+1]
	bEnd := route[j]
	cStart := route[j+1]
	cEnd := route[k]
	dStart := depot
	if k+1 < n {
		dStart = route[k+1]
	}

	oldCost := dist.Get(aEnd, bStart) + dist.Get(bEnd, cStart) + dist.Get(cEnd, dStart)

	segA := route[:i+1]
	segB := route[i+1 : j+1]
	segC := route[j+1 : k+1]
	segD := route[k+1:]

	type pattern struct {
		id    int
		delta float64
	}
	candidates := []pattern{
		{1, dist.Get(aEnd, bStart) + dist.Get(bEnd, cEnd) + dist.Get(cStart, dStart) - oldCost},
		{2, dist.Get(aEnd, bEnd) + dist.Get(bStart, cStart) + dist.Get(cEnd, dStart) - oldCost},
		{3, dist.Get(aEnd, bEnd) + dist.Get(bStart, cEnd) + dist.Get(cStart, dStart) - oldCost},
		{4, dist.Get(aEnd, cStart) + dist.Get(cEnd, bStart) + dist.Get(bEnd, dStart) - oldCost},
		{5, dist.Get(aEnd, cStart) + dist.Get(cEnd, bEnd) + dist.Get(bStart, dStart) - oldCost},
		{6, dist.Get(aEnd, cEnd) + dist.Get(cStart, bStart) + dist.Get(bEnd, dStart) - oldCost},
		{7, dist.Get(aEnd, cEnd) + dist.Get(cStart, bEnd) + dist.Get(bStart, dStart) - oldCost},
	}

	best := pattern{0, eps}
	for _, c := range candidates {
		if c.delta < best.delta {
			best = c
		}
	}
	if best.id == 0 {
		return nil, false
	}

	out := make([]int, 0, n)
	out = append(out, segA...)
	switch best.id {
	case 1:
		out = append(out, segB...)
		out = append(out, reversedInts(segC)...)
	case 2:
		out = append(out, reversedInts(segB)...)
		out = append(out, segC...)
	case 3:
		out = append(out, reversedInts(segB)...)
		out = append(out, reversedInts(segC)...)
	case 4:
		out = append(out, segC...)
		out = append(out, segB...)
	case 5:
		out = append(out, segC...)
		out = append(out, reversedInts(segB)...)
	case 6:
		out = append(out, reversedInts(segC)...)
		out = append(out, segB...)
	case 7:
		out = append(out, reversedInts(segC)...)
		out = append(out, reversedInts(segB)...)
	}
	out = append(out, segD...)

	return out, true
}

func reversedInts(a []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}
