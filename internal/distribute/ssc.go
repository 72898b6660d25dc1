package distribute

import "sort"

// distributeSSC implements Suppression via Square Covering: binary search
// over a suppression radius until the greedy-accepted count lands within
// tol of n. If no radius does so within the iteration budget, the result
// whose count was closest to n is kept (the earliest one on a tie). The
// kept set is cut to its n highest-response candidates if it is larger.
func distributeSSC(cand []Candidate, b Bounds, n, tol int) []Candidate {
	if len(cand) <= n {
		return cand
	}

	sorted := make([]Candidate, len(cand))
	copy(sorted, cand)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Response > sorted[j].Response })

	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	high := width
	if height > high {
		high = height
	}
	if high < 1 {
		high = 1
	}
	low := float32(0)

	var best []Candidate
	for iter := 0; iter < 20; iter++ {
		radius := (low + high) / 2
		if radius < 1 {
			radius = 1
		}
		result := suppressSSC(sorted, radius)

		if best == nil || absDiff(len(result), n) < absDiff(len(best), n) {
			best = result
		}

		switch {
		case len(result) < n-tol:
			high = radius
		case len(result) > n+tol:
			low = radius
		default:
			best = result
			iter = 20
		}
		if low >= high {
			break
		}
	}

	if len(best) > n {
		best = best[:n]
	}
	return best
}

// suppressSSC greedily accepts candidates in response-descending order
// against a boolean acceptance grid of cell size radius: a candidate is
// kept iff its r x r cell (and the eight surrounding cells, so the
// square neighborhood is honored regardless of where within a cell the
// candidate falls) holds no previously-accepted point.
func suppressSSC(sorted []Candidate, radius float32) []Candidate {
	cell := radius
	if cell < 1e-6 {
		cell = 1e-6
	}
	type cellKey struct{ x, y int }
	occupied := make(map[cellKey]bool)

	var out []Candidate
	for _, c := range sorted {
		cx := int(c.X / cell)
		cy := int(c.Y / cell)

		blocked := false
		for dx := -1; dx <= 1 && !blocked; dx++ {
			for dy := -1; dy <= 1 && !blocked; dy++ {
				if occupied[cellKey{cx + dx, cy + dy}] {
					blocked = true
				}
			}
		}
		if !blocked {
			out = append(out, c)
			occupied[cellKey{cx, cy}] = true
		}
	}
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
