package distribute

import (
	"math"
	"sort"
)

// distributeGrid partitions bounds into a fixed sqrt(n) x sqrt(n) grid and
// keeps the single highest-response candidate per cell. Empty cells
// contribute nothing, so the result may be smaller than n.
func distributeGrid(cand []Candidate, b Bounds, n int) []Candidate {
	if n < 1 {
		n = 1
	}
	dim := int(math.Sqrt(float64(n)))
	if dim < 1 {
		dim = 1
	}
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	if w <= 0 || h <= 0 {
		return nil
	}
	cellW := w / float32(dim)
	cellH := h / float32(dim)

	best := make(map[int]Candidate, dim*dim)
	for _, c := range cand {
		cx := int((c.X - b.MinX) / cellW)
		cy := int((c.Y - b.MinY) / cellH)
		cx = clampCell(cx, dim)
		cy = clampCell(cy, dim)
		key := cy*dim + cx
		if prev, ok := best[key]; !ok || c.Response > prev.Response {
			best[key] = c
		}
	}

	keys := make([]int, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]Candidate, 0, len(best))
	for _, k := range keys {
		out = append(out, best[k])
	}
	return out
}

func clampCell(v, dim int) int {
	if v < 0 {
		return 0
	}
	if v >= dim {
		return dim - 1
	}
	return v
}
