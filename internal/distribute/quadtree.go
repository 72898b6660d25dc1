package distribute

import (
	"math"
	"sort"
)

// qtNode is one quadtree node: a rectangle plus the candidates falling
// inside it. A node becomes a leaf once subdivided down to a single point
// (or is never split further).
type qtNode struct {
	x0, x1, y0, y1 float32
	pts            []Candidate
	leaf           bool
}

func (n *qtNode) area() float32 { return (n.x1 - n.x0) * (n.y1 - n.y0) }

// distributeQuadtree implements both QUADTREE_ORBSLAMSTYLE (orbslamSeed
// true: seed with vertical-strip root nodes, tie-break prefers more
// points, then larger area, then lower index) and QUADTREE (orbslamSeed
// false: single root node, same split/stop rule, no strip seeding).
// Splitting stops once there are n non-empty nodes or no node holds more
// than one point; one point is emitted per node, and if the last split
// overshoots n the lowest-response extras are dropped.
func distributeQuadtree(cand []Candidate, b Bounds, n int, orbslamSeed bool) []Candidate {
	var nodes []*qtNode

	if orbslamSeed {
		w := b.MaxX - b.MinX
		h := b.MaxY - b.MinY
		nIni := 1
		if h > 0 {
			nIni = int(math.Round(float64(w / h)))
		}
		if nIni < 1 {
			nIni = 1
		}
		stripW := w / float32(nIni)
		strips := make([]*qtNode, nIni)
		for i := 0; i < nIni; i++ {
			strips[i] = &qtNode{
				x0: b.MinX + stripW*float32(i),
				x1: b.MinX + stripW*float32(i+1),
				y0: b.MinY,
				y1: b.MaxY,
			}
		}
		for _, c := range cand {
			idx := int((c.X - b.MinX) / stripW)
			if idx < 0 {
				idx = 0
			}
			if idx >= nIni {
				idx = nIni - 1
			}
			strips[idx].pts = append(strips[idx].pts, c)
		}
		for _, s := range strips {
			if len(s.pts) == 0 {
				continue
			}
			if len(s.pts) == 1 {
				s.leaf = true
			}
			nodes = append(nodes, s)
		}
	} else {
		root := &qtNode{x0: b.MinX, x1: b.MaxX, y0: b.MinY, y1: b.MaxY, pts: append([]Candidate(nil), cand...)}
		if len(root.pts) <= 1 {
			root.leaf = true
		}
		nodes = append(nodes, root)
	}

	for len(nodes) < n {
		idx := -1
		for i, nd := range nodes {
			if nd.leaf || len(nd.pts) <= 1 {
				continue
			}
			if idx == -1 {
				idx = i
				continue
			}
			if betterSplitCandidate(nd, nodes[idx], i, idx) {
				idx = i
			}
		}
		if idx == -1 {
			break // no node with >1 keypoint remains
		}

		children := splitNode(nodes[idx])
		nodes = append(nodes[:idx], nodes[idx+1:]...)
		for _, c := range children {
			if len(c.pts) == 0 {
				continue
			}
			if len(c.pts) == 1 {
				c.leaf = true
			}
			nodes = append(nodes, c)
		}
	}

	out := make([]Candidate, 0, len(nodes))
	for _, nd := range nodes {
		if len(nd.pts) == 0 {
			continue
		}
		out = append(out, bestOf(nd.pts))
	}
	if len(out) > n {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Response > out[j].Response })
		out = out[:n]
	}
	return out
}

// betterSplitCandidate reports whether node a (at index ia) should be
// preferred over node b (at index ib) as the next node to subdivide:
// more points wins; ties broken by larger area, then by lower index.
func betterSplitCandidate(a, b *qtNode, ia, ib int) bool {
	if len(a.pts) != len(b.pts) {
		return len(a.pts) > len(b.pts)
	}
	if a.area() != b.area() {
		return a.area() > b.area()
	}
	return ia < ib
}

func splitNode(n *qtNode) [4]*qtNode {
	midX := (n.x0 + n.x1) / 2
	midY := (n.y0 + n.y1) / 2
	children := [4]*qtNode{
		{x0: n.x0, x1: midX, y0: n.y0, y1: midY}, // UL
		{x0: midX, x1: n.x1, y0: n.y0, y1: midY}, // UR
		{x0: n.x0, x1: midX, y0: midY, y1: n.y1}, // LL
		{x0: midX, x1: n.x1, y0: midY, y1: n.y1}, // LR
	}
	for _, c := range n.pts {
		var i int
		switch {
		case c.X < midX && c.Y < midY:
			i = 0
		case c.X >= midX && c.Y < midY:
			i = 1
		case c.X < midX && c.Y >= midY:
			i = 2
		default:
			i = 3
		}
		children[i].pts = append(children[i].pts, c)
	}
	return children
}

func bestOf(pts []Candidate) Candidate {
	best := pts[0]
	for _, c := range pts[1:] {
		if c.Response > best.Response {
			best = c
		}
	}
	return best
}
