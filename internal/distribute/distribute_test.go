package distribute

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomCandidates(n int, w, h float32, seed int64) []Candidate {
	r := rand.New(rand.NewSource(seed))
	out := make([]Candidate, n)
	for i := range out {
		out[i] = Candidate{
			X:        r.Float32() * w,
			Y:        r.Float32() * h,
			Response: r.Float32() * 1000,
			Index:    i,
		}
	}
	return out
}

func TestKeepAllIsIdentity(t *testing.T) {
	cand := randomCandidates(20, 100, 100, 1)
	out := Distribute(cand, Bounds{0, 100, 0, 100}, 5, Config{Mode: KeepAll})
	assert.Len(t, out, len(cand))
}

func TestNaiveSortsByResponseDescending(t *testing.T) {
	cand := randomCandidates(50, 100, 100, 2)
	out := Distribute(cand, Bounds{0, 100, 0, 100}, 10, Config{Mode: Naive})
	require.Len(t, out, 10)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Response, out[i].Response)
	}
}

func TestGridOutputSubsetOfInput(t *testing.T) {
	cand := randomCandidates(200, 256, 256, 3)
	out := Distribute(cand, Bounds{0, 256, 0, 256}, 64, Config{Mode: Grid})

	set := make(map[int]bool, len(cand))
	for _, c := range cand {
		set[c.Index] = true
	}
	for _, c := range out {
		assert.True(t, set[c.Index], "grid output must be a subset of the input")
	}
	assert.LessOrEqual(t, len(out), 64)
}

func TestQuadtreeVariantsRespectQuota(t *testing.T) {
	cand := randomCandidates(300, 512, 512, 4)
	bounds := Bounds{0, 512, 0, 512}

	for _, mode := range []Mode{QuadtreeORBSLAM, Quadtree} {
		out := Distribute(cand, bounds, 50, Config{Mode: mode})
		assert.NotEmpty(t, out)
		assert.LessOrEqual(t, len(out), len(cand))
		assert.LessOrEqual(t, len(out), 50)
	}
}

func TestSSCWithinTolerance(t *testing.T) {
	cand := randomCandidates(500, 256, 256, 5)
	bounds := Bounds{0, 256, 0, 256}
	const n, tol = 80, 10

	out := Distribute(cand, bounds, n, Config{Mode: SSC, SoftSSCThreshold: tol})
	assert.LessOrEqual(t, len(out), n+tol)
}

func TestSSCNoTwoKeypointsWithinRadiusLInf(t *testing.T) {
	cand := randomCandidates(400, 256, 256, 6)
	const radius = float32(8)
	out := suppressSSC(sortedByResponse(cand), radius)

	for i := range out {
		for k := i + 1; k < len(out); k++ {
			dx := out[i].X - out[k].X
			dy := out[i].Y - out[k].Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx <= radius && dy <= radius {
				t.Errorf("two accepted keypoints lie within %v of each other in L-infinity: %+v and %+v", radius, out[i], out[k])
			}
		}
	}
}

func sortedByResponse(cand []Candidate) []Candidate {
	out := make([]Candidate, len(cand))
	copy(out, cand)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Response < out[j].Response; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func TestANMSVariantsAgreeOnCount(t *testing.T) {
	cand := randomCandidates(150, 128, 128, 7)
	bounds := Bounds{0, 128, 0, 128}

	outKD := Distribute(cand, bounds, 30, Config{Mode: ANMSKDTree, ANMSEpsilon: 0.1})
	outRT := Distribute(cand, bounds, 30, Config{Mode: ANMSRangeTree, ANMSEpsilon: 0.1})

	assert.Len(t, outKD, 30)
	assert.Len(t, outRT, 30)
}

func TestEmptyCandidateSetReturnsEmpty(t *testing.T) {
	for _, mode := range []Mode{KeepAll, Naive, Grid, QuadtreeORBSLAM, Quadtree, SSC, ANMSKDTree, ANMSRangeTree} {
		out := Distribute(nil, Bounds{0, 10, 0, 10}, 5, Config{Mode: mode})
		assert.Empty(t, out)
	}
}
