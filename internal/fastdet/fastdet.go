// Package fastdet implements the FAST-9/16 corner detector: a pixel p
// with intensity Ip is a corner at threshold t iff, among its 16
// Bresenham-ring neighbours, at least 9 contiguous pixels are all
// brighter than Ip+t or all darker than Ip-t.
//
// Detect only runs that full test on pixels where at least 3 of the 4
// cardinal ring pixels (N, E, S, W) are on the same side, so a 9-run that
// covers just two cardinal positions, such as the apex of a 90-degree
// corner, is not reported.
package fastdet

// ScoreType selects the corner response metric.
type ScoreType int

const (
	// Harris scores candidates with the Harris corner measure over a 7x7
	// window.
	Harris ScoreType = iota
	// FastScore scores candidates by the largest threshold for which the
	// 9-contiguous-pixel test still holds.
	FastScore
)

// circleDX/circleDY are the 16 Bresenham-ring offsets of radius 3, indexed
// starting at the top (0,-3) and proceeding clockwise. Indices 0, 4, 8, 12
// are the cardinal (N, E, S, W) positions used for the fast rejection
// pre-check.
var circleDX = [16]int{0, 1, 2, 3, 3, 3, 2, 1, 0, -1, -2, -3, -3, -3, -2, -1}
var circleDY = [16]int{-3, -3, -2, -1, 0, 1, 2, 3, 3, 3, 2, 1, 0, -1, -2, -3}

// Detector holds per-level cached ring byte-offsets and the FAST
// thresholds/score type it was configured with.
type Detector struct {
	iniThresh int
	minThresh int
	score     ScoreType
	// offsets[level] is the 16 ring byte offsets for that level's stride.
	offsets [][16]int
}

// NewDetector creates a Detector with the given initial/minimum FAST
// thresholds and score type.
func NewDetector(iniThresh, minThresh int, score ScoreType) *Detector {
	d := &Detector{}
	d.SetThresholds(iniThresh, minThresh)
	d.score = score
	return d
}

// SetThresholds clamps and stores the FAST thresholds.
func (d *Detector) SetThresholds(ini, min int) {
	if ini < 1 {
		ini = 1
	}
	if ini > 255 {
		ini = 255
	}
	if min < 1 {
		min = 1
	}
	if min > ini {
		min = ini
	}
	d.iniThresh = ini
	d.minThresh = min
}

// SetScoreType sets the response-scoring method.
func (d *Detector) SetScoreType(s ScoreType) { d.score = s }

// Thresholds returns the configured (initial, minimum) FAST thresholds.
func (d *Detector) Thresholds() (int, int) { return d.iniThresh, d.minThresh }

// ScoreType returns the configured response-scoring method.
func (d *Detector) ScoreType() ScoreType { return d.score }

// Configure recomputes the cached per-level ring byte-offset tables for
// the given row strides (one per pyramid level).
func (d *Detector) Configure(strides []int) {
	d.offsets = make([][16]int, len(strides))
	for lvl, step := range strides {
		var off [16]int
		for k := 0; k < 16; k++ {
			off[k] = circleDX[k] + circleDY[k]*step
		}
		d.offsets[lvl] = off
	}
}

// Candidate is a raw FAST corner in patch-local integer coordinates.
type Candidate struct {
	X, Y     int
	Response float32
}

// Detect scans patch (width w, height h, row stride step, buffer buf with
// base offset baseOff for pixel (0,0)) for FAST-9/16 corners at the given
// level and threshold, with a 3-pixel safety border. It returns candidates
// with non-maximum suppression already applied within the patch.
func (d *Detector) Detect(buf []byte, baseOff, step, w, h, level, threshold int) []Candidate {
	off := d.offsets[level]

	grid := make([]cornerCell, w*h)

	for y := 3; y < h-3; y++ {
		rowOff := baseOff + y*step
		for x := 3; x < w-3; x++ {
			p := rowOff + x
			ip := int(buf[p])

			// Fast rejection: check the 4 cardinal ring pixels first.
			c0 := int(buf[p+off[0]])
			c4 := int(buf[p+off[4]])
			c8 := int(buf[p+off[8]])
			c12 := int(buf[p+off[12]])
			bright := 0
			dark := 0
			for _, c := range [4]int{c0, c4, c8, c12} {
				if c > ip+threshold {
					bright++
				} else if c < ip-threshold {
					dark++
				}
			}
			if bright < 3 && dark < 3 {
				continue
			}

			if !fullRingTest(buf, p, off[:], ip, threshold) {
				continue
			}

			var resp float32
			if d.score == Harris {
				resp = harrisResponse(buf, p, step)
			} else {
				resp = fastScoreResponse(buf, p, off[:], ip, threshold)
			}
			grid[y*w+x] = cornerCell{resp: resp, ok: true}
		}
	}

	var out []Candidate
	for y := 3; y < h-3; y++ {
		for x := 3; x < w-3; x++ {
			c := grid[y*w+x]
			if !c.ok {
				continue
			}
			if !isLocalMax3x3(grid, w, h, x, y, c.resp) {
				continue
			}
			out = append(out, Candidate{X: x, Y: y, Response: c.resp})
		}
	}
	return out
}

// cornerCell tracks the per-pixel corner test outcome within a detection
// patch, used both to stage responses before NMS and to look up neighbour
// responses during the 3x3 NMS pass.
type cornerCell struct {
	resp float32
	ok   bool
}

func isLocalMax3x3(grid []cornerCell, w, h, x, y int, resp float32) bool {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			n := grid[ny*w+nx]
			// Among equal responses only the first in scan order survives.
			if n.ok && (n.resp > resp || (n.resp == resp && (dy < 0 || (dy == 0 && dx < 0)))) {
				return false
			}
		}
	}
	return true
}

// fullRingTest performs the full 16-ring contiguity test: at least 9
// contiguous ring pixels must all be brighter than ip+t, or all darker
// than ip-t.
func fullRingTest(buf []byte, p int, off []int, ip, t int) bool {
	var sign [16]int8
	for k := 0; k < 16; k++ {
		v := int(buf[p+off[k]])
		switch {
		case v > ip+t:
			sign[k] = 1
		case v < ip-t:
			sign[k] = -1
		default:
			sign[k] = 0
		}
	}
	return longestCircularRun(sign[:], 1) >= 9 || longestCircularRun(sign[:], -1) >= 9
}

func longestCircularRun(sign []int8, want int8) int {
	n := len(sign)
	best := 0
	run := 0
	// Double the scan so a run that wraps around the array end is found.
	for i := 0; i < 2*n; i++ {
		if sign[i%n] == want {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	if best > n {
		best = n
	}
	return best
}

// fastScoreResponse returns the largest threshold t' for which the
// 9-contiguous test still holds, found by binary search in [t, 255].
func fastScoreResponse(buf []byte, p int, off []int, ip, t int) float32 {
	lo, hi := t, 255
	best := t
	for lo <= hi {
		mid := (lo + hi) / 2
		if fullRingTest(buf, p, off, ip, mid) {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return float32(best)
}

// harrisResponse computes the Harris corner measure over a 7x7 window
// centered at pixel offset p, using simple central-difference gradients.
func harrisResponse(buf []byte, p, step int) float32 {
	const k = 0.04
	const half = 3
	var sxx, syy, sxy float64
	for dy := -half; dy <= half; dy++ {
		row := p + dy*step
		for dx := -half; dx <= half; dx++ {
			q := row + dx
			ix := float64(int(buf[q+1]) - int(buf[q-1]))
			iy := float64(int(buf[q+step]) - int(buf[q-step]))
			sxx += ix * ix
			syy += iy * iy
			sxy += ix * iy
		}
	}
	det := sxx*syy - sxy*sxy
	trace := sxx + syy
	v := det - k*trace*trace
	if v < 0 {
		v = 0
	}
	return float32(v)
}
