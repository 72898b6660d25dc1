// Package orient computes the intensity-centroid orientation of a
// keypoint patch, the angle the steered BRIEF descriptor is rotated by.
package orient

import "math"

// HalfPatchSize is the radius, in pixels, of the orientation disk.
const HalfPatchSize = 15

// CircularRows holds, for each row y in [0, HalfPatchSize], the half-width
// of the 15-radius disk at that row (row 0 is the full radius; symmetric
// about the center).
var CircularRows [HalfPatchSize + 1]int

func init() {
	r := float64(HalfPatchSize)
	for y := 0; y <= HalfPatchSize; y++ {
		CircularRows[y] = int(math.Round(math.Sqrt(r*r - float64(y*y))))
	}
}

// Angle computes the intensity-centroid orientation, in degrees in
// [0, 360), of the patch centered at byte offset p within buf, with row
// stride step.
//
// Reproduces the original extractor's IntensityCentroidAngle: the centre
// row (y=0) is summed directly across its full half-width, then each pair
// of rows (y, -y) for y in [1, HalfPatchSize] is folded together using the
// precomputed CircularRows half-widths.
func Angle(buf []byte, p, step int) float32 {
	m10, m01 := 0, 0

	half := CircularRows[0]
	for x := -half; x <= half; x++ {
		m10 += x * int(buf[p+x])
	}

	for y := 1; y <= HalfPatchSize; y++ {
		cols := CircularRows[y]
		sumY := 0
		for x := -cols; x <= cols; x++ {
			up := int(buf[p+x+y*step])
			down := int(buf[p+x-y*step])
			sumY += up - down
			m10 += x * (up + down)
		}
		m01 += y * sumY
	}

	angle := math.Atan2(float64(m01), float64(m10)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return float32(angle)
}
