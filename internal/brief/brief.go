// Package brief computes 256-bit steered (rotation-aware) BRIEF
// descriptors over a fixed 512-point sampling pattern. The pattern in
// pattern.go is a deterministic table, not the learned ORB-SLAM2
// bit_pattern_31_ table, so descriptors are not bit-compatible with
// ORB-SLAM2 or OpenCV ORB.
package brief

import (
	"math"

	"github.com/robovision/orbextract/internal/imgproc"
)

// DescriptorBytes is the number of bytes in one packed descriptor.
const DescriptorBytes = 32

// NumPairs is the number of BRIEF test pairs (256), each consuming 4
// entries of the pattern table: (x0, y0, x1, y1).
const NumPairs = 256

// Compute writes the 32-byte rBRIEF descriptor for a keypoint centered at
// byte offset p within buf (row stride step), steered by angleDeg
// degrees, into out (which must be at least DescriptorBytes long).
//
// Each output byte packs 8 consecutive pairs (32 pattern entries): bit i of
// comparison i lands in byte i/8, bit i%8, the same byte layout the
// original ComputeDescriptors loop produces.
func Compute(buf []byte, p, step int, angleDeg float32, out []byte) {
	angleRad := float64(angleDeg) * math.Pi / 180
	a := math.Cos(angleRad)
	b := math.Sin(angleRad)

	for byteIdx := 0; byteIdx < DescriptorBytes; byteIdx++ {
		var bits byte
		for bit := 0; bit < 8; bit++ {
			pairIdx := byteIdx*8 + bit
			base := pairIdx * 4
			x0, y0 := float64(pattern31[base]), float64(pattern31[base+1])
			x1, y1 := float64(pattern31[base+2]), float64(pattern31[base+3])

			idx0 := imgproc.Round(x0*a-y0*b) + imgproc.Round(x0*b+y0*a)*step
			idx1 := imgproc.Round(x1*a-y1*b) + imgproc.Round(x1*b+y1*a)*step

			v0 := buf[p+idx0]
			v1 := buf[p+idx1]
			if v0 < v1 {
				bits |= 1 << uint(bit)
			}
		}
		out[byteIdx] = bits
	}
}
