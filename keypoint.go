package orb

import "github.com/golang/geo/r2"

// PatchSize is the diameter, in base-image pixels at octave 0, of the
// patch a keypoint's descriptor and orientation are computed over.
const PatchSize = 31

// HalfPatchSize is half of PatchSize, the radius of the orientation disk.
const HalfPatchSize = 15

// EdgeThreshold is the width, in pixels, of the reflect-101 border kept
// around every pyramid level so FAST and BRIEF never read out of bounds.
const EdgeThreshold = 19

// CircleSize is the number of Bresenham-ring neighbours FAST-9/16 tests.
const CircleSize = 16

// KeyPoint is a single detected feature point.
//
// Pt is always expressed in base-image (octave 0) coordinates, regardless
// of which pyramid level the point was detected in. Angle is in degrees in
// [0, 360), or -1 if orientation has not yet been computed. Size is the
// patch diameter in base-image pixels, PatchSize*scale[Octave].
type KeyPoint struct {
	Pt       r2.Point
	Size     float32
	Angle    float32
	Response float32
	Octave   int
}

// Point is an integer image-space coordinate.
type Point struct {
	X, Y int
}

// Descriptors is a dense nkpts x 32 byte matrix; row k is the descriptor
// for the k-th keypoint in the corresponding KeyPoint slice.
type Descriptors struct {
	Rows int
	Cols int
	Data []byte
}

// Row returns the descriptor bytes for keypoint k.
func (d Descriptors) Row(k int) []byte {
	return d.Data[k*d.Cols : (k+1)*d.Cols]
}

// NewDescriptors allocates a zeroed nkpts x cols descriptor matrix.
func NewDescriptors(nkpts, cols int) Descriptors {
	return Descriptors{Rows: nkpts, Cols: cols, Data: make([]byte, nkpts*cols)}
}

func floatPoint(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}
