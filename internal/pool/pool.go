// Package pool provides a small bucketed sync.Pool for the pyramid's
// per-frame level buffers. Unlike a generic byte-size pool, the bucket
// ladder here is not a row of round power-of-two/four byte counts: it is a
// geometric progression keyed to how a pyramid's own levels shrink,
// anchored at a comfortably large level-0 buffer and stepped down by the
// steepest shrink an octave can ever see (scaleFactor = 1.5, the clamp
// ceiling in pyramid.NewScaleTable), so MaxLevels buckets comfortably cover
// every octave of every legal ExtractorConfig without the caller telling
// this package anything about the current frame or scale factor.
package pool

import "sync"

// MaxLevels is the number of distinct bucket classes, matching
// ExtractorConfig's NLevels ceiling: no extractor configuration has more
// than 12 pyramid levels, so one bucket per possible octave (plus however
// much an undersized request rounds up into its neighbour) is enough.
const MaxLevels = 12

// baseBucketSize is the top (largest) bucket: a level-0 buffer for a
// comfortably-above-real-time-target frame (1920x1080, well past the
// 640x480 VGA target this extractor is tuned for) plus the EdgeThreshold
// border doubled on each axis.
const baseBucketSize = (1920 + 2*19) * (1080 + 2*19)

// levelShrinkNum/levelShrinkDen approximate (1/scaleFactor)^2 at the
// steepest allowed scaleFactor (1.5): a level's bordered buffer shrinks by
// at most this ratio relative to its predecessor, so stepping the bucket
// ladder down by this ratio guarantees every bucket is at least as large
// as the octave it is meant to serve, for any configured scaleFactor in
// [1.001, 1.5].
const levelShrinkNum, levelShrinkDen = 4, 9 // (1/1.5)^2

var sizes [MaxLevels]int
var pools [MaxLevels]sync.Pool

func init() {
	sz := baseBucketSize
	for i := MaxLevels - 1; i >= 0; i-- {
		sizes[i] = sz
		sz = sz * levelShrinkNum / levelShrinkDen
		if sz < 1 {
			sz = 1
		}
	}
	for i := range pools {
		s := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, s)
				return &b
			},
		}
	}
}

// bucketIndex returns the smallest bucket whose size covers size, or the
// top bucket if size exceeds every rung of the ladder.
func bucketIndex(size int) int {
	for i, s := range sizes {
		if size <= s {
			return i
		}
	}
	return MaxLevels - 1
}

// Get returns a byte slice of at least the requested size from the pool.
// The returned slice has length == size and may have a larger capacity.
// The caller must call Put when done with it.
func Get(size int) []byte {
	if size <= 0 {
		return nil
	}
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		return make([]byte, size)
	}
	return b[:size]
}

// Put returns a byte slice to the pool. The slice must have been obtained
// from Get, or be nil (a no-op).
func Put(b []byte) {
	c := cap(b)
	if c == 0 || c < sizes[0] {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	pools[idx].Put(&b)
}
