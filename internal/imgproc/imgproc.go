// Package imgproc provides the low-level pixel-buffer routines shared by
// the pyramid, FAST detector, and BRIEF descriptor stages: row-stride
// addressed byte buffers, reflect-101 border filling, bilinear resize, and
// separable Gaussian blur.
//
// Like the teacher's dsp package, every routine here operates on a
// full-buffer-plus-base-offset basis: negative-context access (a ring
// sample a few pixels left of a keypoint, say) always resolves to a valid
// non-negative index into the backing slice, never a language-level
// negative index.
package imgproc

import "math"

// Buffer is a single-channel 8-bit rectangular pixel buffer with a
// possibly-larger-than-Cols row stride.
type Buffer struct {
	Pix    []byte
	Stride int
	Rows   int
	Cols   int
}

// NewBuffer allocates a zeroed buffer of the given size. Stride equals
// Cols; callers that need a wider stride can set it directly.
func NewBuffer(rows, cols int) Buffer {
	return Buffer{Pix: make([]byte, rows*cols), Stride: cols, Rows: rows, Cols: cols}
}

// At returns the byte offset of pixel (x, y) into Pix.
func (b Buffer) At(x, y int) int { return y*b.Stride + x }

// Get returns the pixel value at (x, y).
func (b Buffer) Get(x, y int) byte { return b.Pix[b.At(x, y)] }

// Round implements round-half-away-from-zero for float->int pixel
// coordinate conversion, per spec contract (mismatches with round-half-even
// produce descriptor drift, so this rounding mode is load-bearing).
func Round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

// RoundF32 is the float32 overload of Round.
func RoundF32(v float32) int {
	return Round(float64(v))
}

// Clip8 saturates v to [0, 255] and truncates to a byte.
func Clip8(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// reflect101 maps an out-of-range coordinate p (can be arbitrarily far out
// of [0, n)) back into [0, n) using BORDER_REFLECT_101 semantics
// (gfedcb|abcdefgh|gfedcba — the edge pixel itself is not duplicated).
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		}
		if p >= n {
			p = 2*(n-1) - p
		}
	}
	return p
}

// FillBorderReflect101 fills the margin pixels of a buffer around an
// interior rectangle [ix, ix+iw) x [iy, iy+ih) that has already been
// written, using BORDER_REFLECT_101 padding computed purely from the
// interior (isolated: it never reads pixels belonging to a different
// logical image, even if they happen to be adjacent in memory).
func FillBorderReflect101(b Buffer, ix, iy, iw, ih int) {
	for y := 0; y < b.Rows; y++ {
		ry := y - iy
		inRow := ry >= 0 && ry < ih
		srcRy := reflect101(ry, ih)
		for x := 0; x < b.Cols; x++ {
			rx := x - ix
			if inRow && rx >= 0 && rx < iw {
				continue
			}
			srcRx := reflect101(rx, iw)
			b.Pix[b.At(x, y)] = b.Pix[b.At(ix+srcRx, iy+srcRy)]
		}
	}
}

// ResizeBilinear resamples the srcW x srcH region of src starting at
// (srcIX, srcIY) into an iw x ih region of dst written starting at (dstIX,
// dstIY). Source taps that fall outside the region are clamped to its edge
// pixels (OpenCV INTER_LINEAR-style resize edges); pixels outside the
// source region are never read.
func ResizeBilinear(dst Buffer, dstIX, dstIY, iw, ih int, src Buffer, srcIX, srcIY, srcW, srcH int) {
	if iw <= 0 || ih <= 0 || srcW <= 0 || srcH <= 0 {
		return
	}
	scaleX := float64(srcW) / float64(iw)
	scaleY := float64(srcH) / float64(ih)
	for dy := 0; dy < ih; dy++ {
		fy := (float64(dy)+0.5)*scaleY - 0.5
		y0 := int(math.Floor(fy))
		wy := fy - float64(y0)
		y1 := y0 + 1
		y0c := clampInt(y0, 0, srcH-1)
		y1c := clampInt(y1, 0, srcH-1)
		for dx := 0; dx < iw; dx++ {
			fx := (float64(dx)+0.5)*scaleX - 0.5
			x0 := int(math.Floor(fx))
			wx := fx - float64(x0)
			x1 := x0 + 1
			x0c := clampInt(x0, 0, srcW-1)
			x1c := clampInt(x1, 0, srcW-1)

			p00 := float64(src.Pix[src.At(srcIX+x0c, srcIY+y0c)])
			p10 := float64(src.Pix[src.At(srcIX+x1c, srcIY+y0c)])
			p01 := float64(src.Pix[src.At(srcIX+x0c, srcIY+y1c)])
			p11 := float64(src.Pix[src.At(srcIX+x1c, srcIY+y1c)])

			top := p00 + (p10-p00)*wx
			bot := p01 + (p11-p01)*wx
			v := top + (bot-top)*wy

			dst.Pix[dst.At(dstIX+dx, dstIY+dy)] = Clip8(Round(v))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GaussianKernel1D returns a normalized 1-D Gaussian kernel of the given
// odd size and sigma.
func GaussianKernel1D(size int, sigma float64) []float64 {
	k := make([]float64, size)
	half := size / 2
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / (2 * sigma * sigma))
		k[i] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// GaussianBlur7x2 applies a separable 7x7 Gaussian blur (sigma=2 in both
// axes) to the interior region [ix, ix+w) x [iy, iy+h) of src and writes
// the result into the same region of dst, reading through src's existing
// reflect-101 border for edge taps. dst's border is not written. The
// horizontal pass copies everything the vertical pass needs into a scratch
// buffer before dst is written, so dst may also be src itself.
func GaussianBlur7x2(dst, src Buffer, ix, iy, w, h int) {
	const size = 7
	kernel := GaussianKernel1D(size, 2.0)
	half := size / 2

	// Horizontal pass, computed for h+2*half rows (the interior plus the
	// vertical halo the second pass needs) so the vertical pass can read
	// straight out of tmp without a second reflection step: the extra rows
	// come straight from src's own reflect-101 border, which already holds
	// correct isolated-reflected pixel data.
	tmpH := h + 2*half
	tmp := make([]float64, w*tmpH)
	for ty := 0; ty < tmpH; ty++ {
		y := ty - half
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := -half; k <= half; k++ {
				sum += kernel[k+half] * float64(src.Pix[src.At(ix+x+k, iy+y)])
			}
			tmp[ty*w+x] = sum
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := -half; k <= half; k++ {
				sum += kernel[k+half] * tmp[(y+half+k)*w+x]
			}
			dst.Pix[dst.At(ix+x, iy+y)] = Clip8(Round(sum))
		}
	}
}
