// Package pyramid builds the scale-space image pyramid an ORB extractor
// detects and describes keypoints over: L downscaled, border-padded
// levels plus the per-level scale table derived from the user scale
// factor.
package pyramid

import (
	"math"

	"github.com/robovision/orbextract/internal/imgproc"
	"github.com/robovision/orbextract/internal/pool"
)

// EdgeThreshold is the reflect-101 border width kept around every level.
const EdgeThreshold = 19

// ScaleTable holds the per-level scale factors derived from a single user
// scale factor s, clamped to [1.001, 1.5].
type ScaleTable struct {
	Scale        []float32
	InvScale     []float32
	Sigma2       []float32
	InvSigma2    []float32
	ScaleFactor  float32
	NLevels      int
}

// NewScaleTable computes a ScaleTable for nlevels octaves with the given
// (unclamped) user scale factor.
func NewScaleTable(scaleFactor float32, nlevels int) ScaleTable {
	if scaleFactor < 1.001 {
		scaleFactor = 1.001
	}
	if scaleFactor > 1.5 {
		scaleFactor = 1.5
	}
	st := ScaleTable{
		Scale:       make([]float32, nlevels),
		InvScale:    make([]float32, nlevels),
		Sigma2:      make([]float32, nlevels),
		InvSigma2:   make([]float32, nlevels),
		ScaleFactor: scaleFactor,
		NLevels:     nlevels,
	}
	st.Scale[0] = 1
	st.InvScale[0] = 1
	st.Sigma2[0] = 1
	st.InvSigma2[0] = 1
	for i := 1; i < nlevels; i++ {
		st.Scale[i] = scaleFactor * st.Scale[i-1]
		st.InvScale[i] = 1 / st.Scale[i]
		st.Sigma2[i] = st.Scale[i] * st.Scale[i]
		st.InvSigma2[i] = 1 / st.Sigma2[i]
	}
	return st
}

// Level is one pyramid octave: a bordered pixel buffer together with a
// view of its usable interior. Interior pixel (0,0) sits at
// (EdgeThreshold, EdgeThreshold) in Buffer; border pixels are reachable through
// negative offsets from the interior origin, within EdgeThreshold pixels.
type Level struct {
	Buffer imgproc.Buffer
	Cols   int // interior width
	Rows   int // interior height
}

// InteriorOffset returns the byte offset of interior pixel (x, y).
func (l Level) InteriorOffset(x, y int) int {
	return l.Buffer.At(x+EdgeThreshold, y+EdgeThreshold)
}

// At returns the interior pixel at (x, y).
func (l Level) At(x, y int) byte {
	return l.Buffer.Pix[l.InteriorOffset(x, y)]
}

// Builder constructs and (when dimensions match) reuses a pyramid's level
// buffers across calls, mirroring the teacher's pooled-allocation pattern
// in internal/pool for the WebP encoder's per-frame scratch state.
type Builder struct {
	levels    []Level
	prevW     int
	prevH     int
	allocated bool
}

// NewBuilder creates an empty pyramid builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Levels returns the most recently built levels, or nil if Build has not
// been called yet.
func (b *Builder) Levels() []Level {
	return b.levels
}

// Build produces nlevels bordered pyramid levels from src (cols x rows,
// 8-bit grayscale, row-stride srcStride), reusing prior-call allocations
// when src's dimensions and every level's scaled size are unchanged.
func (b *Builder) Build(src []byte, cols, rows, srcStride int, st ScaleTable) []Level {
	nlevels := st.NLevels
	reuse := b.allocated && b.prevW == cols && b.prevH == rows && len(b.levels) == nlevels
	if reuse {
		for i := range b.levels {
			w := int(math.Round(float64(cols) * float64(st.InvScale[i])))
			h := int(math.Round(float64(rows) * float64(st.InvScale[i])))
			if b.levels[i].Cols != w || b.levels[i].Rows != h {
				reuse = false
			}
		}
	}
	if !reuse {
		if b.allocated {
			for i := range b.levels {
				pool.Put(b.levels[i].Buffer.Pix)
			}
		}
		b.levels = make([]Level, nlevels)
		for i := 0; i < nlevels; i++ {
			w := int(math.Round(float64(cols) * float64(st.InvScale[i])))
			h := int(math.Round(float64(rows) * float64(st.InvScale[i])))
			bw := w + 2*EdgeThreshold
			bh := h + 2*EdgeThreshold
			buf := imgproc.Buffer{
				Pix:    pool.Get(bw * bh),
				Stride: bw,
				Rows:   bh,
				Cols:   bw,
			}
			b.levels[i] = Level{Buffer: buf, Cols: w, Rows: h}
		}
		b.prevW, b.prevH, b.allocated = cols, rows, true
	}

	level0 := b.levels[0]
	srcBuf := imgproc.Buffer{Pix: src, Stride: srcStride, Rows: rows, Cols: cols}
	imgproc.ResizeBilinear(level0.Buffer, EdgeThreshold, EdgeThreshold, level0.Cols, level0.Rows, srcBuf, 0, 0, cols, rows)
	imgproc.FillBorderReflect101(level0.Buffer, EdgeThreshold, EdgeThreshold, level0.Cols, level0.Rows)

	for i := 1; i < nlevels; i++ {
		prev := b.levels[i-1]
		cur := b.levels[i]
		imgproc.ResizeBilinear(cur.Buffer, EdgeThreshold, EdgeThreshold, cur.Cols, cur.Rows,
			prev.Buffer, EdgeThreshold, EdgeThreshold, prev.Cols, prev.Rows)
		// Border is isolated: FillBorderReflect101 only ever reads the
		// interior it was just given, never level i-1's own border.
		imgproc.FillBorderReflect101(cur.Buffer, EdgeThreshold, EdgeThreshold, cur.Cols, cur.Rows)
	}

	return b.levels
}
