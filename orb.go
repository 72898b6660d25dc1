package orb

import (
	"fmt"
	"image"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/robovision/orbextract/internal/brief"
	"github.com/robovision/orbextract/internal/distribute"
	"github.com/robovision/orbextract/internal/fastdet"
	"github.com/robovision/orbextract/internal/imgproc"
	"github.com/robovision/orbextract/internal/orient"
	"github.com/robovision/orbextract/internal/pyramid"
)

// cellSize is the target tile size, in pixels, the tiled FAST driver
// divides each level's usable region into.
const cellSize = 30

// Extractor is a stateful ORB feature extractor. It owns its pyramid
// buffers, FAST offset cache, and per-level feature quota, reusing
// allocations across calls with matching image dimensions.
//
// Not safe for concurrent use by multiple goroutines against the same
// instance; create one Extractor per producer.
type Extractor struct {
	cfg   ExtractorConfig
	state state

	builder *pyramid.Builder
	fast    *fastdet.Detector

	st    pyramid.ScaleTable
	quota []int

	levelToDisplay int
	prevCols       int
	prevRows       int
}

// NewExtractor creates an Extractor with the given configuration.
func NewExtractor(cfg ExtractorConfig) *Extractor {
	return &Extractor{
		cfg:            cfg,
		builder:        pyramid.NewBuilder(),
		fast:           fastdet.NewDetector(cfg.IniThFAST, cfg.MinThFAST, cfg.ScoreType),
		state:          freshlyConfigured,
		levelToDisplay: -1,
	}
}

// featureQuota computes the per-level target keypoint count from the
// total N and scale factor s, reproducing the original extractor's
// per-level recurrence: q[i] = round(N*(1-1/s)*(1/s)^i / (1-(1/s)^L)) for
// i < L-1, and q[L-1] = max(N - sum(q[i<L-1]), 0).
func featureQuota(n int, scaleFactor float32, nlevels int) []int {
	quota := make([]int, nlevels)
	fac := 1.0 / float64(scaleFactor)
	nDesired := float64(n) * (1 - fac) / (1 - math.Pow(fac, float64(nlevels)))
	sum := 0
	for i := 0; i < nlevels-1; i++ {
		q := imgproc.Round(nDesired)
		quota[i] = q
		sum += q
		nDesired *= fac
	}
	last := n - sum
	if last < 0 {
		last = 0
	}
	quota[nlevels-1] = last
	return quota
}

// ensureReady rebuilds the scale table and feature quota when the
// extractor is freshly configured, bringing it to the Ready(cols, rows)
// state.
func (e *Extractor) ensureReady(cols, rows int) {
	if e.state == ready && e.prevCols == cols && e.prevRows == rows {
		return
	}
	e.st = e.scaleTable()
	e.quota = featureQuota(e.cfg.NFeatures, e.cfg.ScaleFactor, e.cfg.NLevels)
	e.fast.SetThresholds(e.cfg.IniThFAST, e.cfg.MinThFAST)
	e.fast.SetScoreType(e.cfg.ScoreType)
	e.prevCols, e.prevRows = cols, rows
	e.state = ready
}

// ExtractGray runs the extraction pipeline over an *image.Gray, a
// convenience wrapper around Extract.
func (e *Extractor) ExtractGray(img *image.Gray, distributePerLevel bool) ([]KeyPoint, Descriptors, error) {
	if img == nil {
		return nil, Descriptors{}, fmt.Errorf("orb: nil image")
	}
	b := img.Bounds()
	return e.Extract(img.Pix, b.Dx(), b.Dy(), img.Stride, distributePerLevel)
}

// Extract runs the full pipeline over a single-channel 8-bit grayscale
// buffer (cols x rows, row stride in bytes) and returns the detected
// keypoints plus their packed 256-bit descriptors.
//
// distributePerLevel selects between per-level distribution (quota
// applied independently at each octave, before orientation) and a single
// global pass across all levels (orientation and base-frame rescaling
// happen first, then one Distributor call with quota N).
func (e *Extractor) Extract(image []byte, cols, rows, stride int, distributePerLevel bool) ([]KeyPoint, Descriptors, error) {
	if cols <= 0 || rows <= 0 || len(image) == 0 {
		return nil, Descriptors{}, fmt.Errorf("orb: empty image")
	}
	if stride < cols {
		return nil, Descriptors{}, fmt.Errorf("orb: stride %d smaller than width %d", stride, cols)
	}

	e.ensureReady(cols, rows)

	levels := e.builder.Build(image, cols, rows, stride, e.st)

	strides := make([]int, len(levels))
	for i, lvl := range levels {
		strides[i] = lvl.Buffer.Stride
	}
	e.fast.Configure(strides)

	perLevel := make([][]distribute.Candidate, len(levels))
	bounds := make([]distribute.Bounds, len(levels))

	g := new(errgroup.Group)
	for i := range levels {
		i := i
		if e.levelToDisplay >= 0 && i != e.levelToDisplay {
			bounds[i] = distribute.Bounds{}
			continue
		}
		g.Go(func() error {
			cand, b := e.detectLevel(levels[i], i)
			perLevel[i] = cand
			bounds[i] = b
			return nil
		})
	}
	_ = g.Wait()

	if distributePerLevel {
		return e.extractPerLevel(levels, perLevel, bounds)
	}
	return e.extractGlobal(levels, perLevel, bounds)
}

// usableRegion returns the tiled driver's usable sub-rectangle of a level
// of the given interior size, per the EdgeThreshold-3 margin rule.
func usableRegion(cols, rows int) (minX, minY, maxX, maxY int) {
	minX = pyramid.EdgeThreshold - 3
	minY = pyramid.EdgeThreshold - 3
	maxX = cols - pyramid.EdgeThreshold + 3
	maxY = rows - pyramid.EdgeThreshold + 3
	return
}

// detectLevel runs the tiled FAST driver over one pyramid level, returning
// candidates in [0, width) x [0, height) coordinates (i.e. relative to
// the usable region's origin, not yet offset by minX/minY) and the
// corresponding Bounds for distribution.
func (e *Extractor) detectLevel(level pyramid.Level, lvl int) ([]distribute.Candidate, distribute.Bounds) {
	minX, minY, maxX, maxY := usableRegion(level.Cols, level.Rows)
	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return nil, distribute.Bounds{}
	}

	npatchesX := width / cellSize
	if npatchesX < 1 {
		npatchesX = 1
	}
	npatchesY := height / cellSize
	if npatchesY < 1 {
		npatchesY = 1
	}
	tileW := (width + npatchesX - 1) / npatchesX
	tileH := (height + npatchesY - 1) / npatchesY

	iniTh, minTh := e.fast.Thresholds()

	var out []distribute.Candidate
	for py := 0; py < npatchesY; py++ {
		y0 := py * tileH
		if height-y0 < 3 {
			continue
		}
		y1 := y0 + tileH + 6
		if y1 > height {
			y1 = height
		}
		for px := 0; px < npatchesX; px++ {
			x0 := px * tileW
			if width-x0 < 6 {
				continue
			}
			x1 := x0 + tileW + 6
			if x1 > width {
				x1 = width
			}

			tw := x1 - x0
			th := y1 - y0
			if tw <= 6 || th <= 6 {
				continue
			}
			base := level.InteriorOffset(minX+x0, minY+y0)

			cands := e.fast.Detect(level.Buffer.Pix, base, level.Buffer.Stride, tw, th, lvl, iniTh)
			if len(cands) == 0 {
				cands = e.fast.Detect(level.Buffer.Pix, base, level.Buffer.Stride, tw, th, lvl, minTh)
			}
			for _, c := range cands {
				out = append(out, distribute.Candidate{
					X:        float32(c.X + px*tileW),
					Y:        float32(c.Y + py*tileH),
					Response: c.Response,
				})
			}
		}
	}

	return out, distribute.Bounds{MinX: 0, MaxX: float32(width), MinY: 0, MaxY: float32(height)}
}

func (e *Extractor) distConfig() distribute.Config {
	return distribute.Config{
		Mode:             e.cfg.Distribution,
		SoftSSCThreshold: e.cfg.SoftSSCThreshold,
		ANMSEpsilon:      0.1,
	}
}

// extractPerLevel implements distributePerLevel = true: quota applied at
// each level, orientation and descriptor computed on the survivors, then
// coordinates rescaled to the base frame.
func (e *Extractor) extractPerLevel(levels []pyramid.Level, perLevel [][]distribute.Candidate, bounds []distribute.Bounds) ([]KeyPoint, Descriptors, error) {
	var kps []KeyPoint
	var descRows [][]byte

	dcfg := e.distConfig()
	for lvl, level := range levels {
		minX, minY, _, _ := usableRegion(level.Cols, level.Rows)
		q := 0
		if lvl < len(e.quota) {
			q = e.quota[lvl]
		}
		kept := distribute.Distribute(perLevel[lvl], bounds[lvl], q, dcfg)

		blurred := blurLevel(level)
		for _, c := range kept {
			lx := int(c.X) + minX
			ly := int(c.Y) + minY
			p := level.InteriorOffset(lx, ly)
			angle := orient.Angle(level.Buffer.Pix, p, level.Buffer.Stride)

			desc := make([]byte, brief.DescriptorBytes)
			bp := blurred.At(lx+pyramid.EdgeThreshold, ly+pyramid.EdgeThreshold)
			brief.Compute(blurred.Pix, bp, blurred.Stride, angle, desc)

			kps = append(kps, KeyPoint{
				Pt:       floatPoint(float64(lx)*float64(e.st.Scale[lvl]), float64(ly)*float64(e.st.Scale[lvl])),
				Size:     PatchSize * e.st.Scale[lvl],
				Angle:    angle,
				Response: c.Response,
				Octave:   lvl,
			})
			descRows = append(descRows, desc)
		}
	}

	return kps, packDescriptors(descRows), nil
}

// extractGlobal implements distributePerLevel = false: orientation and
// base-frame rescaling happen first, then one Distributor pass with
// quota N runs across the concatenation of every level's candidates.
func (e *Extractor) extractGlobal(levels []pyramid.Level, perLevel [][]distribute.Candidate, bounds []distribute.Bounds) ([]KeyPoint, Descriptors, error) {
	type staged struct {
		localX, localY int
		lvl            int
		angle          float32
	}

	var cands []distribute.Candidate
	var meta []staged

	maxW, maxH := float32(0), float32(0)
	for lvl, level := range levels {
		minX, minY, _, _ := usableRegion(level.Cols, level.Rows)
		scale := e.st.Scale[lvl]
		for _, c := range perLevel[lvl] {
			lx := int(c.X) + minX
			ly := int(c.Y) + minY
			p := level.InteriorOffset(lx, ly)
			angle := orient.Angle(level.Buffer.Pix, p, level.Buffer.Stride)

			bx := float32(lx) * scale
			by := float32(ly) * scale
			cands = append(cands, distribute.Candidate{X: bx, Y: by, Response: c.Response, Index: len(meta)})
			meta = append(meta, staged{localX: lx, localY: ly, lvl: lvl, angle: angle})
			if bx > maxW {
				maxW = bx
			}
			if by > maxH {
				maxH = by
			}
		}
	}

	bounds2 := distribute.Bounds{MinX: 0, MaxX: maxW + 1, MinY: 0, MaxY: maxH + 1}
	kept := distribute.Distribute(cands, bounds2, e.cfg.NFeatures, e.distConfig())

	blurredByLevel := make(map[int]imgproc.Buffer)

	// Order by level before building both outputs so descriptor row k stays
	// the descriptor of keypoint k.
	sort.SliceStable(kept, func(i, j int) bool { return meta[kept[i].Index].lvl < meta[kept[j].Index].lvl })

	var kps []KeyPoint
	var descRows [][]byte
	for _, c := range kept {
		m := meta[c.Index]
		blurred, ok := blurredByLevel[m.lvl]
		if !ok {
			blurred = blurLevel(levels[m.lvl])
			blurredByLevel[m.lvl] = blurred
		}

		desc := make([]byte, brief.DescriptorBytes)
		bp := blurred.At(m.localX+pyramid.EdgeThreshold, m.localY+pyramid.EdgeThreshold)
		brief.Compute(blurred.Pix, bp, blurred.Stride, m.angle, desc)

		kps = append(kps, KeyPoint{
			Pt:       floatPoint(float64(c.X), float64(c.Y)),
			Size:     PatchSize * e.st.Scale[m.lvl],
			Angle:    m.angle,
			Response: c.Response,
			Octave:   m.lvl,
		})
		descRows = append(descRows, desc)
	}

	return kps, packDescriptors(descRows), nil
}

// LevelImage returns the interior of pyramid octave level as a standalone
// *image.Gray, for debugging/visualization (e.g. alongside
// SetLevelToDisplay). Returns nil if level is out of range or Extract has
// not yet been called. The returned image is a copy: mutating it does not
// affect the extractor's internal pyramid.
func (e *Extractor) LevelImage(level int) *image.Gray {
	levels := e.builder.Levels()
	if level < 0 || level >= len(levels) {
		return nil
	}
	lvl := levels[level]
	img := image.NewGray(image.Rect(0, 0, lvl.Cols, lvl.Rows))
	for y := 0; y < lvl.Rows; y++ {
		srcOff := lvl.InteriorOffset(0, y)
		copy(img.Pix[y*img.Stride:y*img.Stride+lvl.Cols], lvl.Buffer.Pix[srcOff:srcOff+lvl.Cols])
	}
	return img
}

// blurLevel Gaussian-blurs level's interior into a freshly allocated
// same-shape buffer and reflect-pads the copy's own border, exactly like
// pyramid.Builder.Build pads each level's border (pyramid.go's
// FillBorderReflect101 calls): BRIEF reads up to about 21 pixels (a
// [-15, 15] pattern offset rotated by 45 degrees) from a keypoint near the
// edge of the usable region
// (EdgeThreshold-3=16px in from the interior), which can land a few pixels
// into this border, so it must hold real reflected data rather than the
// zero-valued ring a bare make([]byte, ...) would otherwise leave behind.
func blurLevel(level pyramid.Level) imgproc.Buffer {
	dst := imgproc.Buffer{
		Pix:    make([]byte, len(level.Buffer.Pix)),
		Stride: level.Buffer.Stride,
		Rows:   level.Buffer.Rows,
		Cols:   level.Buffer.Cols,
	}
	imgproc.GaussianBlur7x2(dst, level.Buffer, pyramid.EdgeThreshold, pyramid.EdgeThreshold, level.Cols, level.Rows)
	imgproc.FillBorderReflect101(dst, pyramid.EdgeThreshold, pyramid.EdgeThreshold, level.Cols, level.Rows)
	return dst
}

func packDescriptors(rows [][]byte) Descriptors {
	d := NewDescriptors(len(rows), brief.DescriptorBytes)
	for i, r := range rows {
		copy(d.Row(i), r)
	}
	return d
}
