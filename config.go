package orb

import (
	"github.com/robovision/orbextract/internal/distribute"
	"github.com/robovision/orbextract/internal/fastdet"
	"github.com/robovision/orbextract/internal/pyramid"
)

// state is the extractor's tiny lifecycle state machine. Any mutator that
// changes nlevels, scaleFactor, or the input dimensions drops the
// extractor back to freshlyConfigured, forcing a step-cache rebuild on
// the next Extract call.
type state int

const (
	freshlyConfigured state = iota
	ready
)

// ExtractorConfig bundles every extractor tunable.
type ExtractorConfig struct {
	NFeatures        int
	ScaleFactor      float32
	NLevels          int
	IniThFAST        int
	MinThFAST        int
	Distribution     distribute.Mode
	ScoreType        fastdet.ScoreType
	SoftSSCThreshold int
}

// DefaultConfig returns the extractor's default configuration: 1000
// features, scale factor 1.2, 8 levels, FAST thresholds 20/7, SSC
// distribution with a tolerance of 10, and Harris scoring.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		NFeatures:        1000,
		ScaleFactor:      1.2,
		NLevels:          8,
		IniThFAST:        20,
		MinThFAST:        7,
		Distribution:     distribute.SSC,
		ScoreType:        fastdet.Harris,
		SoftSSCThreshold: 10,
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

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetNFeatures clamps n to [1, 10000] and recomputes the per-level
// feature quota.
func (e *Extractor) SetNFeatures(n int) {
	e.cfg.NFeatures = clampInt(n, 1, 10000)
	e.invalidate()
}

// SetScaleFactor clamps s to [1.001, 1.5] and rebuilds the scale table,
// invalidating the step cache.
func (e *Extractor) SetScaleFactor(s float32) {
	e.cfg.ScaleFactor = clampFloat32(s, 1.001, 1.5)
	e.state = freshlyConfigured
}

// SetNLevels clamps n to [2, 12] and rebuilds every per-level vector.
func (e *Extractor) SetNLevels(n int) {
	e.cfg.NLevels = clampInt(n, 2, 12)
	e.state = freshlyConfigured
}

// SetFASTThresholds clamps so that 1 <= min <= ini <= 255 and forwards to
// the FAST detector.
func (e *Extractor) SetFASTThresholds(ini, min int) {
	ini = clampInt(ini, 1, 255)
	min = clampInt(min, 1, ini)
	e.cfg.IniThFAST = ini
	e.cfg.MinThFAST = min
	if e.fast != nil {
		e.fast.SetThresholds(ini, min)
	}
}

// SetDistribution selects the keypoint distribution strategy.
func (e *Extractor) SetDistribution(mode distribute.Mode) {
	e.cfg.Distribution = mode
}

// SetScoreType selects the corner response metric.
func (e *Extractor) SetScoreType(s fastdet.ScoreType) {
	e.cfg.ScoreType = s
	if e.fast != nil {
		e.fast.SetScoreType(s)
	}
}

// SetSoftSSCThreshold sets the acceptable |output|-N slack the SSC
// distributor's binary search tolerates.
func (e *Extractor) SetSoftSSCThreshold(tol int) {
	e.cfg.SoftSSCThreshold = tol
}

// SetLevelToDisplay restricts the tiled FAST driver to a single pyramid
// level; -1 (the default) disables the restriction and processes every
// level. The pyramid itself is still built in full, so LevelImage can
// return any level. Supplemented from the original
// extractor's GUI preview knob, minus the GUI: a cheap debug/visualization
// hook with no effect on descriptor or keypoint semantics beyond limiting
// which octave(s) contribute.
func (e *Extractor) SetLevelToDisplay(level int) {
	if level < -1 {
		level = -1
	}
	if level >= e.cfg.NLevels {
		level = e.cfg.NLevels - 1
	}
	e.levelToDisplay = level
}

func (e *Extractor) invalidate() {
	e.state = freshlyConfigured
}

func (e *Extractor) scaleTable() pyramid.ScaleTable {
	return pyramid.NewScaleTable(e.cfg.ScaleFactor, e.cfg.NLevels)
}
