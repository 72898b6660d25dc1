package orb

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robovision/orbextract/internal/distribute"
)

func uniformImage(w, h int, v byte) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// TestE1UniformImageYieldsNoKeypoints covers scenario E1: a uniform image
// has no corners at any configuration.
func TestE1UniformImageYieldsNoKeypoints(t *testing.T) {
	img := uniformImage(640, 480, 128)
	ex := NewExtractor(DefaultConfig())

	kps, desc, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	assert.Empty(t, kps)
	assert.Equal(t, 0, desc.Rows)
}

// TestE2SingleBlockProducesNearbyKeypoint covers scenario E2: a single
// bright 3x3 block on a dark background yields at least one keypoint near
// its center on level 0.
func TestE2SingleBlockProducesNearbyKeypoint(t *testing.T) {
	img := uniformImage(640, 480, 0)
	cx, cy := 320, 240
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			img.SetGray(cx+dx, cy+dy, color.Gray{Y: 255})
		}
	}

	cfg := DefaultConfig()
	cfg.NLevels = 4
	cfg.ScaleFactor = 1.2
	cfg.IniThFAST = 20
	cfg.Distribution = distribute.SSC
	ex := NewExtractor(cfg)

	kps, _, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(kps), cfg.NLevels+cfg.SoftSSCThreshold)

	found := false
	for _, kp := range kps {
		if kp.Octave == 0 && math.Abs(kp.Pt.X-float64(cx)) <= 2 && math.Abs(kp.Pt.Y-float64(cy)) <= 2 {
			found = true
		}
	}
	assert.True(t, found, "expected a level-0 keypoint within 2 pixels of the block centre")
}

// TestShapeBound covers property 1: |keypoints| <= nfeatures + tol.
func TestShapeBound(t *testing.T) {
	img := checkerboard(256, 256, 16)
	cfg := DefaultConfig()
	cfg.NFeatures = 200
	ex := NewExtractor(cfg)

	kps, _, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(kps), cfg.NFeatures+cfg.SoftSSCThreshold)
}

// TestDescriptorShape covers property 2.
func TestDescriptorShape(t *testing.T) {
	img := checkerboard(256, 256, 16)
	ex := NewExtractor(DefaultConfig())

	kps, desc, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	assert.Equal(t, len(kps), desc.Rows)
	assert.Equal(t, 32, desc.Cols)
}

// TestScaleAndOctaveCorrectness covers property 3.
func TestScaleAndOctaveCorrectness(t *testing.T) {
	img := checkerboard(256, 256, 16)
	cfg := DefaultConfig()
	ex := NewExtractor(cfg)

	kps, _, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	st := ex.scaleTable()
	for _, kp := range kps {
		assert.GreaterOrEqual(t, kp.Octave, 0)
		assert.Less(t, kp.Octave, cfg.NLevels)
		assert.InDelta(t, float64(PatchSize*st.Scale[kp.Octave]), float64(kp.Size), 1e-3)
	}
}

// TestCoordinateFrame covers property 4: every keypoint lies within the
// base image bounds.
func TestCoordinateFrame(t *testing.T) {
	img := checkerboard(256, 256, 16)
	ex := NewExtractor(DefaultConfig())

	kps, _, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	for _, kp := range kps {
		assert.GreaterOrEqual(t, kp.Pt.X, 0.0)
		assert.Less(t, kp.Pt.X, 256.0)
		assert.GreaterOrEqual(t, kp.Pt.Y, 0.0)
		assert.Less(t, kp.Pt.Y, 256.0)
	}
}

// TestIdempotence covers property 8: two successive calls on the same
// image with the same extractor return identical results.
func TestIdempotence(t *testing.T) {
	img := checkerboard(256, 256, 16)
	ex := NewExtractor(DefaultConfig())

	kps1, desc1, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	kps2, desc2, err := ex.ExtractGray(img, true)
	require.NoError(t, err)

	require.Equal(t, len(kps1), len(kps2))
	for i := range kps1 {
		assert.Equal(t, kps1[i], kps2[i])
	}
	assert.Equal(t, desc1.Data, desc2.Data)
}

// TestDistributePerLevelModesBothBounded covers scenario E5's bound half:
// both modes stay within quota.
func TestDistributePerLevelModesBothBounded(t *testing.T) {
	img := checkerboard(256, 256, 16)
	cfg := DefaultConfig()
	cfg.NFeatures = 300
	exTrue := NewExtractor(cfg)
	exFalse := NewExtractor(cfg)

	kpsTrue, _, err := exTrue.ExtractGray(img, true)
	require.NoError(t, err)
	kpsFalse, _, err := exFalse.ExtractGray(img, false)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(kpsTrue), cfg.NFeatures+cfg.SoftSSCThreshold)
	assert.LessOrEqual(t, len(kpsFalse), cfg.NFeatures+cfg.SoftSSCThreshold)
}

// TestSetLevelToDisplayRestrictsOctave covers the supplemented
// levelToDisplay debug knob: when set, every returned keypoint comes from
// the chosen octave, and LevelImage exposes that octave's pixel data.
func TestSetLevelToDisplayRestrictsOctave(t *testing.T) {
	img := checkerboard(256, 256, 16)
	cfg := DefaultConfig()
	cfg.NLevels = 4
	ex := NewExtractor(cfg)
	ex.SetLevelToDisplay(2)

	kps, _, err := ex.ExtractGray(img, true)
	require.NoError(t, err)
	for _, kp := range kps {
		assert.Equal(t, 2, kp.Octave)
	}

	lvl2 := ex.LevelImage(2)
	require.NotNil(t, lvl2)
	assert.Greater(t, lvl2.Bounds().Dx(), 0)
	assert.Nil(t, ex.LevelImage(99))
}

func TestEmptyImageRejected(t *testing.T) {
	ex := NewExtractor(DefaultConfig())
	_, _, err := ex.Extract(nil, 0, 0, 0, true)
	assert.Error(t, err)
}

func checkerboard(w, h, cell int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(20)
			if (x/cell+y/cell)%2 == 0 {
				v = 220
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}
