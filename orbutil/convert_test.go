package orbutil

import (
	"image"
	"image/color"
	"testing"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestNewGrayFromImagePassesThroughOriginGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	g.Pix[0] = 200
	got := NewGrayFromImage(g)
	if got != g {
		t.Error("expected the same *image.Gray to be returned unchanged")
	}
}

func TestNewGrayFromImageConvertsColor(t *testing.T) {
	src := solidRGBA(8, 6, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	got := NewGrayFromImage(src)
	if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 6 {
		t.Fatalf("unexpected bounds: %v", got.Bounds())
	}
	if got.GrayAt(0, 0).Y == 0 {
		t.Error("expected non-zero gray value from mid-gray RGBA source")
	}
}

func TestNewGrayFromImageReanchorsSubImage(t *testing.T) {
	base := image.NewGray(image.Rect(0, 0, 10, 10))
	base.SetGray(5, 5, color.Gray{Y: 42})
	sub := base.SubImage(image.Rect(5, 5, 10, 10)).(*image.Gray)

	got := NewGrayFromImage(sub)
	if got.Bounds().Min != (image.Point{}) {
		t.Errorf("expected re-anchored origin, got %v", got.Bounds().Min)
	}
	if got.GrayAt(0, 0).Y != 42 {
		t.Errorf("expected corner pixel 42, got %d", got.GrayAt(0, 0).Y)
	}
}

func TestNewGrayFromImageScaledNoopBelowMax(t *testing.T) {
	src := solidRGBA(100, 80, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	got := NewGrayFromImageScaled(src, 200)
	if got.Bounds().Dx() != 100 || got.Bounds().Dy() != 80 {
		t.Fatalf("expected unscaled 100x80, got %v", got.Bounds())
	}
}

func TestNewGrayFromImageScaledDownsamplesPreservingAspect(t *testing.T) {
	src := solidRGBA(1000, 500, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	got := NewGrayFromImageScaled(src, 100)
	if got.Bounds().Dx() != 100 {
		t.Errorf("expected width 100, got %d", got.Bounds().Dx())
	}
	if got.Bounds().Dy() != 50 {
		t.Errorf("expected height 50 (aspect preserved), got %d", got.Bounds().Dy())
	}
}
