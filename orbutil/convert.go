// Package orbutil holds optional conversion helpers for callers whose
// source images aren't already a same-size *image.Gray: arbitrary color
// models, or frames larger than the extractor's real-time target.
// Nothing in orbextract's core pipeline imports this package; it exists so
// callers don't each reinvent the same image.Image-to-*image.Gray-plus-
// resize glue before calling Extractor.ExtractGray.
package orbutil

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// NewGrayFromImage converts an arbitrary image.Image to *image.Gray,
// anchored at the origin. Images that are already *image.Gray starting at
// (0,0) are returned as-is; everything else (RGBA frames, sub-images with a
// non-zero origin, paletted images, and so on) is drawn through the
// standard library's image/draw Draw with the Src op, which performs the
// color-model conversion to gray.
func NewGrayFromImage(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return g
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// NewGrayFromImageScaled converts img to grayscale and, if it exceeds
// maxDim on either axis, bilinearly downsamples it to fit within maxDim
// while preserving aspect ratio. maxDim <= 0 disables the resize and
// behaves exactly like NewGrayFromImage. Use this ahead of Extract when
// feeding in frames larger than the extractor's tuned working resolution,
// since the pyramid and FAST thresholds are tuned relative to a roughly
// VGA-scale base level.
func NewGrayFromImageScaled(img image.Image, maxDim int) *image.Gray {
	gray := NewGrayFromImage(img)
	if maxDim <= 0 {
		return gray
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return gray
	}

	scale := float64(maxDim) / float64(w)
	if hs := float64(maxDim) / float64(h); hs < scale {
		scale = hs
	}
	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewGray(image.Rect(0, 0, nw, nh))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), gray, b, xdraw.Src, nil)
	return dst
}
