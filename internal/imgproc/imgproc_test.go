package imgproc

import "testing"

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{0.5000001, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-1.5, -2},
		{-2.5, -3},
	}
	for _, c := range cases {
		if got := Round(c.in); got != c.want {
			t.Errorf("Round(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClip8(t *testing.T) {
	if Clip8(-10) != 0 {
		t.Error("Clip8(-10) should saturate to 0")
	}
	if Clip8(300) != 255 {
		t.Error("Clip8(300) should saturate to 255")
	}
	if Clip8(128) != 128 {
		t.Error("Clip8(128) should be unchanged")
	}
}

func makeSolid(rows, cols int, v byte) Buffer {
	b := NewBuffer(rows, cols)
	for i := range b.Pix {
		b.Pix[i] = v
	}
	return b
}

func TestFillBorderReflect101IsolatesInterior(t *testing.T) {
	const E = 4
	iw, ih := 6, 6
	buf := NewBuffer(ih+2*E, iw+2*E)
	for y := 0; y < ih; y++ {
		for x := 0; x < iw; x++ {
			buf.Pix[buf.At(E+x, E+y)] = byte(10 + x + y*iw)
		}
	}
	FillBorderReflect101(buf, E, E, iw, ih)

	// Reflect-101: the pixel one step outside the interior edge must equal
	// the pixel one step inside it (the edge pixel itself is not
	// duplicated).
	left := buf.Get(E-1, E+2)
	rightOfLeft := buf.Get(E+1, E+2)
	if left != rightOfLeft {
		t.Errorf("left border mismatch: got %d want %d", left, rightOfLeft)
	}
}

func TestResizeBilinearIdentity(t *testing.T) {
	src := makeSolid(8, 8, 100)
	dst := NewBuffer(8, 8)
	ResizeBilinear(dst, 0, 0, 8, 8, src, 0, 0, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if dst.Get(x, y) != 100 {
				t.Fatalf("identity resize of a solid buffer changed pixel (%d,%d): got %d", x, y, dst.Get(x, y))
			}
		}
	}
}

func TestGaussianBlur7x2SmoothsImpulse(t *testing.T) {
	const E = 4
	w, h := 12, 12
	buf := NewBuffer(h+2*E, w+2*E)
	buf.Pix[buf.At(E+w/2, E+h/2)] = 255
	FillBorderReflect101(buf, E, E, w, h)

	dst := NewBuffer(h+2*E, w+2*E)
	GaussianBlur7x2(dst, buf, E, E, w, h)

	center := dst.Get(E+w/2, E+h/2)
	if center == 0 || center == 255 {
		t.Errorf("blurred impulse center should be spread out, got %d", center)
	}
	neighbor := dst.Get(E+w/2+1, E+h/2)
	if neighbor == 0 {
		t.Errorf("blur should spread energy to neighbours, got 0")
	}
}
