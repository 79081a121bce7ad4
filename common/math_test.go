package common

import "testing"

func TestFromCenter(t *testing.T) {
	tests := []struct {
		name string
		c    Point
		w, h int
		want Rect
	}{
		{name: "sprite_at_screen_center", c: Pt(400, 300), w: 26, h: 36, want: Rect{X: 387, Y: 282, Width: 26, Height: 36}},
		{name: "odd_size", c: Pt(0, 0), w: 5, h: 3, want: Rect{X: -2, Y: -1, Width: 5, Height: 3}},
		{name: "negative_center", c: Pt(-10, -20), w: 4, h: 4, want: Rect{X: -12, Y: -22, Width: 4, Height: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromCenter(tc.c, tc.w, tc.h); got != tc.want {
				t.Fatalf("FromCenter(%v, %d, %d) = %+v, want %+v", tc.c, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestRectImage(t *testing.T) {
	r := Rect{X: 26, Y: 72, Width: 26, Height: 36}
	got := r.Image()
	if got.Min.X != 26 || got.Min.Y != 72 || got.Dx() != 26 || got.Dy() != 36 {
		t.Fatalf("Image() = %v, want min (26,72) size 26x36", got)
	}
}

func TestPointOffset(t *testing.T) {
	p := Pt(5, -5).Offset(5, 0)
	if p != Pt(10, -5) {
		t.Fatalf("Offset = %v, want (10,-5)", p)
	}
	if !Pt(0, 0).IsZero() || Pt(0, 1).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
	if got := Pt(1, 2).Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Fatalf("Add = %v, want (4,6)", got)
	}
}
