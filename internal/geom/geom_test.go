package geom

import "testing"

func TestOverlapStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	if !Overlap(a, b) {
		t.Fatalf("expected intersecting rectangles to overlap")
	}
}

func TestOverlapTouchingEdgesDoNotCollide(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []Rect{
		{X: 10, Y: 0, W: 10, H: 10}, // right edge
		{X: -10, Y: 0, W: 10, H: 10},
		{X: 0, Y: 10, W: 10, H: 10},
		{X: 0, Y: -10, W: 10, H: 10},
	}
	for i, b := range cases {
		if Overlap(a, b) {
			t.Fatalf("case %d: touching rectangles should not collide", i)
		}
	}
}

func TestOverlapDisjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 100, Y: 100, W: 5, H: 5}
	if Overlap(a, b) {
		t.Fatalf("disjoint rectangles must not overlap")
	}
}

func TestCollidesAnyEmptyList(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if CollidesAny(r, nil) {
		t.Fatalf("nil obstacle list must never collide")
	}
	if CollidesAny(r, []Rect{}) {
		t.Fatalf("empty obstacle list must never collide")
	}
}

func TestCollidesAnyFindsHit(t *testing.T) {
	r := Rect{X: 110, Y: 120, W: 10, H: 10}
	obstacles := []Rect{
		{X: 0, Y: 0, W: 20, H: 20},
		{X: 100, Y: 100, W: 50, H: 50},
	}
	if !CollidesAny(r, obstacles) {
		t.Fatalf("expected collision with second obstacle")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, W: 4, H: 6}.Center()
	if c.X != 12 || c.Y != 23 {
		t.Fatalf("unexpected center %+v", c)
	}
}
