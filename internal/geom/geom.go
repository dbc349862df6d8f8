package geom

import "math"

// Rect is an axis-aligned rectangle in world-space units. Width and height
// are always positive for obstacles and entity hit-boxes.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Vec2 is a world-space point or displacement.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Overlap reports whether two rectangles strictly intersect. Rectangles
// that merely touch along an edge do not collide.
func Overlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CollidesAny reports whether r overlaps any obstacle in the list. An
// empty or nil obstacle list never collides.
func CollidesAny(r Rect, obstacles []Rect) bool {
	for _, obs := range obstacles {
		if Overlap(r, obs) {
			return true
		}
	}
	return false
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Dist returns the Euclidean distance between two points.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
