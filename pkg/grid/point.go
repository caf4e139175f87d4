package grid

import "fmt"

// Point is a 2D offset in screen coordinates: X grows rightward,
// Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns the point multiplied by f on both axes.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
