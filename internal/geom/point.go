package geom

// Point is a 2D point in normalized frame coordinates.
// Values outside [0,1] are legal: zoom bounds overshoot the frame
// while a zoom-out tail is still settling.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Lerp interpolates componentwise between a and b: a*(1-t) + b*t.
func Lerp(a, b Point, t float64) Point {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// LerpScalar interpolates between a and b.
func LerpScalar(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
