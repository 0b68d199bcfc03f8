package easing

// Function remaps linear progress in [0,1] into perceptual progress in [0,1].
// Implementations must be monotonic and fix the endpoints (f(0)=0, f(1)=1).
type Function func(t float64) float64

// Linear is the identity easing. Useful for deterministic tests where the
// raw transition fraction should survive unchanged.
func Linear(t float64) float64 {
	return t
}

// CubicBezier builds an easing function from a cubic Bézier curve that
// starts at (0,0) going toward (x0,y0) and arrives at (1,1) coming from
// (x1,y1) — the same parameterization CSS transition timing uses.
//
// Given progress x we solve the curve parameter u with a few Newton
// iterations (the curve's x component is monotonic for control points in
// [0,1]) and evaluate the y component at u.
func CubicBezier(x0, y0, x1, y1 float64) Function {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for i := 0; i < 8; i++ {
			u2 := u * u
			u3 := u2 * u
			d := 1 - u
			d2 := d * d

			x := 3*d2*u*x0 + 3*d*u2*x1 + u3
			dxdu := 3*d2*x0 + 6*d*u*(x1-x0) + 3*u2*(1-x1)
			if dxdu == 0 {
				break
			}

			u -= (x - t) / dxdu
			if u <= 0 {
				u = 0
				break
			}
			if u >= 1 {
				u = 1
				break
			}
		}

		u2 := u * u
		u3 := u2 * u
		d := 1 - u
		return 3*d*d*u*y0 + 3*d*u2*y1 + u3
	}
}

// The transition curves used by the zoom interpolator. Zoom-in starts
// fast and settles; zoom-out is symmetric.
var (
	ZoomIn  = CubicBezier(0.1, 0.0, 0.3, 1.0)
	ZoomOut = CubicBezier(0.5, 0.0, 0.5, 1.0)
)
