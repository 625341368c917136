// Package geom is the geometry predicate library behind gaze and
// gesture classification: stateless yes/no and numeric questions about
// two- and three-point configurations.
//
// Degenerate geometry is never an error. A zero-length vector makes
// every colinearity, bend, parallelism, and horizon predicate return
// false; Distance2D is always well-defined.
package geom

import (
	"math"

	"github.com/ayusman/mudra/internal/landmark"
)

// Default tolerances. Every predicate takes its tolerance explicitly;
// these are the documented values callers start from.
const (
	// DefaultColinearTolerance is the maximum normalized cross-product
	// (3D) or signed-area (2D) magnitude for three points to count as
	// on one line.
	DefaultColinearTolerance = 0.15

	// DefaultBendTolerance is the minimum normalized cross-product
	// magnitude for a joint to count as sharply bent. Independent of
	// the colinear tolerance; the two are not complements.
	DefaultBendTolerance = 0.25

	// DefaultParallelToleranceDeg is the allowed deviation, in degrees,
	// from 0 or 180 for two segments to count as parallel.
	DefaultParallelToleranceDeg = 20.0

	// DefaultHorizonThresholdDeg is the allowed deviation, in degrees,
	// from the horizontal axis for a segment to count as level.
	DefaultHorizonThresholdDeg = 30.0
)

// Colinear3D reports whether p1, p2, p3 lie on one line in model
// space: the normalized magnitude of the cross product of (p2-p1) and
// (p3-p1) is below tolerance. Zero-length vectors yield false.
func Colinear3D(p1, p2, p3 landmark.Point3D, tolerance float64) bool {
	m, ok := crossMagnitude3D(p1, p2, p3)
	return ok && m < tolerance
}

// BentAngle3D is the complementary sharp-bend predicate: true when the
// normalized cross-product magnitude exceeds tolerance. Zero-length
// vectors yield false, the same as Colinear3D.
func BentAngle3D(p1, p2, p3 landmark.Point3D, tolerance float64) bool {
	m, ok := crossMagnitude3D(p1, p2, p3)
	return ok && m > tolerance
}

// crossMagnitude3D computes |(p2-p1) x (p3-p1)| / (|p2-p1| |p3-p1|).
// ok is false when either vector has zero length.
func crossMagnitude3D(p1, p2, p3 landmark.Point3D) (float64, bool) {
	ax, ay, az := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	bx, by, bz := p3.X-p1.X, p3.Y-p1.Y, p3.Z-p1.Z

	la := math.Sqrt(ax*ax + ay*ay + az*az)
	lb := math.Sqrt(bx*bx + by*by + bz*bz)
	if la == 0 || lb == 0 {
		return 0, false
	}

	cx := ay*bz - az*by
	cy := az*bx - ax*bz
	cz := ax*by - ay*bx

	return math.Sqrt(cx*cx+cy*cy+cz*cz) / (la * lb), true
}

// Colinear2D is the pixel-space analogue of Colinear3D, using the
// signed area (2D cross product) in place of the 3D cross magnitude.
func Colinear2D(p1, p2, p3 landmark.Point2D, tolerance float64) bool {
	ax, ay := p2.X-p1.X, p2.Y-p1.Y
	bx, by := p3.X-p1.X, p3.Y-p1.Y

	la := math.Hypot(ax, ay)
	lb := math.Hypot(bx, by)
	if la == 0 || lb == 0 {
		return false
	}

	return math.Abs(ax*by-ay*bx)/(la*lb) < tolerance
}

// LinesParallel2D reports whether segments (p1,p2) and (q1,q2) are
// parallel within toleranceDeg: the angle between them, from the
// inverse cosine of their normalized dot product, is within
// toleranceDeg of 0 or of 180 degrees. Zero-length segments yield
// false.
func LinesParallel2D(p1, p2, q1, q2 landmark.Point2D, toleranceDeg float64) bool {
	ux, uy := p2.X-p1.X, p2.Y-p1.Y
	vx, vy := q2.X-q1.X, q2.Y-q1.Y

	lu := math.Hypot(ux, uy)
	lv := math.Hypot(vx, vy)
	if lu == 0 || lv == 0 {
		return false
	}

	// Clamp guards floating-point overshoot before acos.
	cos := (ux*vx + uy*vy) / (lu * lv)
	cos = math.Max(-1, math.Min(1, cos))

	deg := math.Acos(cos) * 180 / math.Pi
	return deg <= toleranceDeg || deg >= 180-toleranceDeg
}

// Distance2D is the Euclidean distance between two points in pixel
// space.
func Distance2D(p1, p2 landmark.Point2D) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// AngleToHorizon reports whether segment (p1,p2) is nearly level: its
// absolute angle from the horizontal axis is below thresholdDeg or
// above 180-thresholdDeg. A zero-length segment yields false.
func AngleToHorizon(p1, p2 landmark.Point2D, thresholdDeg float64) bool {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	if dx == 0 && dy == 0 {
		return false
	}

	deg := math.Abs(math.Atan2(dy, dx) * 180 / math.Pi)
	return deg < thresholdDeg || deg > 180-thresholdDeg
}
