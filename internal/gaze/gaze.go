// Package gaze classifies gaze direction from a single face landmark
// set. Classification is a pure function of the current frame's
// landmarks; there is no smoothing and no state.
//
// The horizontal pupil position is normalized against each eye's own
// corner span, which makes it invariant to head position and scale
// (though not to head rotation). The vertical position is taken
// against the lid span but is NOT clamped or normalized symmetrically
// with the horizontal ratio; that asymmetry is inherited behavior and
// deliberately kept. See the evaluator for the exact ordering.
package gaze

import (
	"github.com/ayusman/mudra/internal/landmark"
)

// Direction is one gaze classification label.
type Direction string

const (
	Center Direction = "CENTER"
	Left   Direction = "LEFT"
	Right  Direction = "RIGHT"
	Up     Direction = "UP"
	Down   Direction = "DOWN"
)

// Thresholds are the decision boundaries of the gaze evaluator. All
// values apply to the 0..1 pupil ratios computed per frame.
type Thresholds struct {
	// HorizontalLow: relX below this reports RIGHT.
	HorizontalLow float64
	// HorizontalHigh: relX above this reports LEFT.
	HorizontalHigh float64
	// VerticalUp: relY in (0, VerticalUp) reports UP.
	VerticalUp float64
}

// DefaultThresholds returns the documented default boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HorizontalLow:  0.35,
		HorizontalHigh: 0.65,
		VerticalUp:     0.3,
	}
}

// IrisCenter returns the arithmetic mean of an iris cluster. An empty
// cluster cannot occur under the fixed landmark scheme; it yields the
// zero point rather than a fault.
func IrisCenter(points []landmark.Point2D) landmark.Point2D {
	if len(points) == 0 {
		return landmark.Point2D{}
	}

	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}

	n := float64(len(points))
	return landmark.Point2D{X: sx / n, Y: sy / n}
}

// Evaluate classifies the gaze direction of one face.
//
// The decision order is fixed and first-match-wins: horizontal
// extremes before vertical ones, so a simultaneous horizontal and
// vertical extreme always reports the horizontal label. Vertical
// labels are only reachable at mid-range relX.
//
// A nil face or an eye with zero corner or lid span reports CENTER:
// degenerate geometry means "no condition met", never a fault.
func Evaluate(face *landmark.Face, th Thresholds) Direction {
	if face == nil {
		return Center
	}

	relXRight, relYRight, ok := eyeRatios(face, landmark.RightEye)
	if !ok {
		return Center
	}
	relXLeft, relYLeft, ok := eyeRatios(face, landmark.LeftEye)
	if !ok {
		return Center
	}

	relX := (relXRight + relXLeft) / 2
	relY := (relYRight + relYLeft) / 2

	switch {
	case relX < th.HorizontalLow:
		return Right
	case relX > th.HorizontalHigh:
		return Left
	case relY > 0 && relY < th.VerticalUp:
		return Up
	case relY < 0:
		return Down
	default:
		return Center
	}
}

// eyeRatios computes the pupil's horizontal position between the
// eye's image-left and image-right corners and its vertical position
// between the lids, both as 0..1 ratios. ok is false when either span
// is zero.
func eyeRatios(face *landmark.Face, eye landmark.Eye) (relX, relY float64, ok bool) {
	pupil := IrisCenter(face.Iris(eye))

	a := face.Points[eye.CornerA]
	b := face.Points[eye.CornerB]
	top := face.Points[eye.TopLid]
	bottom := face.Points[eye.BottomLid]

	spanX := b.X - a.X
	spanY := bottom.Y - top.Y
	if spanX == 0 || spanY == 0 {
		return 0, 0, false
	}

	return (pupil.X - a.X) / spanX, (pupil.Y - top.Y) / spanY, true
}
