// Package gesture classifies hand gestures from per-frame landmark
// sets. Feature extraction and rule evaluation are pure functions of
// the current frame's landmarks; every frame is judged independently,
// with no tracking and no smoothing.
package gesture

import (
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/landmark"
)

// IsFingerStraight reports whether a finger's joint chain lies on one
// line in pixel space: both (MCP,PIP,Tip) and (PIP,DIP,Tip) must be
// colinear under the given tolerance. A nil hand is never straight.
func IsFingerStraight(hand *landmark.Hand, f landmark.Finger, tolerance float64) bool {
	if hand == nil {
		return false
	}

	mcp := hand.Points[f.MCP]
	pip := hand.Points[f.PIP]
	dip := hand.Points[f.DIP]
	tip := hand.Points[f.Tip]

	return geom.Colinear2D(mcp, pip, tip, tolerance) &&
		geom.Colinear2D(pip, dip, tip, tolerance)
}

// IsFingerStraight3D is the model-space variant: when the hand carries
// a 3D landmark set it tests colinearity of the same joint chains in
// 3D, otherwise it falls back to the pixel-space test.
func IsFingerStraight3D(hand *landmark.Hand, f landmark.Finger, tolerance float64) bool {
	if hand == nil {
		return false
	}
	if !hand.Has3D() {
		return IsFingerStraight(hand, f, tolerance)
	}

	pts := hand.Points3D
	return geom.Colinear3D(pts[f.MCP], pts[f.PIP], pts[f.Tip], tolerance) &&
		geom.Colinear3D(pts[f.PIP], pts[f.DIP], pts[f.Tip], tolerance)
}

// IsFingerBent reports a sharp bend in the finger's (MCP,PIP,Tip)
// chain. With a 3D landmark set it uses the model-space bend
// predicate; otherwise it is the negation of the pixel-space straight
// test. A nil hand is never bent.
func IsFingerBent(hand *landmark.Hand, f landmark.Finger, tolerance float64) bool {
	if hand == nil {
		return false
	}
	if hand.Has3D() {
		pts := hand.Points3D
		return geom.BentAngle3D(pts[f.MCP], pts[f.PIP], pts[f.Tip], tolerance)
	}

	return !IsFingerStraight(hand, f, geom.DefaultColinearTolerance)
}

// IsHandOpen reports whether at least three of the four non-thumb
// fingers are straight. An absent hand is never open.
func IsHandOpen(hand *landmark.Hand, tolerance float64) bool {
	if hand == nil {
		return false
	}

	straight := 0
	for _, f := range landmark.NonThumbFingers {
		if IsFingerStraight(hand, f, tolerance) {
			straight++
		}
	}

	return straight >= 3
}
