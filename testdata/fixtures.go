// Package testdata provides landmark fixtures shared by package tests:
// hand poses and face geometries with known classification outcomes.
package testdata

import (
	"github.com/ayusman/mudra/internal/landmark"
)

// GazeFace builds a face whose pupils sit at the given horizontal and
// vertical ratios within both eyes. relX runs image-left (0) to
// image-right (1) between the eye corners; relY runs top lid (0) to
// bottom lid (1). Each iris cluster is a center point with four
// boundary points placed symmetrically, so the cluster mean lands
// exactly on the pupil.
func GazeFace(relX, relY float64) landmark.Face {
	var f landmark.Face
	f.Score = 0.99

	placeEye(&f, landmark.RightEye, 100, relX, relY)
	placeEye(&f, landmark.LeftEye, 200, relX, relY)

	return f
}

// placeEye lays out one eye's corners, lids, and iris cluster with the
// corner span starting at originX. The eye is 40px wide and 10px tall.
func placeEye(f *landmark.Face, eye landmark.Eye, originX, relX, relY float64) {
	const (
		eyeWidth  = 40.0
		eyeHeight = 10.0
		cornerY   = 100.0
		topY      = 95.0
	)

	f.Points[eye.CornerA] = landmark.Point2D{X: originX, Y: cornerY}
	f.Points[eye.CornerB] = landmark.Point2D{X: originX + eyeWidth, Y: cornerY}
	f.Points[eye.TopLid] = landmark.Point2D{X: originX + eyeWidth/2, Y: topY}
	f.Points[eye.BottomLid] = landmark.Point2D{X: originX + eyeWidth/2, Y: topY + eyeHeight}

	px := originX + relX*eyeWidth
	py := topY + relY*eyeHeight

	f.Points[eye.IrisStart] = landmark.Point2D{X: px, Y: py}
	f.Points[eye.IrisStart+1] = landmark.Point2D{X: px + 1, Y: py}
	f.Points[eye.IrisStart+2] = landmark.Point2D{X: px - 1, Y: py}
	f.Points[eye.IrisStart+3] = landmark.Point2D{X: px, Y: py + 1}
	f.Points[eye.IrisStart+4] = landmark.Point2D{X: px, Y: py - 1}
}

// OpenPalmHand builds a hand with all four non-thumb fingers straight
// and vertical, fingertips up. The wrist-to-middle-fingertip segment is
// exactly vertical, so two of these hands are parallel regardless of
// offsetX.
func OpenPalmHand(handedness landmark.Handedness, offsetX float64) landmark.Hand {
	h := landmark.Hand{Handedness: handedness, Score: 0.95}

	h.Points[landmark.Wrist] = landmark.Point2D{X: offsetX + 100, Y: 300}
	placeThumb(&h, offsetX)

	for i, f := range landmark.NonThumbFingers {
		straightFinger(&h, f, offsetX+80+float64(i)*20)
	}

	return h
}

// MiddleFingerHand builds a hand with the middle finger extended
// upward and the index, ring, and pinky fingertips curled below their
// PIP joints.
func MiddleFingerHand() landmark.Hand {
	h := landmark.Hand{Handedness: landmark.HandRight, Score: 0.95}

	h.Points[landmark.Wrist] = landmark.Point2D{X: 100, Y: 300}
	placeThumb(&h, 0)

	curledFinger(&h, landmark.Index, 80)
	straightFinger(&h, landmark.Middle, 100)
	curledFinger(&h, landmark.Ring, 120)
	curledFinger(&h, landmark.Pinky, 140)

	return h
}

// PointingHand builds a hand with only the index finger extended. The
// 3D landmark set is populated with the same pose flattened to z=0 so
// tests can exercise the model-space finger predicates.
func PointingHand() landmark.Hand {
	h := landmark.Hand{Handedness: landmark.HandRight, Score: 0.95}

	h.Points[landmark.Wrist] = landmark.Point2D{X: 100, Y: 300}
	placeThumb(&h, 0)

	straightFinger(&h, landmark.Index, 80)
	curledFinger(&h, landmark.Middle, 100)
	curledFinger(&h, landmark.Ring, 120)
	curledFinger(&h, landmark.Pinky, 140)

	var pts3 [landmark.NumHandLandmarks]landmark.Point3D
	for i, p := range h.Points {
		pts3[i] = landmark.Point3D{X: p.X, Y: p.Y}
	}
	h.Points3D = &pts3

	return h
}

// CurledHand builds a hand with every non-thumb finger curled; it must
// never satisfy the open-hand feature.
func CurledHand(handedness landmark.Handedness) landmark.Hand {
	h := landmark.Hand{Handedness: handedness, Score: 0.95}

	h.Points[landmark.Wrist] = landmark.Point2D{X: 100, Y: 300}
	placeThumb(&h, 0)

	for i, f := range landmark.NonThumbFingers {
		curledFinger(&h, f, 80+float64(i)*20)
	}

	return h
}

// InterlockedHands builds a left/right pair of open hands offset by
// offsetX pixels, so every corresponding fingertip pair sits offsetX
// apart. With a small offset the pair satisfies both the interlock
// rule and the open-palm rule at once.
func InterlockedHands(offsetX float64) (left, right landmark.Hand) {
	left = OpenPalmHand(landmark.HandLeft, 0)
	right = OpenPalmHand(landmark.HandRight, offsetX)
	return left, right
}

// placeThumb positions the thumb chain off to the side. The thumb pose
// never participates in the fixture classifications.
func placeThumb(h *landmark.Hand, offsetX float64) {
	h.Points[landmark.ThumbCMC] = landmark.Point2D{X: offsetX + 60, Y: 280}
	h.Points[landmark.ThumbMCP] = landmark.Point2D{X: offsetX + 52, Y: 265}
	h.Points[landmark.ThumbIP] = landmark.Point2D{X: offsetX + 46, Y: 250}
	h.Points[landmark.ThumbTip] = landmark.Point2D{X: offsetX + 40, Y: 235}
}

// straightFinger lays one finger's four joints on a vertical line,
// tip at the top.
func straightFinger(h *landmark.Hand, f landmark.Finger, x float64) {
	h.Points[f.MCP] = landmark.Point2D{X: x, Y: 240}
	h.Points[f.PIP] = landmark.Point2D{X: x, Y: 210}
	h.Points[f.DIP] = landmark.Point2D{X: x, Y: 180}
	h.Points[f.Tip] = landmark.Point2D{X: x, Y: 150}
}

// curledFinger folds a finger back down so its tip sits below its PIP
// joint in image coordinates.
func curledFinger(h *landmark.Hand, f landmark.Finger, x float64) {
	h.Points[f.MCP] = landmark.Point2D{X: x, Y: 240}
	h.Points[f.PIP] = landmark.Point2D{X: x, Y: 220}
	h.Points[f.DIP] = landmark.Point2D{X: x + 3, Y: 235}
	h.Points[f.Tip] = landmark.Point2D{X: x + 6, Y: 250}
}
