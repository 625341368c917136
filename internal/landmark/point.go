// Package landmark defines the keypoint data model shared by the Mudra
// classification pipeline: 2D/3D points and the fixed anatomical index
// schemes for MediaPipe hand and face landmark sets.
//
// Index meaning is a closed contract with the upstream detection model.
// Nothing in this package (or its consumers) reinterprets indices; the
// constants exist so the mapping from index to anatomy is explicit.
package landmark

// Point2D is a position in pixel space.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3D is a position in model space. Z is in model-relative depth
// units, not pixels.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
