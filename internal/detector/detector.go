// Package detector provides the external keypoint provider interface
// and its MediaPipe-backed implementation. The detector is an external
// collaborator: Mudra consumes its per-frame landmark sets and never
// looks inside the model.
package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/landmark"
)

// Detector delivers the landmark sets detected in one video frame.
type Detector interface {
	// Detect analyzes a video frame and returns the hands and faces
	// found in it. Zero entities is a normal result.
	Detect(frame *gocv.Mat) (*landmark.Frame, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds detection options passed through to the model backend.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MaxFaces is the maximum number of faces to detect (default: 1).
	MaxFaces int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:      2,
		MaxFaces:      1,
		MinConfidence: 0.5,
	}
}
