package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/landmark"
)

// MockDetector is a test implementation of the Detector interface. It
// returns a pre-configured frame result regardless of input.
type MockDetector struct {
	frame *landmark.Frame
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrame sets the frame result that Detect will return.
func (m *MockDetector) SetFrame(f *landmark.Frame) {
	m.frame = f
}

// SetHands is a convenience for frames containing only hands.
func (m *MockDetector) SetHands(hands []landmark.Hand) {
	m.frame = &landmark.Frame{Hands: hands}
}

// SetFaces is a convenience for frames containing only faces.
func (m *MockDetector) SetFaces(faces []landmark.Face) {
	m.frame = &landmark.Frame{Faces: faces}
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured frame or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*landmark.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.frame == nil {
		return &landmark.Frame{}, nil
	}
	return m.frame, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
