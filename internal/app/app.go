// Package app provides the main application logic for the Mudra gaze
// and gesture recognition system.
package app

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gaze"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store          *store.Store
	CameraID       int
	MotionThresh   float64
	GazeThresholds gaze.Thresholds
	GestureConfig  gesture.Config
}

// Result is one frame's recognition output. Gazes holds one direction
// per detected face, in detection order.
type Result struct {
	Gesture     gesture.Label    `json:"gesture"`
	Handedness  string           `json:"handedness,omitempty"`
	Gazes       []gaze.Direction `json:"gazes"`
	HandCount   int              `json:"hand_count"`
	FaceCount   int              `json:"face_count"`
	TimestampMs int64            `json:"timestamp_ms"`
}

// App is the main application that orchestrates the recognition pipeline.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	classifier *gesture.Classifier
	thresholds gaze.Thresholds
	enabled    bool
	mu         sync.RWMutex
	stopCh     chan struct{}

	// OnResult is invoked for every processed frame while the pipeline
	// runs. Set it before Start.
	OnResult func(Result)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	thresholds := config.GazeThresholds
	if thresholds == (gaze.Thresholds{}) {
		thresholds = gaze.DefaultThresholds()
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		classifier: gesture.NewClassifier(config.GestureConfig),
		thresholds: thresholds,
		enabled:    false,
		stopCh:     nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe landmark detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables recognition.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the landmark detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use. Call before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// ApplyProfile replaces the classifier tolerances and gaze thresholds
// with the values from a stored tuning profile.
func (a *App) ApplyProfile(p *store.Profile) {
	rules := make([]gesture.Label, len(p.ActiveRules))
	for i, r := range p.ActiveRules {
		rules[i] = gesture.Label(r)
	}

	cfg := gesture.Config{
		StraightTolerance:    p.StraightTolerance,
		BendTolerance:        p.BendTolerance,
		ParallelToleranceDeg: p.ParallelToleranceDeg,
		InterlockDistancePx:  p.InterlockDistancePx,
		ActiveRules:          rules,
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.classifier = gesture.NewClassifier(cfg)
	a.thresholds = gaze.Thresholds{
		HorizontalLow:  p.HorizontalLow,
		HorizontalHigh: p.HorizontalHigh,
		VerticalUp:     p.VerticalUp,
	}

	log.Printf("Applied profile %q", p.Name)
}

// Classifier returns the current gesture classifier.
func (a *App) Classifier() *gesture.Classifier {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.classifier
}

// GazeThresholds returns the current gaze thresholds.
func (a *App) GazeThresholds() gaze.Thresholds {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.thresholds
}

// Start begins the recognition pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the recognition pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the landmark detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the landmark detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// recordEvent persists a recognition event if a store is configured.
func (a *App) recordEvent(family store.EventFamily, label, handedness string) {
	if a.config.Store == nil {
		return
	}

	event := &store.Event{
		ID:         uuid.New().String(),
		Family:     family,
		Label:      label,
		Handedness: handedness,
	}
	if err := a.config.Store.Events().Create(event); err != nil {
		log.Printf("Failed to record %s event: %v", family, err)
	}
}
