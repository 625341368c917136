package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/gaze"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/store"
)

// runPipeline is the main recognition loop that processes frames from
// the camera. It manages the state transitions between idle and active
// modes based on motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS=5)
// 2. On motion detected, switch to active mode (ActiveFPS=15)
// 3. Run landmark detection on the frame
// 4. Classify hands into a gesture label, faces into gaze directions
// 5. Persist and announce labels only when they change between frames
// 6. After 2s no motion, switch back to idle mode
func (a *App) runPipeline(stopCh chan struct{}) {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Last emitted labels, for change detection
	lastGesture := gesture.None
	var lastGazes []gaze.Direction

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if recognition is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					lastGesture = gesture.None
					lastGazes = nil
					log.Println("Switched to idle mode")
				}
			}

			// Skip further processing if not in active mode
			if !activeMode || a.Detector() == nil {
				frame.Close()
				continue
			}

			// Step 2: Landmark detection
			detected, err := a.Detector().Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting landmarks: %v", err)
				continue
			}
			if detected == nil {
				continue
			}

			// Step 3: Classification
			result := a.classifyFrame(detected)

			// Step 4: Emit on change
			if result.Gesture != lastGesture {
				if result.Gesture != gesture.None {
					log.Printf("Gesture recognized: %s", result.Gesture)
					a.recordEvent(store.EventFamilyGesture, string(result.Gesture), result.Handedness)
				}
				lastGesture = result.Gesture
			}

			for i, dir := range result.Gazes {
				if i < len(lastGazes) && lastGazes[i] == dir {
					continue
				}
				log.Printf("Gaze direction: %s", dir)
				a.recordEvent(store.EventFamilyGaze, string(dir), "")
			}
			lastGazes = result.Gazes

			if a.OnResult != nil {
				a.OnResult(result)
			}
		}
	}
}

// classifyFrame runs the gesture classifier and gaze evaluator over one
// detected frame.
func (a *App) classifyFrame(detected *landmark.Frame) Result {
	classifier := a.Classifier()
	thresholds := a.GazeThresholds()

	label := classifier.Classify(detected.Hands)

	result := Result{
		Gesture:     label,
		HandCount:   len(detected.Hands),
		FaceCount:   len(detected.Faces),
		TimestampMs: time.Now().UnixMilli(),
	}

	// Single-hand rules fire for one hand; re-running the classifier per
	// hand identifies which one. Two-hand gestures have no handedness.
	if label != gesture.None && label != gesture.FingerInterlocked && label != gesture.OpenPalm {
		for i := range detected.Hands {
			one := detected.Hands[i : i+1]
			if classifier.Classify(one) == label {
				result.Handedness = string(detected.Hands[i].Handedness)
				break
			}
		}
	}

	if len(detected.Faces) > 0 {
		result.Gazes = make([]gaze.Direction, len(detected.Faces))
		for i := range detected.Faces {
			result.Gazes[i] = gaze.Evaluate(&detected.Faces[i], thresholds)
		}
	} else {
		result.Gazes = []gaze.Direction{}
	}

	return result
}
