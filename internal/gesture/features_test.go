package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/testdata"
)

func TestIsFingerStraight(t *testing.T) {
	open := testdata.OpenPalmHand(landmark.HandRight, 0)

	for _, f := range landmark.NonThumbFingers {
		if !IsFingerStraight(&open, f, 0.15) {
			t.Errorf("finger with joints on one line should be straight (tip index %d)", f.Tip)
		}
	}

	curled := testdata.CurledHand(landmark.HandRight)
	for _, f := range landmark.NonThumbFingers {
		if IsFingerStraight(&curled, f, 0.15) {
			t.Errorf("curled finger should not be straight (tip index %d)", f.Tip)
		}
	}

	if IsFingerStraight(nil, landmark.Index, 0.15) {
		t.Error("nil hand should never have a straight finger")
	}
}

func TestIsFingerStraight3D(t *testing.T) {
	pointing := testdata.PointingHand()

	if !pointing.Has3D() {
		t.Fatal("pointing fixture should carry a 3D landmark set")
	}

	if !IsFingerStraight3D(&pointing, landmark.Index, 0.15) {
		t.Error("extended index should be straight in model space")
	}
	if IsFingerStraight3D(&pointing, landmark.Middle, 0.15) {
		t.Error("curled middle should not be straight in model space")
	}

	// Without a 3D set the pixel-space test is used.
	flat := testdata.OpenPalmHand(landmark.HandRight, 0)
	if !IsFingerStraight3D(&flat, landmark.Index, 0.15) {
		t.Error("2D fallback should report the extended index as straight")
	}
}

func TestIsFingerBent(t *testing.T) {
	pointing := testdata.PointingHand()

	if !IsFingerBent(&pointing, landmark.Middle, 0.25) {
		t.Error("curled middle should be bent in model space")
	}
	if IsFingerBent(&pointing, landmark.Index, 0.25) {
		t.Error("extended index should not be bent")
	}
	if IsFingerBent(nil, landmark.Index, 0.25) {
		t.Error("nil hand should never have a bent finger")
	}
}

func TestIsHandOpen(t *testing.T) {
	open := testdata.OpenPalmHand(landmark.HandRight, 0)
	if !IsHandOpen(&open, 0.15) {
		t.Error("hand with four straight fingers should be open")
	}

	curled := testdata.CurledHand(landmark.HandRight)
	if IsHandOpen(&curled, 0.15) {
		t.Error("hand with no straight fingers should not be open")
	}

	if IsHandOpen(nil, 0.15) {
		t.Error("absent hand should not be open")
	}
}

// Three straight fingers out of four are enough.
func TestIsHandOpen_ThreeOfFour(t *testing.T) {
	h := testdata.MiddleFingerHand() // only middle straight
	if IsHandOpen(&h, 0.15) {
		t.Error("one straight finger should not open the hand")
	}

	// Straighten index and ring as well: 3 of 4.
	open := testdata.OpenPalmHand(landmark.HandRight, 0)
	pinkyCurled := open
	pinkyCurled.Points[landmark.PinkyDIP] = landmark.Point2D{X: 145, Y: 235}
	pinkyCurled.Points[landmark.PinkyTip] = landmark.Point2D{X: 148, Y: 250}
	pinkyCurled.Points[landmark.PinkyPIP] = landmark.Point2D{X: 140, Y: 220}

	if !IsHandOpen(&pinkyCurled, 0.15) {
		t.Error("three straight fingers should open the hand")
	}
}
