package gesture

import (
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/landmark"
)

// Label is one gesture classification label. The empty label means no
// recognized gesture; the classifier does not distinguish "no hands"
// from "no rule fired". That distinction, if wanted, belongs to the
// caller.
type Label string

const (
	None              Label = ""
	MiddleFinger      Label = "Middle Finger"
	Pointing          Label = "Pointing"
	PalmUpward        Label = "Palm Upward"
	OpenPalm          Label = "Open Palm"
	FingerInterlocked Label = "Finger Interlocked"
)

// Config holds the tolerances and the active single-hand rule set of
// the classifier. The two-hand rules are always active; single-hand
// rules run in the order listed, and Pointing / Palm Upward ship
// implemented but excluded from the default order.
type Config struct {
	// StraightTolerance is the colinearity tolerance for the
	// finger-straight feature.
	StraightTolerance float64

	// BendTolerance is the model-space bend tolerance used by the
	// Pointing rule's curled-finger checks.
	BendTolerance float64

	// ParallelToleranceDeg bounds the angle between the two hands'
	// wrist-to-middle-fingertip segments in the Open Palm rule.
	ParallelToleranceDeg float64

	// InterlockDistancePx is the 2D proximity, in pixels, under which
	// a left/right fingertip pair counts as interlocked.
	InterlockDistancePx float64

	// InterlockMinJoints is how many of the five fingertip pairs must
	// be within range for the interlock rule to fire.
	InterlockMinJoints int

	// HorizonThresholdDeg bounds the knuckle line's angle from
	// horizontal in the Palm Upward rule.
	HorizonThresholdDeg float64

	// ActiveRules are the single-hand rules evaluated in phase 2, in
	// priority order. Unknown labels are skipped.
	ActiveRules []Label
}

// DefaultConfig returns the documented default tolerances with only
// the Middle Finger rule active in phase 2.
func DefaultConfig() Config {
	return Config{
		StraightTolerance:    0.15,
		BendTolerance:        geom.DefaultBendTolerance,
		ParallelToleranceDeg: 20,
		InterlockDistancePx:  40,
		InterlockMinJoints:   3,
		HorizonThresholdDeg:  geom.DefaultHorizonThresholdDeg,
		ActiveRules:          []Label{MiddleFinger},
	}
}

// Classifier evaluates the gesture rule tree over the hands of one
// frame. It holds only configuration; classification itself is
// stateless and safe for concurrent use.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a Classifier with the given configuration.
// Zero-valued tolerance fields fall back to their defaults so a
// partially filled Config stays usable.
func NewClassifier(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.StraightTolerance <= 0 {
		cfg.StraightTolerance = def.StraightTolerance
	}
	if cfg.BendTolerance <= 0 {
		cfg.BendTolerance = def.BendTolerance
	}
	if cfg.ParallelToleranceDeg <= 0 {
		cfg.ParallelToleranceDeg = def.ParallelToleranceDeg
	}
	if cfg.InterlockDistancePx <= 0 {
		cfg.InterlockDistancePx = def.InterlockDistancePx
	}
	if cfg.InterlockMinJoints <= 0 {
		cfg.InterlockMinJoints = def.InterlockMinJoints
	}
	if cfg.HorizonThresholdDeg <= 0 {
		cfg.HorizonThresholdDeg = def.HorizonThresholdDeg
	}
	if cfg.ActiveRules == nil {
		cfg.ActiveRules = def.ActiveRules
	}

	return &Classifier{cfg: cfg}
}

// Config returns a copy of the classifier's configuration.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify returns the first matching gesture label for the frame's
// hands, or None.
//
// Phase 1 runs only when the frame contains a hand tagged Left and a
// hand tagged Right, and tests Finger Interlocked before Open Palm.
// If neither fires, phase 2 tests each hand, in the order given,
// against the active single-hand rules; the first hand+rule
// combination to fire wins.
func (c *Classifier) Classify(hands []landmark.Hand) Label {
	left, right := pairByHandedness(hands)

	if left != nil && right != nil {
		if c.fingersInterlocked(left, right) {
			return FingerInterlocked
		}
		if c.openPalms(left, right) {
			return OpenPalm
		}
	}

	for i := range hands {
		for _, rule := range c.cfg.ActiveRules {
			if c.evalSingleHand(rule, &hands[i]) {
				return rule
			}
		}
	}

	return None
}

// pairByHandedness returns the first Left-tagged and first
// Right-tagged hand, either of which may be nil.
func pairByHandedness(hands []landmark.Hand) (left, right *landmark.Hand) {
	for i := range hands {
		switch hands[i].Handedness {
		case landmark.HandLeft:
			if left == nil {
				left = &hands[i]
			}
		case landmark.HandRight:
			if right == nil {
				right = &hands[i]
			}
		}
	}
	return left, right
}

// fingersInterlocked counts how many corresponding fingertip pairs of
// the two hands are within the interlock distance.
func (c *Classifier) fingersInterlocked(left, right *landmark.Hand) bool {
	within := 0
	for _, tip := range landmark.Fingertips {
		if geom.Distance2D(left.Points[tip], right.Points[tip]) <= c.cfg.InterlockDistancePx {
			within++
		}
	}
	return within >= c.cfg.InterlockMinJoints
}

// openPalms requires both hands open and their wrist-to-middle-
// fingertip segments parallel.
func (c *Classifier) openPalms(left, right *landmark.Hand) bool {
	if !IsHandOpen(left, c.cfg.StraightTolerance) || !IsHandOpen(right, c.cfg.StraightTolerance) {
		return false
	}

	return geom.LinesParallel2D(
		left.Points[landmark.Wrist], left.Points[landmark.MiddleTip],
		right.Points[landmark.Wrist], right.Points[landmark.MiddleTip],
		c.cfg.ParallelToleranceDeg,
	)
}

// evalSingleHand dispatches one phase-2 rule. Unknown labels never
// fire.
func (c *Classifier) evalSingleHand(rule Label, hand *landmark.Hand) bool {
	switch rule {
	case MiddleFinger:
		return c.middleFinger(hand)
	case Pointing:
		return c.pointing(hand)
	case PalmUpward:
		return c.palmUpward(hand)
	default:
		return false
	}
}

// middleFinger: middle fingertip above its PIP joint in image
// coordinates while the index, ring, and pinky tips sit below theirs.
// Thumb pose is irrelevant.
func (c *Classifier) middleFinger(hand *landmark.Hand) bool {
	p := &hand.Points

	if p[landmark.MiddleTip].Y >= p[landmark.MiddlePIP].Y {
		return false
	}

	return p[landmark.IndexTip].Y > p[landmark.IndexPIP].Y &&
		p[landmark.RingTip].Y > p[landmark.RingPIP].Y &&
		p[landmark.PinkyTip].Y > p[landmark.PinkyPIP].Y
}

// pointing: index finger straight while middle, ring, and pinky are
// bent. Uses the model-space predicates when the hand carries a 3D
// set. Inactive in the default rule order.
func (c *Classifier) pointing(hand *landmark.Hand) bool {
	if !IsFingerStraight3D(hand, landmark.Index, c.cfg.StraightTolerance) {
		return false
	}

	return IsFingerBent(hand, landmark.Middle, c.cfg.BendTolerance) &&
		IsFingerBent(hand, landmark.Ring, c.cfg.BendTolerance) &&
		IsFingerBent(hand, landmark.Pinky, c.cfg.BendTolerance)
}

// palmUpward: hand open, knuckle line near horizontal, middle
// fingertip above the wrist. Inactive in the default rule order.
func (c *Classifier) palmUpward(hand *landmark.Hand) bool {
	if !IsHandOpen(hand, c.cfg.StraightTolerance) {
		return false
	}

	p := &hand.Points
	if !geom.AngleToHorizon(p[landmark.IndexMCP], p[landmark.PinkyMCP], c.cfg.HorizonThresholdDeg) {
		return false
	}

	return p[landmark.MiddleTip].Y < p[landmark.Wrist].Y
}
