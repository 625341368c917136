package landmark

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist            = 0
	ThumbCMC         = 1
	ThumbMCP         = 2
	ThumbIP          = 3
	ThumbTip         = 4
	IndexMCP         = 5
	IndexPIP         = 6
	IndexDIP         = 7
	IndexTip         = 8
	MiddleMCP        = 9
	MiddlePIP        = 10
	MiddleDIP        = 11
	MiddleTip        = 12
	RingMCP          = 13
	RingPIP          = 14
	RingDIP          = 15
	RingTip          = 16
	PinkyMCP         = 17
	PinkyPIP         = 18
	PinkyDIP         = 19
	PinkyTip         = 20
	NumHandLandmarks = 21
)

// Handedness tags a detected hand as anatomically left or right.
type Handedness string

const (
	HandLeft    Handedness = "Left"
	HandRight   Handedness = "Right"
	HandUnknown Handedness = ""
)

// Finger groups the four joint indices of one finger, knuckle to tip.
type Finger struct {
	MCP, PIP, DIP, Tip int
}

// Joint index groups per finger. Thumb uses the CMC/MCP/IP/Tip chain,
// so its Finger fields hold those four indices in chain order.
var (
	Thumb  = Finger{MCP: ThumbCMC, PIP: ThumbMCP, DIP: ThumbIP, Tip: ThumbTip}
	Index  = Finger{MCP: IndexMCP, PIP: IndexPIP, DIP: IndexDIP, Tip: IndexTip}
	Middle = Finger{MCP: MiddleMCP, PIP: MiddlePIP, DIP: MiddleDIP, Tip: MiddleTip}
	Ring   = Finger{MCP: RingMCP, PIP: RingPIP, DIP: RingDIP, Tip: RingTip}
	Pinky  = Finger{MCP: PinkyMCP, PIP: PinkyPIP, DIP: PinkyDIP, Tip: PinkyTip}
)

// NonThumbFingers are the fingers tested by the open-hand feature, in
// anatomical order.
var NonThumbFingers = [4]Finger{Index, Middle, Ring, Pinky}

// Fingertips lists the five tip indices, thumb first. The two-hand
// interlock rule pairs these across a left and a right hand.
var Fingertips = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// Hand is one detected hand for the current frame: a 21-point landmark
// set in pixel coordinates, an optional parallel set in model space,
// and a handedness tag. Hands carry no identity across frames.
type Hand struct {
	Points     [NumHandLandmarks]Point2D   `json:"points"`
	Points3D   *[NumHandLandmarks]Point3D  `json:"points3d,omitempty"`
	Handedness Handedness                  `json:"handedness"`
	Score      float64                     `json:"score"`
}

// Has3D reports whether the model-space landmark set is populated.
// Not all providers fill it in.
func (h *Hand) Has3D() bool {
	return h != nil && h.Points3D != nil
}
