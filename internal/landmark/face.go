package landmark

// Face landmark indices following the MediaPipe FaceMesh convention
// with iris refinement enabled (478 points). Only the indices the gaze
// evaluator needs are named; the rest of the mesh passes through
// untouched.
//
// "Left" and "Right" are anatomical (the subject's left eye), so in a
// non-mirrored image the right eye appears on the image-left side.
const (
	NumFaceLandmarks = 478

	// Iris clusters: one center point followed by four boundary points.
	RightIrisStart  = 468
	LeftIrisStart   = 473
	IrisClusterSize = 5

	// Right eye boundary.
	RightEyeOuterCorner = 33
	RightEyeInnerCorner = 133
	RightEyeTopLid      = 159
	RightEyeBottomLid   = 145

	// Left eye boundary.
	LeftEyeInnerCorner = 362
	LeftEyeOuterCorner = 263
	LeftEyeTopLid      = 386
	LeftEyeBottomLid   = 374
)

// Eye groups the indices the gaze evaluator reads for one eye. CornerA
// is the image-left corner and CornerB the image-right corner, so the
// horizontal pupil ratio runs the same direction for both eyes and the
// two ratios can be averaged.
type Eye struct {
	IrisStart int
	CornerA   int
	CornerB   int
	TopLid    int
	BottomLid int
}

// The two eyes of the 478-point scheme, in image order.
var (
	RightEye = Eye{
		IrisStart: RightIrisStart,
		CornerA:   RightEyeOuterCorner,
		CornerB:   RightEyeInnerCorner,
		TopLid:    RightEyeTopLid,
		BottomLid: RightEyeBottomLid,
	}
	LeftEye = Eye{
		IrisStart: LeftIrisStart,
		CornerA:   LeftEyeInnerCorner,
		CornerB:   LeftEyeOuterCorner,
		TopLid:    LeftEyeTopLid,
		BottomLid: LeftEyeBottomLid,
	}
)

// Face is one detected face for the current frame: the full 478-point
// landmark set in pixel coordinates. Faces carry no identity across
// frames.
type Face struct {
	Points [NumFaceLandmarks]Point2D `json:"points"`
	Score  float64                   `json:"score"`
}

// Iris returns the five-point iris cluster for the given eye.
func (f *Face) Iris(e Eye) []Point2D {
	return f.Points[e.IrisStart : e.IrisStart+IrisClusterSize]
}

// Frame is everything the detector produced for one video frame. Zero
// entities is a normal result, not an error.
type Frame struct {
	Hands       []Hand `json:"hands"`
	Faces       []Face `json:"faces"`
	TimestampMs int64  `json:"timestamp_ms"`
}
