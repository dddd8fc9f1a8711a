package proctoring

import "github.com/talentlens/talentlens/internal/usecase/analysis"

// Point is a single 2D facial landmark coordinate in frame pixels
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Fixed semantic indices into the per-frame landmark array produced by the
// external face model.
const (
	idxLeftEyeOuter  = 0
	idxRightEyeOuter = 1
	idxNoseTip       = 2
)

// faceCenterThresholdPx is the max horizontal distance in pixels between the
// eye midpoint and the nose tip for a frame to count as facing the camera.
// Resolution-dependent and not normalized by face width; see DESIGN.md.
const faceCenterThresholdPx = 20

// EyeContactStats is the mutable per-session eye-contact aggregate
type EyeContactStats struct {
	GoodFrames       int  `json:"good_frames"`
	TotalFrames      int  `json:"total_frames"`
	Percent          int  `json:"percent"`
	Min              int  `json:"min"`
	Max              int  `json:"max"`
	Average          int  `json:"average"`
	IsGoodEyeContact bool `json:"is_good_eye_contact"`
}

// EyeContactTracker accumulates per-frame facing-camera classifications for
// one interview session. Owned by exactly one session; all mutation happens
// on callback dispatch so no locking is needed.
type EyeContactTracker struct {
	stats EyeContactStats
}

// NewEyeContactTracker creates a zeroed tracker
func NewEyeContactTracker() *EyeContactTracker {
	return &EyeContactTracker{}
}

// RegisterFrame consumes one frame's landmark array. Invalid (empty) input is
// silently skipped, leaving all counters unchanged. Runs in the hot path at
// display cadence, so it allocates nothing.
func (t *EyeContactTracker) RegisterFrame(landmarks []Point) {
	if len(landmarks) == 0 {
		return
	}

	t.stats.TotalFrames++
	facing := IsFacingCamera(landmarks)
	if facing {
		t.stats.GoodFrames++
	}

	t.stats.Percent = analysis.RoundPercent(t.stats.GoodFrames, t.stats.TotalFrames)
	t.stats.IsGoodEyeContact = facing

	if t.stats.TotalFrames == 1 {
		t.stats.Min = t.stats.Percent
		t.stats.Max = t.stats.Percent
	} else {
		if t.stats.Percent < t.stats.Min {
			t.stats.Min = t.stats.Percent
		}
		if t.stats.Percent > t.stats.Max {
			t.stats.Max = t.stats.Percent
		}
	}
	// "Average" is the latest percent, not a running mean. Downstream
	// consumers depend on this definition; do not change it here.
	t.stats.Average = t.stats.Percent
}

// IsFacingCamera classifies a single frame: the eye-midpoint must sit within
// a fixed horizontal pixel distance of the nose tip. Missing landmark
// indices classify as not facing.
func IsFacingCamera(landmarks []Point) bool {
	if len(landmarks) <= idxNoseTip {
		return false
	}
	left := landmarks[idxLeftEyeOuter]
	right := landmarks[idxRightEyeOuter]
	nose := landmarks[idxNoseTip]

	eyeCenterX := (left.X + right.X) / 2
	dist := eyeCenterX - nose.X
	if dist < 0 {
		dist = -dist
	}
	return dist < faceCenterThresholdPx
}

// Stats returns a copy of the current aggregate
func (t *EyeContactTracker) Stats() EyeContactStats {
	return t.stats
}

// Percent returns the current eye-contact percentage
func (t *EyeContactTracker) Percent() int {
	return t.stats.Percent
}

// Reset zeroes all counters and statistics
func (t *EyeContactTracker) Reset() {
	t.stats = EyeContactStats{}
}

// SummaryLabel maps the current percent to a human-readable grade
func (t *EyeContactTracker) SummaryLabel() string {
	switch p := t.stats.Percent; {
	case p > 70:
		return "Excellent"
	case p > 50:
		return "Good"
	case p > 30:
		return "Fair"
	default:
		return "Poor"
	}
}
