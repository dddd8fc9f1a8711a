package proctoring

// PreviewStatus classifies one camera-preview detection result
type PreviewStatus string

const (
	PreviewNoFace    PreviewStatus = "no-face"
	PreviewMultiFace PreviewStatus = "multi-face"
	PreviewOK        PreviewStatus = "ok"
)

// PreviewViolation is delivered to the preview callback on every increment,
// letting the caller decide when to act.
type PreviewViolation struct {
	Reason PreviewStatus `json:"reason"`
	Count  int           `json:"count"`
	Max    int           `json:"max"`
}

// PreviewCallback receives each violation increment. Unlike the interview
// monitor's auto-submit callback this fires on every increment, including
// while already past the threshold.
type PreviewCallback func(v PreviewViolation)

// PreviewMonitor is the camera-preview variant of violation counting: a
// single combined counter for no-face and multi-face detections.
type PreviewMonitor struct {
	max         int
	count       int
	status      PreviewStatus
	warning     string
	onViolation PreviewCallback
}

// NewPreviewMonitor creates a preview monitor with the combined violation
// limit and per-increment callback. The callback may be nil.
func NewPreviewMonitor(maxViolations int, onViolation PreviewCallback) *PreviewMonitor {
	return &PreviewMonitor{max: maxViolations, status: PreviewOK, onViolation: onViolation}
}

// Classify consumes one detection result and returns its classification.
// no-face and multi-face both increment the combined counter and notify the
// callback with the post-increment count.
func (p *PreviewMonitor) Classify(faceCount int) PreviewStatus {
	switch {
	case faceCount == 0:
		p.status = PreviewNoFace
		p.warning = "No face detected in the camera preview."
	case faceCount > 1:
		p.status = PreviewMultiFace
		p.warning = "Multiple faces detected in the camera preview."
	default:
		p.status = PreviewOK
		p.warning = ""
		return p.status
	}

	p.count++
	if p.onViolation != nil {
		p.onViolation(PreviewViolation{Reason: p.status, Count: p.count, Max: p.max})
	}
	return p.status
}

// Exceeded reports whether the combined counter reached the limit
func (p *PreviewMonitor) Exceeded() bool {
	return p.count >= p.max
}

// Count returns the combined violation count
func (p *PreviewMonitor) Count() int {
	return p.count
}

// Status returns the latest classification
func (p *PreviewMonitor) Status() PreviewStatus {
	return p.status
}

// Warning returns the latest human-readable warning, empty when ok
func (p *PreviewMonitor) Warning() string {
	return p.warning
}

// Reset zeroes the counter and status
func (p *PreviewMonitor) Reset() {
	p.count = 0
	p.status = PreviewOK
	p.warning = ""
}
