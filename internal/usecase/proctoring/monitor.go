package proctoring

import (
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// AutoSubmitFunc is invoked at most once per violation class when its
// threshold is crossed. Callers must treat it as a terminal session-ending
// signal; the monitor itself keeps counting afterwards.
type AutoSubmitFunc func(reason string)

// ViolationState holds independent per-class violation counters for one
// session. Counters only ever increase until Reset.
type ViolationState struct {
	NoFaceCount    int    `json:"no_face_count"`
	MultiFaceCount int    `json:"multi_face_count"`
	TabSwitchCount int    `json:"tab_switch_count"`
	AttentionCount int    `json:"attention_count"`
	WarningMessage string `json:"warning_message,omitempty"`
}

// MonitorConfig holds the violation thresholds for an interview session.
// Comparisons are greater-than-or-equal: a max of 3 trips on the 3rd
// occurrence, not the 4th.
type MonitorConfig struct {
	MaxAttentionViolations int
	MaxTabViolations       int
}

// ViolationMonitor accumulates proctoring violations for one interview
// session and fires the auto-submit callback exactly once per threshold
// crossing per class. Owned by a single session; mutation happens on
// event dispatch from one loop, so no locking.
type ViolationMonitor struct {
	cfg          MonitorConfig
	state        ViolationState
	onAutoSubmit AutoSubmitFunc

	attentionFired bool
	tabFired       bool
}

// NewViolationMonitor creates a monitor with the given thresholds and
// auto-submit callback. The callback may be nil.
func NewViolationMonitor(cfg MonitorConfig, onAutoSubmit AutoSubmitFunc) *ViolationMonitor {
	return &ViolationMonitor{cfg: cfg, onAutoSubmit: onAutoSubmit}
}

// OnFaceCheckResult consumes one periodic face-presence detection result.
// Zero detected faces registers an attention violation. Returns the
// post-increment attention count.
func (m *ViolationMonitor) OnFaceCheckResult(faceCount int) int {
	if faceCount > 0 {
		return m.state.AttentionCount
	}

	m.state.NoFaceCount++
	m.state.AttentionCount++
	m.state.WarningMessage = "No face detected. Please stay in front of the camera."

	if m.state.AttentionCount >= m.cfg.MaxAttentionViolations && !m.attentionFired {
		m.attentionFired = true
		if m.onAutoSubmit != nil {
			m.onAutoSubmit(entities.ReasonAttentionViolation)
		}
	}
	return m.state.AttentionCount
}

// OnBlur registers a window-blur event as a tab switch
func (m *ViolationMonitor) OnBlur() int {
	return m.registerTabSwitch()
}

// OnVisibilityChange registers a document-visibility event. Only the change
// to hidden counts. Blur and visibility-hidden both firing for one real
// switch double-counts; that is the contract, not a bug to fix here.
func (m *ViolationMonitor) OnVisibilityChange(hidden bool) int {
	if !hidden {
		return m.state.TabSwitchCount
	}
	return m.registerTabSwitch()
}

func (m *ViolationMonitor) registerTabSwitch() int {
	m.state.TabSwitchCount++
	m.state.WarningMessage = "Tab switch detected. Please stay on the test page."

	if m.state.TabSwitchCount >= m.cfg.MaxTabViolations && !m.tabFired {
		m.tabFired = true
		if m.onAutoSubmit != nil {
			m.onAutoSubmit(entities.ReasonTabSwitchViolation)
		}
	}
	return m.state.TabSwitchCount
}

// State returns a copy of the current violation counters
func (m *ViolationMonitor) State() ViolationState {
	return m.state
}

// Reset zeroes all counters and re-arms both callbacks
func (m *ViolationMonitor) Reset() {
	m.state = ViolationState{}
	m.attentionFired = false
	m.tabFired = false
}
