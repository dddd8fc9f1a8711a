package interview

import (
	"time"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// CreateSessionRequest opens a proctored session for one question
type CreateSessionRequest struct {
	Question string `json:"question" validate:"required"`
}

// PointRequest is a single face landmark in pixel coordinates
type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FramesRequest carries a batch of landmark frames
type FramesRequest struct {
	Frames [][]PointRequest `json:"frames" validate:"required"`
}

// FaceCheckRequest carries one face-presence detection result
type FaceCheckRequest struct {
	FaceCount int `json:"face_count" validate:"min=0"`
}

// TabEventRequest carries a window blur or visibility change
type TabEventRequest struct {
	Event string `json:"event" validate:"required,proctor_event"`
}

// SubmitRequest carries the answer submission. Either a transcript or a
// recording URL must be present.
type SubmitRequest struct {
	Transcript   string `json:"transcript"`
	RecordingURL string `json:"recording_url" validate:"omitempty,url"`
}

// SessionResponse is a session as exposed to clients
type SessionResponse struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	Question            string     `json:"question"`
	Status              string     `json:"status"`
	EyeContactPercent   int        `json:"eye_contact_percent"`
	AttentionViolations int        `json:"attention_violations"`
	TabSwitchViolations int        `json:"tab_switch_violations"`
	AutoSubmitReason    string     `json:"auto_submit_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	SubmittedAt         *time.Time `json:"submitted_at,omitempty"`
}

// ScoreResponse is the stored score as exposed to clients
type ScoreResponse struct {
	SessionID string                        `json:"session_id"`
	Result    entities.InterviewScoreResult `json:"result"`
	CreatedAt time.Time                     `json:"created_at"`
}
