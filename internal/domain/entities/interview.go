package entities

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus represents the lifecycle state of an interview session
type InterviewStatus string

const (
	InterviewStatusCreated       InterviewStatus = "created"
	InterviewStatusInProgress    InterviewStatus = "in_progress"
	InterviewStatusSubmitted     InterviewStatus = "submitted"
	InterviewStatusAutoSubmitted InterviewStatus = "auto_submitted"
)

// AutoSubmitReason codes passed to the auto-submit callback on threshold crossings
const (
	ReasonAttentionViolation = "attention-violation"
	ReasonTabSwitchViolation = "tab-switch-violation"
)

// InterviewSession represents one proctored mock/real interview answer session
type InterviewSession struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Question     string          `json:"question" gorm:"type:text"`
	Status       InterviewStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'created'"`
	RecordingURL string          `json:"recording_url,omitempty" gorm:"type:text"`
	Transcript   string          `json:"transcript,omitempty" gorm:"type:text"`

	// Final proctoring aggregates copied from the session trackers at submission
	EyeContactPercent   int    `json:"eye_contact_percent"`
	AttentionViolations int    `json:"attention_violations"`
	TabSwitchViolations int    `json:"tab_switch_violations"`
	AutoSubmitReason    string `json:"auto_submit_reason,omitempty" gorm:"type:varchar(100)"`

	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty" gorm:"type:timestamp"`
}

// TableName specifies the table name for GORM
func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// NewInterviewSession creates a new interview session
func NewInterviewSession(userID uuid.UUID, question string) *InterviewSession {
	return &InterviewSession{
		ID:        uuid.New(),
		UserID:    userID,
		Question:  question,
		Status:    InterviewStatusCreated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// IsClosed reports whether the session reached a terminal state
func (s *InterviewSession) IsClosed() bool {
	return s.Status == InterviewStatusSubmitted || s.Status == InterviewStatusAutoSubmitted
}

// MarkInProgress transitions the session into the in-progress state
func (s *InterviewSession) MarkInProgress() {
	s.Status = InterviewStatusInProgress
	s.UpdatedAt = time.Now()
}

// Close marks the session terminal. reason is empty for a normal submission.
func (s *InterviewSession) Close(reason string) error {
	if s.IsClosed() {
		return ErrSessionClosed
	}
	now := time.Now()
	if reason != "" {
		s.Status = InterviewStatusAutoSubmitted
		s.AutoSubmitReason = reason
	} else {
		s.Status = InterviewStatusSubmitted
	}
	s.SubmittedAt = &now
	s.UpdatedAt = now
	return nil
}
