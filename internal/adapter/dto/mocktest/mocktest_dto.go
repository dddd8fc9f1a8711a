package mocktest

import (
	"time"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// AnswerRequest is one answer of a submission
type AnswerRequest struct {
	QuestionID    string `json:"question_id" validate:"required,uuid"`
	SelectedIndex int    `json:"selected_index" validate:"min=0,max=3"`
}

// SubmitAttemptRequest carries the candidate's answer sheet. Violations is
// optional, clients that batch proctoring counters with the final submission
// can send them here instead of a separate violations call.
type SubmitAttemptRequest struct {
	Answers    []AnswerRequest    `json:"answers" validate:"dive"`
	Violations *ViolationsRequest `json:"violations,omitempty" validate:"omitempty"`
}

// ViolationsRequest carries incremental proctoring counters for an attempt
type ViolationsRequest struct {
	Attention int `json:"attention" validate:"min=0"`
	TabSwitch int `json:"tab_switch" validate:"min=0"`
}

// QuestionResponse is a question as exposed to the candidate. The correct
// answer index is never part of it.
type QuestionResponse struct {
	ID       string   `json:"id"`
	Number   int      `json:"number"`
	Category string   `json:"category"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
}

// AttemptResponse is an attempt as exposed to the candidate
type AttemptResponse struct {
	ID          string                     `json:"id"`
	UserID      string                     `json:"user_id"`
	Questions   []QuestionResponse         `json:"questions,omitempty"`
	Scores      *entities.AttemptScores    `json:"scores,omitempty"`
	Violations  entities.AttemptViolations `json:"violations"`
	Resumed     bool                       `json:"resumed,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	SubmittedAt *time.Time                 `json:"submitted_at,omitempty"`
}
