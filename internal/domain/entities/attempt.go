package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuestionCategory identifies a mock-test question category
type QuestionCategory string

const (
	CategoryQuant       QuestionCategory = "quant"
	CategoryLogical     QuestionCategory = "logical"
	CategoryVerbal      QuestionCategory = "verbal"
	CategoryProgramming QuestionCategory = "programming"
)

// Categories returns all categories in their fixed presentation order.
// The order matters: attempt questions are concatenated category by category.
func Categories() []QuestionCategory {
	return []QuestionCategory{CategoryQuant, CategoryLogical, CategoryVerbal, CategoryProgramming}
}

// IsValid checks if the category is one of the fixed four
func (c QuestionCategory) IsValid() bool {
	switch c {
	case CategoryQuant, CategoryLogical, CategoryVerbal, CategoryProgramming:
		return true
	}
	return false
}

// Question is a single multiple-choice question snapshotted into an attempt
type Question struct {
	ID           uuid.UUID        `json:"id"`
	Number       int              `json:"number"`
	Category     QuestionCategory `json:"category"`
	Text         string           `json:"text"`
	Options      []string         `json:"options"`
	CorrectIndex int              `json:"correct_index"`
}

// CategoryScore holds per-category correctness counts
type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AttemptScores holds the scoring outcome of a submitted attempt
type AttemptScores struct {
	Categories     map[QuestionCategory]CategoryScore `json:"categories"`
	TotalCorrect   int                                `json:"total_correct"`
	TotalQuestions int                                `json:"total_questions"`
	Percent        int                                `json:"percent"`
}

// AttemptViolations holds proctoring violation counters recorded on an attempt
type AttemptViolations struct {
	Attention int `json:"attention"`
	TabSwitch int `json:"tab_switch"`
}

// Attempt represents one instance of a candidate taking the mock aptitude test
type Attempt struct {
	ID          uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID          `json:"user_id" gorm:"type:uuid;not null;index"`
	Questions   []Question         `json:"questions" gorm:"type:jsonb;serializer:json"`
	Scores      *AttemptScores     `json:"scores,omitempty" gorm:"type:jsonb;serializer:json"`
	Violations  AttemptViolations  `json:"violations" gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time          `json:"created_at" gorm:"autoCreateTime"`
	SubmittedAt *time.Time         `json:"submitted_at,omitempty" gorm:"type:timestamp;index"`
}

// TableName specifies the table name for GORM
func (Attempt) TableName() string {
	return "attempts"
}

// NewAttempt creates a new in-progress attempt for a user
func NewAttempt(userID uuid.UUID, questions []Question) *Attempt {
	return &Attempt{
		ID:        uuid.New(),
		UserID:    userID,
		Questions: questions,
		CreatedAt: time.Now(),
	}
}

// IsSubmitted reports whether the attempt is terminal
func (a *Attempt) IsSubmitted() bool {
	return a.SubmittedAt != nil
}

// Submit records the scores and marks the attempt terminal.
// Returns ErrAttemptSubmitted if the attempt was already submitted.
func (a *Attempt) Submit(scores *AttemptScores) error {
	if a.IsSubmitted() {
		return ErrAttemptSubmitted
	}
	now := time.Now()
	a.Scores = scores
	a.SubmittedAt = &now
	return nil
}

// AddViolations additively merges violation increments into the attempt counters
func (a *Attempt) AddViolations(attention, tabSwitch int) {
	a.Violations.Attention += attention
	a.Violations.TabSwitch += tabSwitch
}
