package entities

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment is the coarse transcript polarity label
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// EmotionPoint is one entry of the per-sentence emotion timeline
type EmotionPoint struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Emotion string `json:"emotion"` // engaged, concerned, neutral
}

// PauseInfo holds hesitation estimates derived from filler-word density
type PauseInfo struct {
	EstimatedPauses int `json:"estimated_pauses"`
	HesitationScore int `json:"hesitation_score"`
}

// InterviewScoreResult is the composite soft-skill scoring outcome for one
// submitted answer. Immutable once produced.
type InterviewScoreResult struct {
	AppearanceScore      int            `json:"appearance_score"`
	LanguageGrammarScore int            `json:"language_grammar_score"`
	ConfidenceScore      int            `json:"confidence_score"`
	ContentDeliveryScore int            `json:"content_delivery_score"`
	KnowledgeScore       int            `json:"knowledge_score"`
	Sentiment            Sentiment      `json:"sentiment"`
	SentimentScore       int            `json:"sentiment_score"`
	WordCount            int            `json:"word_count"`
	Pauses               PauseInfo      `json:"pauses"`
	EmotionTimeline      []EmotionPoint `json:"emotion_timeline"`
	EyeContactPercent    int            `json:"eye_contact_percent"`
}

// InterviewScore is the stored scoring record for an interview session
type InterviewScore struct {
	ID        uuid.UUID            `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID uuid.UUID            `json:"session_id" gorm:"type:uuid;not null;uniqueIndex"`
	UserID    uuid.UUID            `json:"user_id" gorm:"type:uuid;not null;index"`
	Result    InterviewScoreResult `json:"result" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time            `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (InterviewScore) TableName() string {
	return "interview_scores"
}

// NewInterviewScore creates a stored score record for a session
func NewInterviewScore(sessionID, userID uuid.UUID, result InterviewScoreResult) *InterviewScore {
	return &InterviewScore{
		ID:        uuid.New(),
		SessionID: sessionID,
		UserID:    userID,
		Result:    result,
		CreatedAt: time.Now(),
	}
}
