package analysis

import (
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// Input carries everything the aggregator needs for one submitted answer.
// EyeContactPercent is a pointer so a genuine 0% reading is distinguishable
// from an absent reading.
type Input struct {
	Transcript        string
	EyeContactPercent *int
	// HesitationOverride replaces the internally recomputed hesitation when
	// the caller already has finer-grained pause data than a plain transcript
	// can yield.
	HesitationOverride *entities.PauseInfo
}

// ComputeAllMetrics composes the transcript metrics with the supplied
// eye-contact percentage into one immutable InterviewScoreResult.
// Pure and idempotent: no hidden state, identical input yields identical output.
func ComputeAllMetrics(in Input) entities.InterviewScoreResult {
	m := Compute(in.Transcript)

	pauses := entities.PauseInfo{
		EstimatedPauses: m.FillerCount,
		HesitationScore: m.HesitationScore,
	}
	if in.HesitationOverride != nil {
		pauses = *in.HesitationOverride
	}

	appearance := 0
	eyeContact := 0
	if in.EyeContactPercent != nil {
		eyeContact = *in.EyeContactPercent
		appearance = clamp(eyeContact)
	}

	return entities.InterviewScoreResult{
		AppearanceScore:      appearance,
		LanguageGrammarScore: m.LanguageGrammarScore,
		ConfidenceScore:      m.ConfidenceScore,
		ContentDeliveryScore: m.ContentDeliveryScore,
		KnowledgeScore:       m.KnowledgeScore,
		Sentiment:            m.Sentiment,
		SentimentScore:       m.SentimentScore,
		WordCount:            m.WordCount,
		Pauses:               pauses,
		EmotionTimeline:      m.EmotionTimeline,
		EyeContactPercent:    eyeContact,
	}
}
