package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// Metrics holds every heuristic score derived from a plain transcript.
// All scores are in [0,100]. An empty transcript yields zero/neutral values,
// never an error.
type Metrics struct {
	WordCount            int
	SentenceCount        int
	FillerCount          int
	HesitationScore      int
	LanguageGrammarScore int
	Sentiment            entities.Sentiment
	SentimentScore       int
	ConfidenceScore      int
	KnowledgeScore       int
	ContentDeliveryScore int
	EmotionTimeline      []entities.EmotionPoint
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Words splits a transcript into whitespace-separated tokens
func Words(transcript string) []string {
	return strings.Fields(transcript)
}

// Sentences splits a transcript on sentence terminators, trimming and
// dropping empty fragments
func Sentences(transcript string) []string {
	parts := sentenceSplit.Split(transcript, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Compute derives all transcript metrics. Pure and deterministic: identical
// transcripts always produce identical metrics.
func Compute(transcript string) Metrics {
	words := Words(transcript)
	sentences := Sentences(transcript)

	m := Metrics{
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}

	m.FillerCount = countFillers(transcript)
	m.HesitationScore = maxInt(0, 100-m.FillerCount*5)
	m.LanguageGrammarScore = grammarScore(words, sentences)
	m.Sentiment, m.SentimentScore = SentimentOf(transcript)
	m.ConfidenceScore = confidenceScore(len(words), m.FillerCount)
	m.KnowledgeScore = knowledgeScore(words)
	m.ContentDeliveryScore = contentDeliveryScore(len(sentences))
	m.EmotionTimeline = EmotionTimeline(sentences)

	return m
}

// SentimentOf classifies text polarity by lexicon counts.
// Positive needs pos > neg+1, negative needs neg > pos+1, else neutral.
func SentimentOf(text string) (entities.Sentiment, int) {
	pos := countPositive(text)
	neg := countNegative(text)
	switch {
	case pos > neg+1:
		return entities.SentimentPositive, 80
	case neg > pos+1:
		return entities.SentimentNegative, 30
	default:
		return entities.SentimentNeutral, 60
	}
}

// EmotionTimeline recomputes sentiment per sentence and maps it to an
// emotion label, preserving sentence order. Restartable: the same input
// always yields the same sequence.
func EmotionTimeline(sentences []string) []entities.EmotionPoint {
	timeline := make([]entities.EmotionPoint, 0, len(sentences))
	for i, s := range sentences {
		sentiment, _ := SentimentOf(s)
		emotion := "neutral"
		switch sentiment {
		case entities.SentimentPositive:
			emotion = "engaged"
		case entities.SentimentNegative:
			emotion = "concerned"
		}
		timeline = append(timeline, entities.EmotionPoint{Index: i, Text: s, Emotion: emotion})
	}
	return timeline
}

// grammarScore: base 50, +20 for average sentence length in [12,25],
// +15 when more than 20% of words are long (>= 7 chars)
func grammarScore(words, sentences []string) int {
	score := 50

	avgLen := float64(len(words))
	if len(sentences) > 0 {
		avgLen = float64(len(words)) / float64(len(sentences))
	}
	if avgLen >= 12 && avgLen <= 25 {
		score += 20
	}

	if len(words) > 0 {
		long := 0
		for _, w := range words {
			if len(w) >= 7 {
				long++
			}
		}
		if float64(long)/float64(len(words)) > 0.2 {
			score += 15
		}
	}

	return clamp(score)
}

// confidenceScore: base 50, rewards longer answers, penalizes fillers
func confidenceScore(wordCount, fillerCount int) int {
	score := 50
	if wordCount > 150 {
		score += 20
	}
	if wordCount > 250 {
		score += 10
	}
	score -= fillerCount * 3
	return clamp(score)
}

// knowledgeScore uses type-token ratio (unique lowercase words / total words)
// as a vocabulary-richness proxy
func knowledgeScore(words []string) int {
	score := 50
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[strings.ToLower(w)] = struct{}{}
		}
		ratio := float64(len(unique)) / float64(len(words))
		if ratio > 0.4 {
			score += 20
		}
		if ratio > 0.5 {
			score += 10
		}
	}
	return clamp(score)
}

// contentDeliveryScore rewards structured, multi-sentence answers
func contentDeliveryScore(sentenceCount int) int {
	score := 50
	if sentenceCount >= 5 {
		score += 15
	}
	if sentenceCount >= 8 {
		score += 10
	}
	return clamp(score)
}

// RoundPercent converts a good/total ratio to a rounded percentage
func RoundPercent(good, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(good) / float64(total) * 100))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
