package analysis

import (
	"regexp"
	"strings"
)

// Filler lexicon: hesitation markers counted to estimate speech hesitation.
// Multi-word entries are matched as whole phrases.
var fillerLexicon = []string{
	"um", "uh", "like", "you know", "actually", "basically", "sort of", "kind of",
}

// Sentiment lexicons: whole-word matches, case-insensitive.
var positiveLexicon = []string{
	"good", "great", "excellent", "confident", "happy", "love", "enjoy",
	"success", "successful", "achieve", "achieved", "improve", "improved",
	"passionate", "excited", "strong", "positive", "opportunity", "best",
}

var negativeLexicon = []string{
	"bad", "poor", "difficult", "hard", "problem", "problems", "fail",
	"failed", "failure", "weak", "hate", "wrong", "worried", "nervous",
	"negative", "unfortunately", "struggle", "struggled", "worst",
}

var (
	fillerPatterns  []*regexp.Regexp
	positivePattern *regexp.Regexp
	negativePattern *regexp.Regexp
)

func init() {
	for _, f := range fillerLexicon {
		fillerPatterns = append(fillerPatterns, wordPattern(f))
	}
	positivePattern = wordPattern(strings.Join(positiveLexicon, "|"))
	negativePattern = wordPattern(strings.Join(negativeLexicon, "|"))
}

// wordPattern builds a case-insensitive whole-word (or whole-phrase) matcher
func wordPattern(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + alternatives + `)\b`)
}

// countFillers counts whole-word and whole-phrase filler matches in the transcript
func countFillers(transcript string) int {
	total := 0
	for _, p := range fillerPatterns {
		total += len(p.FindAllStringIndex(transcript, -1))
	}
	return total
}

// countPositive counts whole-word positive lexicon matches
func countPositive(text string) int {
	return len(positivePattern.FindAllStringIndex(text, -1))
}

// countNegative counts whole-word negative lexicon matches
func countNegative(text string) int {
	return len(negativePattern.FindAllStringIndex(text, -1))
}
