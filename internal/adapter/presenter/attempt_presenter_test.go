package presenter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

func openAttempt() *entities.Attempt {
	return &entities.Attempt{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Questions: []entities.Question{
			{
				ID:           uuid.New(),
				Number:       1,
				Category:     entities.CategoryQuant,
				Text:         "What is 12 * 12?",
				Options:      []string{"124", "144", "154", "164"},
				CorrectIndex: 1,
			},
			{
				ID:           uuid.New(),
				Number:       2,
				Category:     entities.CategoryLogical,
				Text:         "Complete the series: 2, 4, 8, ?",
				Options:      []string{"10", "12", "16", "24"},
				CorrectIndex: 2,
			},
		},
		CreatedAt: time.Now(),
	}
}

func TestToQuestionResponse_StripsCorrectIndex(t *testing.T) {
	q := entities.Question{
		ID:           uuid.New(),
		Number:       7,
		Category:     entities.CategoryVerbal,
		Text:         "Pick the synonym of rapid.",
		Options:      []string{"slow", "fast", "late", "dull"},
		CorrectIndex: 1,
	}

	resp := ToQuestionResponse(q)
	if resp.ID != q.ID.String() || resp.Number != 7 || resp.Category != "verbal" {
		t.Fatalf("unexpected response header: %+v", resp)
	}
	if len(resp.Options) != 4 {
		t.Fatalf("options = %v, want all four", resp.Options)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "correct_index") {
		t.Fatalf("serialized question leaks the answer key: %s", raw)
	}
}

func TestToAttemptResponse_NeverCarriesAnswerKey(t *testing.T) {
	attempt := openAttempt()

	resp := ToAttemptResponse(attempt, true)
	if resp == nil {
		t.Fatal("response must not be nil for a live attempt")
	}
	if !resp.Resumed {
		t.Fatal("resumed flag must survive conversion")
	}
	if len(resp.Questions) != len(attempt.Questions) {
		t.Fatalf("questions = %d, want %d", len(resp.Questions), len(attempt.Questions))
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "correct_index") {
		t.Fatalf("serialized attempt leaks the answer key: %s", body)
	}
	for _, q := range attempt.Questions {
		if !strings.Contains(body, q.Text) {
			t.Fatalf("question %q missing from response", q.Text)
		}
	}
}

func TestToAttemptResponse_Nil(t *testing.T) {
	if ToAttemptResponse(nil, false) != nil {
		t.Fatal("nil attempt must map to nil response")
	}
	if ToAttemptSummaryResponse(nil) != nil {
		t.Fatal("nil attempt must map to nil summary")
	}
}

func TestToAttemptSummaryResponse_OmitsQuestions(t *testing.T) {
	attempt := openAttempt()

	resp := ToAttemptSummaryResponse(attempt)
	if len(resp.Questions) != 0 {
		t.Fatalf("summary carries %d questions, want none", len(resp.Questions))
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "correct_index") {
		t.Fatalf("serialized summary leaks the answer key: %s", raw)
	}
}
