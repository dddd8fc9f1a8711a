package mocktest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/internal/adapter/repository"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/infrastructure/cache"
)

func newTestService(t *testing.T) Service {
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)
	return NewService(repository.NewMemoryAttemptRepository(), store, 15, zap.NewNop())
}

func TestDrawQuestions(t *testing.T) {
	questions := DrawQuestions(15)
	require.Len(t, questions, 60)

	perCategory := map[entities.QuestionCategory]int{}
	seenIDs := map[uuid.UUID]struct{}{}
	seenTexts := map[string]struct{}{}
	for i, q := range questions {
		assert.Equal(t, i+1, q.Number, "questions must be numbered sequentially from 1")
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectIndex, 0)
		assert.Less(t, q.CorrectIndex, 4)
		perCategory[q.Category]++
		seenIDs[q.ID] = struct{}{}
		seenTexts[q.Text] = struct{}{}
	}

	for _, cat := range entities.Categories() {
		assert.Equal(t, 15, perCategory[cat], "category %s", cat)
	}
	assert.Len(t, seenIDs, 60, "question ids must be unique")
	assert.Len(t, seenTexts, 60, "no question may be drawn twice")
}

func TestDrawQuestions_CategoryOrder(t *testing.T) {
	questions := DrawQuestions(2)
	require.Len(t, questions, 8)

	want := []entities.QuestionCategory{
		entities.CategoryQuant, entities.CategoryQuant,
		entities.CategoryLogical, entities.CategoryLogical,
		entities.CategoryVerbal, entities.CategoryVerbal,
		entities.CategoryProgramming, entities.CategoryProgramming,
	}
	for i, q := range questions {
		assert.Equal(t, want[i], q.Category, "question %d", i)
	}
}

func TestDrawQuestions_CappedAtBankSize(t *testing.T) {
	questions := DrawQuestions(1000)
	assert.Len(t, questions, 4*BankSize(entities.CategoryQuant))
}

func TestStartAttempt_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, resumed, err := svc.StartAttempt(ctx, userID)
	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Len(t, first.Questions, 60)

	second, resumed, err := svc.StartAttempt(ctx, userID)
	require.NoError(t, err)
	assert.True(t, resumed, "second start must resume the open attempt")
	assert.Equal(t, first.ID, second.ID)
}

func TestStartAttempt_NewAttemptAfterSubmission(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, _, err := svc.StartAttempt(ctx, userID)
	require.NoError(t, err)
	_, err = svc.SubmitAttempt(ctx, first.ID, nil, nil)
	require.NoError(t, err)

	second, resumed, err := svc.StartAttempt(ctx, userID)
	require.NoError(t, err)
	assert.False(t, resumed, "a submitted attempt must not be resumed")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmitAttempt_AllCorrect(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	attempt, _, err := svc.StartAttempt(ctx, uuid.New())
	require.NoError(t, err)

	answers := make([]Answer, 0, len(attempt.Questions))
	for _, q := range attempt.Questions {
		answers = append(answers, Answer{QuestionID: q.ID, SelectedIndex: q.CorrectIndex})
	}

	submitted, err := svc.SubmitAttempt(ctx, attempt.ID, answers, nil)
	require.NoError(t, err)
	require.NotNil(t, submitted.Scores)
	assert.Equal(t, 60, submitted.Scores.TotalCorrect)
	assert.Equal(t, 100, submitted.Scores.Percent)
	assert.True(t, submitted.IsSubmitted())
	for _, cat := range entities.Categories() {
		cs := submitted.Scores.Categories[cat]
		assert.Equal(t, 15, cs.Correct, "category %s", cat)
		assert.Equal(t, 15, cs.Total, "category %s", cat)
	}
}

func TestSubmitAttempt_UnansweredCountAsIncorrect(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	attempt, _, err := svc.StartAttempt(ctx, uuid.New())
	require.NoError(t, err)

	// Answer the first 30 questions correctly, leave the rest blank.
	answers := make([]Answer, 0, 30)
	for _, q := range attempt.Questions[:30] {
		answers = append(answers, Answer{QuestionID: q.ID, SelectedIndex: q.CorrectIndex})
	}

	submitted, err := svc.SubmitAttempt(ctx, attempt.ID, answers, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, submitted.Scores.TotalCorrect)
	assert.Equal(t, 60, submitted.Scores.TotalQuestions, "unanswered questions stay in the denominator")
	assert.Equal(t, 50, submitted.Scores.Percent)
}

func TestSubmitAttempt_UnknownQuestionIDIgnored(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	attempt, _, err := svc.StartAttempt(ctx, uuid.New())
	require.NoError(t, err)

	answers := []Answer{{QuestionID: uuid.New(), SelectedIndex: 0}}
	submitted, err := svc.SubmitAttempt(ctx, attempt.ID, answers, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, submitted.Scores.TotalCorrect)
}

func TestSubmitAttempt_DuplicateRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	attempt, _, err := svc.StartAttempt(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.SubmitAttempt(ctx, attempt.ID, nil, nil)
	require.NoError(t, err)

	_, err = svc.SubmitAttempt(ctx, attempt.ID, nil, nil)
	assert.ErrorIs(t, err, entities.ErrAttemptSubmitted)
}

func TestSubmitAttempt_WithViolations(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	attempt, _, err := svc.StartAttempt(ctx, uuid.New())
	require.NoError(t, err)

	submitted, err := svc.SubmitAttempt(ctx, attempt.ID, nil, &entities.AttemptViolations{Attention: 2, TabSwitch: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, submitted.Violations.Attention)
	assert.Equal(t, 1, submitted.Violations.TabSwitch)
}

func TestSubmitAttempt_NotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SubmitAttempt(context.Background(), uuid.New(), nil, nil)
	assert.ErrorIs(t, err, entities.ErrAttemptNotFound)
}

func TestRecordViolations_Additive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	attempt, _, err := svc.StartAttempt(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.RecordViolations(ctx, attempt.ID, 1, 0))
	require.NoError(t, svc.RecordViolations(ctx, attempt.ID, 2, 3))

	got, err := svc.GetAttempt(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Violations.Attention)
	assert.Equal(t, 3, got.Violations.TabSwitch)
}

func TestListAttempts_NewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, _, err := svc.StartAttempt(ctx, userID)
	require.NoError(t, err)
	_, err = svc.SubmitAttempt(ctx, first.ID, nil, nil)
	require.NoError(t, err)
	second, _, err := svc.StartAttempt(ctx, userID)
	require.NoError(t, err)

	attempts, err := svc.ListAttempts(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, second.ID, attempts[0].ID)
	assert.Equal(t, first.ID, attempts[1].ID)
}

func TestScoreAttempt_PerCategoryBreakdown(t *testing.T) {
	q1 := entities.Question{ID: uuid.New(), Category: entities.CategoryQuant, CorrectIndex: 1}
	q2 := entities.Question{ID: uuid.New(), Category: entities.CategoryQuant, CorrectIndex: 2}
	q3 := entities.Question{ID: uuid.New(), Category: entities.CategoryVerbal, CorrectIndex: 0}
	attempt := entities.NewAttempt(uuid.New(), []entities.Question{q1, q2, q3})

	scores := ScoreAttempt(attempt, []Answer{
		{QuestionID: q1.ID, SelectedIndex: 1}, // correct
		{QuestionID: q2.ID, SelectedIndex: 0}, // wrong
		// q3 unanswered
	})

	assert.Equal(t, 1, scores.TotalCorrect)
	assert.Equal(t, 3, scores.TotalQuestions)
	assert.Equal(t, 33, scores.Percent)
	assert.Equal(t, entities.CategoryScore{Correct: 1, Total: 2}, scores.Categories[entities.CategoryQuant])
	assert.Equal(t, entities.CategoryScore{Correct: 0, Total: 1}, scores.Categories[entities.CategoryVerbal])
	assert.Equal(t, entities.CategoryScore{}, scores.Categories[entities.CategoryLogical])
}
