package mocktest

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/domain/repositories"
)

// Answer is one submitted answer keyed by the attempt question id
type Answer struct {
	QuestionID    uuid.UUID `json:"question_id"`
	SelectedIndex int       `json:"selected_index"`
}

// AttemptCache caches the active attempt id per user so idempotent start is
// one round-trip on the hot path. The database stays the source of truth;
// cache failures are non-fatal.
type AttemptCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, expiration time.Duration)
	Delete(ctx context.Context, key string)
}

// Service defines mock-test attempt lifecycle operations
type Service interface {
	// StartAttempt returns the user's in-progress attempt, creating one if
	// none exists. resumed reports whether an existing attempt was returned.
	StartAttempt(ctx context.Context, userID uuid.UUID) (attempt *entities.Attempt, resumed bool, err error)

	// SubmitAttempt scores the answers and marks the attempt terminal.
	// A second submission returns entities.ErrAttemptSubmitted.
	SubmitAttempt(ctx context.Context, attemptID uuid.UUID, answers []Answer, violations *entities.AttemptViolations) (*entities.Attempt, error)

	// RecordViolations additively merges violation increments into the attempt
	RecordViolations(ctx context.Context, attemptID uuid.UUID, attention, tabSwitch int) error

	// GetAttempt returns an attempt by id
	GetAttempt(ctx context.Context, attemptID uuid.UUID) (*entities.Attempt, error)

	// ListAttempts returns the user's attempts, newest first
	ListAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Attempt, error)
}

const activeAttemptTTL = 2 * time.Hour

type service struct {
	repo        repositories.AttemptRepository
	cache       AttemptCache
	perCategory int
	logger      *zap.Logger
}

// NewService constructs the mock-test attempt engine. cache may be nil.
func NewService(repo repositories.AttemptRepository, cache AttemptCache, perCategory int, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		cache:       cache,
		perCategory: perCategory,
		logger:      logger,
	}
}

func activeAttemptKey(userID uuid.UUID) string {
	return fmt.Sprintf("active_attempt:%s", userID)
}

func (s *service) StartAttempt(ctx context.Context, userID uuid.UUID) (*entities.Attempt, bool, error) {
	// Fast path: cached active attempt id
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, activeAttemptKey(userID)); ok {
			if id, err := uuid.Parse(cached); err == nil {
				if attempt, err := s.repo.FindByID(ctx, id); err == nil && !attempt.IsSubmitted() {
					return attempt, true, nil
				}
			}
			s.cache.Delete(ctx, activeAttemptKey(userID))
		}
	}

	// At most one in-progress attempt per user at a time
	existing, err := s.repo.FindInProgressByUser(ctx, userID)
	if err == nil {
		if s.cache != nil {
			s.cache.Set(ctx, activeAttemptKey(userID), existing.ID.String(), activeAttemptTTL)
		}
		return existing, true, nil
	}
	if err != entities.ErrAttemptNotFound {
		return nil, false, fmt.Errorf("failed to look up in-progress attempt: %w", err)
	}

	attempt := entities.NewAttempt(userID, DrawQuestions(s.perCategory))
	if err := s.repo.Create(ctx, attempt); err != nil {
		return nil, false, fmt.Errorf("failed to create attempt: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, activeAttemptKey(userID), attempt.ID.String(), activeAttemptTTL)
	}
	if s.logger != nil {
		s.logger.Info("attempt.created",
			zap.String("attempt_id", attempt.ID.String()),
			zap.String("user_id", userID.String()),
			zap.Int("questions", len(attempt.Questions)),
		)
	}
	return attempt, false, nil
}

func (s *service) SubmitAttempt(ctx context.Context, attemptID uuid.UUID, answers []Answer, violations *entities.AttemptViolations) (*entities.Attempt, error) {
	attempt, err := s.repo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	scores := ScoreAttempt(attempt, answers)
	if err := attempt.Submit(scores); err != nil {
		return nil, err
	}
	if violations != nil {
		attempt.AddViolations(violations.Attention, violations.TabSwitch)
	}

	if err := s.repo.Update(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}
	if s.cache != nil {
		s.cache.Delete(ctx, activeAttemptKey(attempt.UserID))
	}
	if s.logger != nil {
		s.logger.Info("attempt.submitted",
			zap.String("attempt_id", attempt.ID.String()),
			zap.Int("percent", scores.Percent),
		)
	}
	return attempt, nil
}

func (s *service) RecordViolations(ctx context.Context, attemptID uuid.UUID, attention, tabSwitch int) error {
	attempt, err := s.repo.FindByID(ctx, attemptID)
	if err != nil {
		return err
	}
	attempt.AddViolations(attention, tabSwitch)
	return s.repo.Update(ctx, attempt)
}

func (s *service) GetAttempt(ctx context.Context, attemptID uuid.UUID) (*entities.Attempt, error) {
	return s.repo.FindByID(ctx, attemptID)
}

func (s *service) ListAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Attempt, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// DrawQuestions builds a fresh attempt question set: perCategory questions
// drawn per category by Fisher-Yates shuffle-and-slice, concatenated in the
// fixed category order and numbered sequentially from 1.
func DrawQuestions(perCategory int) []entities.Question {
	var questions []entities.Question
	number := 1
	for _, cat := range entities.Categories() {
		bank := questionBank[cat]
		n := perCategory
		if n > len(bank) {
			n = len(bank)
		}

		// Fisher-Yates shuffle over bank indices
		idx := make([]int, len(bank))
		for i := range idx {
			idx[i] = i
		}
		for i := len(idx) - 1; i > 0; i-- {
			j := rand.Intn(i + 1)
			idx[i], idx[j] = idx[j], idx[i]
		}

		for _, i := range idx[:n] {
			q := bank[i]
			questions = append(questions, entities.Question{
				ID:           uuid.New(),
				Number:       number,
				Category:     cat,
				Text:         q.text,
				Options:      q.options[:],
				CorrectIndex: q.answer,
			})
			number++
		}
	}
	return questions
}

// ScoreAttempt scores submitted answers against the attempt's answer key.
// Unanswered questions count as incorrect, never as excluded.
func ScoreAttempt(attempt *entities.Attempt, answers []Answer) *entities.AttemptScores {
	selected := make(map[uuid.UUID]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedIndex
	}

	scores := &entities.AttemptScores{
		Categories: make(map[entities.QuestionCategory]entities.CategoryScore, len(entities.Categories())),
	}
	for _, cat := range entities.Categories() {
		scores.Categories[cat] = entities.CategoryScore{}
	}

	for _, q := range attempt.Questions {
		cs := scores.Categories[q.Category]
		cs.Total++
		scores.TotalQuestions++
		if idx, ok := selected[q.ID]; ok && idx == q.CorrectIndex {
			cs.Correct++
			scores.TotalCorrect++
		}
		scores.Categories[q.Category] = cs
	}

	scores.Percent = roundPercent(scores.TotalCorrect, scores.TotalQuestions)
	return scores
}

func roundPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	// round half up, matching the interview-side percentage rounding
	return (correct*100 + total/2) / total
}
