package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// InterviewRepository implements the interview repository interface using GORM
type InterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{
		db: db,
	}
}

// CreateSession creates a new interview session
func (r *InterviewRepository) CreateSession(ctx context.Context, session *entities.InterviewSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}
	return nil
}

// FindSessionByID finds an interview session by ID
func (r *InterviewRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error) {
	var session entities.InterviewSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find interview session by ID: %w", err)
	}
	return &session, nil
}

// UpdateSession updates an interview session
func (r *InterviewRepository) UpdateSession(ctx context.Context, session *entities.InterviewSession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("failed to update interview session: %w", err)
	}
	return nil
}

// ListSessionsByUser lists the user's interview sessions, newest first
func (r *InterviewRepository) ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error) {
	var sessions []*entities.InterviewSession
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list interview sessions: %w", err)
	}
	return sessions, nil
}

// SaveScore stores the scoring record for a session
func (r *InterviewRepository) SaveScore(ctx context.Context, score *entities.InterviewScore) error {
	if err := r.db.WithContext(ctx).Create(score).Error; err != nil {
		return fmt.Errorf("failed to save interview score: %w", err)
	}
	return nil
}

// FindScoreBySession finds the stored score for a session
func (r *InterviewRepository) FindScoreBySession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewScore, error) {
	var score entities.InterviewScore
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&score).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to find interview score: %w", err)
	}
	return &score, nil
}
