package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// AttemptRepository implements the attempt repository interface using GORM
type AttemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{
		db: db,
	}
}

// Create creates a new attempt
func (r *AttemptRepository) Create(ctx context.Context, attempt *entities.Attempt) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// FindByID finds an attempt by ID
func (r *AttemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error) {
	var attempt entities.Attempt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&attempt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to find attempt by ID: %w", err)
	}
	return &attempt, nil
}

// FindInProgressByUser finds the user's unsubmitted attempt
func (r *AttemptRepository) FindInProgressByUser(ctx context.Context, userID uuid.UUID) (*entities.Attempt, error) {
	var attempt entities.Attempt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND submitted_at IS NULL", userID).
		Order("created_at DESC").
		First(&attempt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to find in-progress attempt: %w", err)
	}
	return &attempt, nil
}

// Update updates an attempt
func (r *AttemptRepository) Update(ctx context.Context, attempt *entities.Attempt) error {
	if err := r.db.WithContext(ctx).Save(attempt).Error; err != nil {
		return fmt.Errorf("failed to update attempt: %w", err)
	}
	return nil
}

// ListByUser lists the user's attempts, newest first
func (r *AttemptRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Attempt, error) {
	var attempts []*entities.Attempt
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}
