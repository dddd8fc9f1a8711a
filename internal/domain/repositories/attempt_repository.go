package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// AttemptRepository defines the interface for mock-test attempt data access.
// Implementations: GORM/Postgres for production, in-memory for tests.
type AttemptRepository interface {
	// Create stores a new attempt
	Create(ctx context.Context, attempt *entities.Attempt) error

	// FindByID finds an attempt by id; returns entities.ErrAttemptNotFound when missing
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error)

	// FindInProgressByUser returns the user's unsubmitted attempt, if any;
	// entities.ErrAttemptNotFound when the user has none
	FindInProgressByUser(ctx context.Context, userID uuid.UUID) (*entities.Attempt, error)

	// Update persists attempt mutations (submission, violation counters)
	Update(ctx context.Context, attempt *entities.Attempt) error

	// ListByUser returns the user's attempts, newest first
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Attempt, error)
}
