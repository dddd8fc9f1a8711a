package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// InterviewRepository defines the interface for interview session and score
// data access
type InterviewRepository interface {
	// CreateSession stores a new interview session
	CreateSession(ctx context.Context, session *entities.InterviewSession) error

	// FindSessionByID finds a session by id; entities.ErrSessionNotFound when missing
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error)

	// UpdateSession persists session mutations
	UpdateSession(ctx context.Context, session *entities.InterviewSession) error

	// ListSessionsByUser returns the user's sessions, newest first
	ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error)

	// SaveScore stores the scoring record for a session
	SaveScore(ctx context.Context, score *entities.InterviewScore) error

	// FindScoreBySession finds the stored score for a session;
	// entities.ErrScoreNotFound when missing
	FindScoreBySession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewScore, error)
}
