package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create stores a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by id; entities.ErrUserNotFound when missing
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByEmail finds a user by email; entities.ErrUserNotFound when missing
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// Update persists user mutations
	Update(ctx context.Context, user *entities.User) error

	// TouchLastActive stamps the user's last-active timestamp
	TouchLastActive(ctx context.Context, id uuid.UUID) error
}
