package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// MemoryAttemptRepository is an in-memory attempt repository. It backs unit
// tests and local development without Postgres.
type MemoryAttemptRepository struct {
	mu       sync.RWMutex
	attempts map[uuid.UUID]*entities.Attempt
}

// NewMemoryAttemptRepository creates an empty in-memory attempt repository
func NewMemoryAttemptRepository() *MemoryAttemptRepository {
	return &MemoryAttemptRepository{
		attempts: make(map[uuid.UUID]*entities.Attempt),
	}
}

func (r *MemoryAttemptRepository) Create(ctx context.Context, attempt *entities.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *attempt
	r.attempts[attempt.ID] = &cp
	return nil
}

func (r *MemoryAttemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempt, ok := r.attempts[id]
	if !ok {
		return nil, entities.ErrAttemptNotFound
	}
	cp := *attempt
	return &cp, nil
}

func (r *MemoryAttemptRepository) FindInProgressByUser(ctx context.Context, userID uuid.UUID) (*entities.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *entities.Attempt
	for _, attempt := range r.attempts {
		if attempt.UserID != userID || attempt.SubmittedAt != nil {
			continue
		}
		if latest == nil || attempt.CreatedAt.After(latest.CreatedAt) {
			latest = attempt
		}
	}
	if latest == nil {
		return nil, entities.ErrAttemptNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *MemoryAttemptRepository) Update(ctx context.Context, attempt *entities.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attempts[attempt.ID]; !ok {
		return entities.ErrAttemptNotFound
	}
	cp := *attempt
	r.attempts[attempt.ID] = &cp
	return nil
}

func (r *MemoryAttemptRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.Attempt
	for _, attempt := range r.attempts {
		if attempt.UserID != userID {
			continue
		}
		cp := *attempt
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MemoryInterviewRepository is an in-memory interview repository for tests.
type MemoryInterviewRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entities.InterviewSession
	scores   map[uuid.UUID]*entities.InterviewScore
}

// NewMemoryInterviewRepository creates an empty in-memory interview repository
func NewMemoryInterviewRepository() *MemoryInterviewRepository {
	return &MemoryInterviewRepository{
		sessions: make(map[uuid.UUID]*entities.InterviewSession),
		scores:   make(map[uuid.UUID]*entities.InterviewScore),
	}
}

func (r *MemoryInterviewRepository) CreateSession(ctx context.Context, session *entities.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *MemoryInterviewRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (r *MemoryInterviewRepository) UpdateSession(ctx context.Context, session *entities.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return entities.ErrSessionNotFound
	}
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *MemoryInterviewRepository) ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.InterviewSession
	for _, session := range r.sessions {
		if session.UserID != userID {
			continue
		}
		cp := *session
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryInterviewRepository) SaveScore(ctx context.Context, score *entities.InterviewScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *score
	r.scores[score.SessionID] = &cp
	return nil
}

func (r *MemoryInterviewRepository) FindScoreBySession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	score, ok := r.scores[sessionID]
	if !ok {
		return nil, entities.ErrScoreNotFound
	}
	cp := *score
	return &cp, nil
}
