package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// JobFilters narrows job posting list queries
type JobFilters struct {
	Search    string
	Status    *entities.JobStatus
	Recruiter *uuid.UUID
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// JobRepository defines the interface for job posting and application data access
type JobRepository interface {
	// CreateJob stores a new job posting
	CreateJob(ctx context.Context, job *entities.JobPosting) error

	// FindJobByID finds a posting by id; entities.ErrJobNotFound when missing
	FindJobByID(ctx context.Context, id uuid.UUID) (*entities.JobPosting, error)

	// UpdateJob persists posting mutations
	UpdateJob(ctx context.Context, job *entities.JobPosting) error

	// ListJobs lists postings matching the filters and the total match count
	ListJobs(ctx context.Context, filters JobFilters) ([]*entities.JobPosting, int64, error)

	// CreateApplication stores a new application;
	// entities.ErrApplicationDuplicate on a repeat (job, candidate) pair
	CreateApplication(ctx context.Context, app *entities.Application) error

	// FindApplicationByID finds an application by id
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)

	// UpdateApplication persists application mutations
	UpdateApplication(ctx context.Context, app *entities.Application) error

	// ListApplicationsByJob lists applications for a posting
	ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]*entities.Application, error)

	// ListApplicationsByCandidate lists a candidate's applications
	ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*entities.Application, error)
}
