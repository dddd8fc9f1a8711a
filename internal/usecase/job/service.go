package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/domain/repositories"
)

// CreateJobInput carries the fields of a new job posting
type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Tags        datatypes.JSON
}

// Service defines job posting and application operations
type Service interface {
	// CreateJob opens a new posting owned by the recruiter
	CreateJob(ctx context.Context, recruiterID uuid.UUID, in CreateJobInput) (*entities.JobPosting, error)

	// GetJob returns a posting by id
	GetJob(ctx context.Context, jobID uuid.UUID) (*entities.JobPosting, error)

	// ListJobs lists postings matching the filters and the total match count
	ListJobs(ctx context.Context, filters repositories.JobFilters) ([]*entities.JobPosting, int64, error)

	// CloseJob closes a posting. Only the owning recruiter may close it.
	CloseJob(ctx context.Context, recruiterID, jobID uuid.UUID) (*entities.JobPosting, error)

	// AttachJD records the object key of an uploaded job description file
	AttachJD(ctx context.Context, recruiterID, jobID uuid.UUID, objectKey string) error

	// Apply submits a candidate application to an open posting. A repeat
	// application to the same posting is rejected.
	Apply(ctx context.Context, candidateID, jobID uuid.UUID, resumeKey, coverNote string) (*entities.Application, error)

	// UpdateApplicationStatus moves an application through the review
	// pipeline. Only the recruiter owning the posting may do this.
	UpdateApplicationStatus(ctx context.Context, recruiterID, applicationID uuid.UUID, status entities.ApplicationStatus) (*entities.Application, error)

	// ListApplicationsByJob lists applications for a recruiter's posting
	ListApplicationsByJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]*entities.Application, error)

	// ListMyApplications lists the candidate's own applications
	ListMyApplications(ctx context.Context, candidateID uuid.UUID) ([]*entities.Application, error)
}

type service struct {
	repo   repositories.JobRepository
	logger *zap.Logger
}

// NewService creates the job service
func NewService(repo repositories.JobRepository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) CreateJob(ctx context.Context, recruiterID uuid.UUID, in CreateJobInput) (*entities.JobPosting, error) {
	job := entities.NewJobPosting(recruiterID, in.Title, in.Company, in.Description)
	job.Location = in.Location
	if in.Tags != nil {
		job.Tags = in.Tags
	}
	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	s.logger.Info("job.created",
		zap.String("job_id", job.ID.String()),
		zap.String("recruiter_id", recruiterID.String()),
		zap.String("title", job.Title),
	)
	return job, nil
}

func (s *service) GetJob(ctx context.Context, jobID uuid.UUID) (*entities.JobPosting, error) {
	return s.repo.FindJobByID(ctx, jobID)
}

func (s *service) ListJobs(ctx context.Context, filters repositories.JobFilters) ([]*entities.JobPosting, int64, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	return s.repo.ListJobs(ctx, filters)
}

func (s *service) CloseJob(ctx context.Context, recruiterID, jobID uuid.UUID) (*entities.JobPosting, error) {
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, entities.ErrForbidden
	}
	if !job.IsOpen() {
		return nil, entities.ErrJobClosed
	}
	job.Close()
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to close job: %w", err)
	}
	s.logger.Info("job.closed", zap.String("job_id", jobID.String()))
	return job, nil
}

func (s *service) AttachJD(ctx context.Context, recruiterID, jobID uuid.UUID, objectKey string) error {
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.RecruiterID != recruiterID {
		return entities.ErrForbidden
	}
	job.JDKey = &objectKey
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return fmt.Errorf("failed to attach job description: %w", err)
	}
	return nil
}

func (s *service) Apply(ctx context.Context, candidateID, jobID uuid.UUID, resumeKey, coverNote string) (*entities.Application, error) {
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsOpen() {
		return nil, entities.ErrJobClosed
	}

	app := entities.NewApplication(jobID, candidateID, resumeKey)
	app.CoverNote = coverNote
	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Info("application.created",
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("candidate_id", candidateID.String()),
	)
	return app, nil
}

func (s *service) UpdateApplicationStatus(ctx context.Context, recruiterID, applicationID uuid.UUID, status entities.ApplicationStatus) (*entities.Application, error) {
	switch status {
	case entities.ApplicationStatusApplied,
		entities.ApplicationStatusReviewed,
		entities.ApplicationStatusShortlisted,
		entities.ApplicationStatusRejected:
	default:
		return nil, entities.ErrInvalidRequest
	}

	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.repo.FindJobByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, entities.ErrForbidden
	}

	app.Status = status
	if err := s.repo.UpdateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

func (s *service) ListApplicationsByJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]*entities.Application, error) {
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, entities.ErrForbidden
	}
	return s.repo.ListApplicationsByJob(ctx, jobID)
}

func (s *service) ListMyApplications(ctx context.Context, candidateID uuid.UUID) ([]*entities.Application, error) {
	return s.repo.ListApplicationsByCandidate(ctx, candidateID)
}
