package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/domain/repositories"
)

// JobRepository implements the job repository interface using GORM
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// CreateJob creates a new job posting
func (r *JobRepository) CreateJob(ctx context.Context, job *entities.JobPosting) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

// FindJobByID finds a job posting by ID
func (r *JobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entities.JobPosting, error) {
	var job entities.JobPosting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job posting by ID: %w", err)
	}
	return &job, nil
}

// UpdateJob updates a job posting
func (r *JobRepository) UpdateJob(ctx context.Context, job *entities.JobPosting) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job posting: %w", err)
	}
	return nil
}

// ListJobs lists job postings matching the filters and the total match count
func (r *JobRepository) ListJobs(ctx context.Context, filters repositories.JobFilters) ([]*entities.JobPosting, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.JobPosting{})

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Recruiter != nil {
		query = query.Where("recruiter_id = ?", *filters.Recruiter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count job postings: %w", err)
	}

	sortBy := filters.SortBy
	switch sortBy {
	case "title", "company", "created_at":
	default:
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		order = "ASC"
	}
	query = query.Order(sortBy + " " + order)

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var jobs []*entities.JobPosting
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list job postings: %w", err)
	}
	return jobs, total, nil
}

// CreateApplication creates a new application. The (job, candidate) pair is
// unique, a repeat submission maps to entities.ErrApplicationDuplicate.
func (r *JobRepository) CreateApplication(ctx context.Context, app *entities.Application) error {
	var existing entities.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", app.JobID, app.CandidateID).
		First(&existing).Error
	if err == nil {
		return entities.ErrApplicationDuplicate
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check existing application: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.ErrApplicationDuplicate
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindApplicationByID finds an application by ID
func (r *JobRepository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var app entities.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID: %w", err)
	}
	return &app, nil
}

// UpdateApplication updates an application
func (r *JobRepository) UpdateApplication(ctx context.Context, app *entities.Application) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// ListApplicationsByJob lists applications for a posting
func (r *JobRepository) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]*entities.Application, error) {
	var apps []*entities.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	return apps, nil
}

// ListApplicationsByCandidate lists a candidate's applications
func (r *JobRepository) ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*entities.Application, error) {
	var apps []*entities.Application
	if err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications by candidate: %w", err)
	}
	return apps, nil
}
