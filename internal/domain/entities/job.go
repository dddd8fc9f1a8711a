package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobStatus represents the state of a job posting
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// JobPosting represents a recruiter-owned job listing
type JobPosting struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RecruiterID uuid.UUID      `json:"recruiter_id" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Company     string         `json:"company" gorm:"type:varchar(255)"`
	Location    string         `json:"location,omitempty" gorm:"type:varchar(255)"`
	Description string         `json:"description" gorm:"type:text"`
	JDKey       *string        `json:"jd_key,omitempty" gorm:"column:jd_key;type:varchar(500)"` // uploaded JD object key
	Tags        datatypes.JSON `json:"tags,omitempty" gorm:"type:jsonb;default:'[]'"`
	Status      JobStatus      `json:"status" gorm:"type:varchar(20);not null;index;default:'open'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (JobPosting) TableName() string {
	return "job_postings"
}

// NewJobPosting creates a new open job posting
func NewJobPosting(recruiterID uuid.UUID, title, company, description string) *JobPosting {
	return &JobPosting{
		ID:          uuid.New(),
		RecruiterID: recruiterID,
		Title:       title,
		Company:     company,
		Description: description,
		Status:      JobStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// IsOpen reports whether the posting accepts applications
func (j *JobPosting) IsOpen() bool {
	return j.Status == JobStatusOpen
}

// Close closes the posting to new applications
func (j *JobPosting) Close() {
	j.Status = JobStatusClosed
	j.UpdatedAt = time.Now()
}

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application represents a candidate's application to a job posting
type Application struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	JobID       uuid.UUID         `json:"job_id" gorm:"type:uuid;not null;index:idx_job_candidate,unique"`
	CandidateID uuid.UUID         `json:"candidate_id" gorm:"type:uuid;not null;index:idx_job_candidate,unique"`
	ResumeKey   string            `json:"resume_key" gorm:"type:varchar(500);not null"`
	CoverNote   string            `json:"cover_note,omitempty" gorm:"type:text"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'applied'"`
	CreatedAt   time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Application) TableName() string {
	return "applications"
}

// NewApplication creates a new application in the applied state
func NewApplication(jobID, candidateID uuid.UUID, resumeKey string) *Application {
	return &Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeKey:   resumeKey,
		Status:      ApplicationStatusApplied,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
