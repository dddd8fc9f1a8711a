package job

import (
	"time"
)

// CreateJobRequest opens a new job posting
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Company     string   `json:"company" validate:"max=255"`
	Location    string   `json:"location" validate:"max=255"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ListJobsRequest narrows the job listing
type ListJobsRequest struct {
	Search    string  `query:"search"`
	Status    *string `query:"status" validate:"omitempty,oneof=open closed"`
	Page      int     `query:"page"`
	PageSize  int     `query:"page_size"`
	SortBy    string  `query:"sort_by"`
	SortOrder string  `query:"sort_order"`
}

// ApplyRequest submits an application to a posting. ResumeKey is the object
// key returned by the resume upload endpoint.
type ApplyRequest struct {
	ResumeKey string `json:"resume_key" validate:"required,max=500"`
	CoverNote string `json:"cover_note"`
}

// UpdateApplicationStatusRequest moves an application through review
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewed shortlisted rejected"`
}

// JobResponse is a posting as exposed to clients
type JobResponse struct {
	ID          string    `json:"id"`
	RecruiterID string    `json:"recruiter_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	JDUrl       string    `json:"jd_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicationResponse is an application as exposed to clients
type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	CoverNote   string    `json:"cover_note,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
