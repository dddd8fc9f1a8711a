package presenter

import (
	"encoding/json"

	jobDTO "github.com/talentlens/talentlens/internal/adapter/dto/job"
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// ToJobResponse converts a JobPosting entity to JobResponse DTO. jdURL is an
// optional presigned URL for the attached job description file.
func ToJobResponse(j *entities.JobPosting, jdURL string) *jobDTO.JobResponse {
	if j == nil {
		return nil
	}

	var tags []string
	if j.Tags != nil {
		json.Unmarshal(j.Tags, &tags)
	}

	return &jobDTO.JobResponse{
		ID:          j.ID.String(),
		RecruiterID: j.RecruiterID.String(),
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		JDUrl:       jdURL,
		Tags:        tags,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt,
	}
}

// ToApplicationResponse converts an Application entity to its client shape.
// resumeURL is an optional presigned URL for the uploaded resume.
func ToApplicationResponse(a *entities.Application, resumeURL string) *jobDTO.ApplicationResponse {
	if a == nil {
		return nil
	}
	return &jobDTO.ApplicationResponse{
		ID:          a.ID.String(),
		JobID:       a.JobID.String(),
		CandidateID: a.CandidateID.String(),
		ResumeURL:   resumeURL,
		CoverNote:   a.CoverNote,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
