package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/talentlens/talentlens/errors"
	"github.com/talentlens/talentlens/internal/adapter/dto/common"
	jobDTO "github.com/talentlens/talentlens/internal/adapter/dto/job"
	"github.com/talentlens/talentlens/internal/adapter/presenter"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/domain/repositories"
	"github.com/talentlens/talentlens/internal/infrastructure/storage"
	"github.com/talentlens/talentlens/internal/usecase/job"
)

const presignedURLExpiry = 15 * time.Minute

// Job handles job posting and application endpoints
type Job struct {
	service job.Service
	store   *storage.MinIOClient
	logger  *zap.Logger
}

// NewJob creates a new job handler. store may be nil, presigned URLs are
// then omitted from responses.
func NewJob(service job.Service, store *storage.MinIOClient, logger *zap.Logger) *Job {
	return &Job{
		service: service,
		store:   store,
		logger:  logger,
	}
}

func (h *Job) fileURL(ctx context.Context, objectKey string) string {
	if h.store == nil || objectKey == "" {
		return ""
	}
	url, err := h.store.GetFileURL(ctx, objectKey, presignedURLExpiry)
	if err != nil {
		h.logger.Warn("storage.presign_failed", zap.String("key", objectKey), zap.Error(err))
		return ""
	}
	return url
}

// Create opens a new job posting.
// POST /v1/jobs
func (h *Job) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req jobDTO.CreateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	var tags datatypes.JSON
	if len(req.Tags) > 0 {
		raw, err := json.Marshal(req.Tags)
		if err != nil {
			return handleError(c, h.logger, errors.ErrInvalidPayload())
		}
		tags = raw
	}

	posting, err := h.service.CreateJob(c.Request().Context(), userID, job.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Tags:        tags,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToJobResponse(posting, ""))
}

// List lists postings matching the query filters.
// GET /v1/jobs
func (h *Job) List(c echo.Context) error {
	var req jobDTO.ListJobsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	filters := repositories.JobFilters{
		Search:    req.Search,
		Limit:     req.PageSize,
		Offset:    (req.Page - 1) * req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Status != nil {
		status := entities.JobStatus(*req.Status)
		filters.Status = &status
	}

	jobs, total, err := h.service.ListJobs(c.Request().Context(), filters)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	out := make([]*jobDTO.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, presenter.ToJobResponse(j, ""))
	}

	return handleSuccess(c, h.logger, common.ListResponse{
		Data:       out,
		Pagination: common.NewPagination(req.Page, req.PageSize, total),
	})
}

// Get returns a posting with a presigned JD URL when one is attached.
// GET /v1/jobs/:id
func (h *Job) Get(c echo.Context) error {
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	posting, err := h.service.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	jdURL := ""
	if posting.JDKey != nil {
		jdURL = h.fileURL(c.Request().Context(), *posting.JDKey)
	}
	return handleSuccess(c, h.logger, presenter.ToJobResponse(posting, jdURL))
}

// Close closes a posting.
// POST /v1/jobs/:id/close
func (h *Job) Close(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	posting, err := h.service.CloseJob(c.Request().Context(), userID, jobID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToJobResponse(posting, ""))
}

// Apply submits an application to an open posting.
// POST /v1/jobs/:id/apply
func (h *Job) Apply(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req jobDTO.ApplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	app, err := h.service.Apply(c.Request().Context(), userID, jobID, req.ResumeKey, req.CoverNote)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToApplicationResponse(app, ""))
}

// ListApplications lists applications for the recruiter's posting.
// GET /v1/jobs/:id/applications
func (h *Job) ListApplications(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	apps, err := h.service.ListApplicationsByJob(c.Request().Context(), userID, jobID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	out := make([]*jobDTO.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, presenter.ToApplicationResponse(a, h.fileURL(c.Request().Context(), a.ResumeKey)))
	}
	return handleSuccess(c, h.logger, out)
}

// MyApplications lists the caller's own applications.
// GET /v1/applications
func (h *Job) MyApplications(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	apps, err := h.service.ListMyApplications(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	out := make([]*jobDTO.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, presenter.ToApplicationResponse(a, ""))
	}
	return handleSuccess(c, h.logger, out)
}

// UpdateApplicationStatus moves an application through review.
// PATCH /v1/applications/:id
func (h *Job) UpdateApplicationStatus(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	appID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req jobDTO.UpdateApplicationStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	app, err := h.service.UpdateApplicationStatus(c.Request().Context(), userID, appID, entities.ApplicationStatus(req.Status))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToApplicationResponse(app, ""))
}
