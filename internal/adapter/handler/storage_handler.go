package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/errors"
	"github.com/talentlens/talentlens/internal/infrastructure/storage"
	"github.com/talentlens/talentlens/internal/usecase/job"
)

// maxUploadBytes caps multipart uploads (resumes, JDs, recordings)
const maxUploadBytes = 100 << 20 // 100 MiB

// Storage handles artifact upload endpoints
type Storage struct {
	store      *storage.MinIOClient
	jobService job.Service
	logger     *zap.Logger
}

// NewStorage creates a new storage handler
func NewStorage(store *storage.MinIOClient, jobService job.Service, logger *zap.Logger) *Storage {
	return &Storage{
		store:      store,
		jobService: jobService,
		logger:     logger,
	}
}

// upload streams one multipart file field into the bucket under objectKey
func (h *Storage) upload(c echo.Context, field, objectKey string) error {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return errors.ErrInvalidArgument("missing file field: " + field)
	}
	if fileHeader.Size > maxUploadBytes {
		return errors.ErrInvalidArgument("file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.ErrStorageFailed("open upload", err)
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.store.UploadFile(c.Request().Context(), objectKey, src, fileHeader.Size, contentType); err != nil {
		return errors.ErrStorageFailed("upload", err)
	}
	return nil
}

// UploadResume stores a candidate resume and returns its object key for use
// in job applications.
// POST /v1/uploads/resume
func (h *Storage) UploadResume(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handleError(c, h.logger, errors.ErrInvalidArgument("missing file field: file"))
	}
	objectKey := storage.ResumeKey(userID, fileHeader.Filename)

	if err := h.upload(c, "file", objectKey); err != nil {
		return handleError(c, h.logger, err)
	}

	h.logger.Info("storage.resume_uploaded",
		zap.String("user_id", userID.String()),
		zap.String("key", objectKey),
	)
	return handleSuccess(c, h.logger, map[string]string{"resume_key": objectKey})
}

// UploadJD stores a job description file and attaches it to the posting.
// POST /v1/jobs/:id/jd
func (h *Storage) UploadJD(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handleError(c, h.logger, errors.ErrInvalidArgument("missing file field: file"))
	}
	objectKey := storage.JDKey(jobID, fileHeader.Filename)

	if err := h.upload(c, "file", objectKey); err != nil {
		return handleError(c, h.logger, err)
	}
	if err := h.jobService.AttachJD(c.Request().Context(), userID, jobID, objectKey); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, map[string]string{"jd_key": objectKey})
}

// UploadRecording stores an interview answer recording and returns a
// presigned URL suitable for the submit endpoint.
// POST /v1/interviews/:id/recording
func (h *Storage) UploadRecording(c echo.Context) error {
	if _, err := authedUserID(c); err != nil {
		return handleError(c, h.logger, err)
	}
	sessionID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handleError(c, h.logger, errors.ErrInvalidArgument("missing file field: file"))
	}
	objectKey := storage.RecordingKey(sessionID, fileHeader.Filename)

	if err := h.upload(c, "file", objectKey); err != nil {
		return handleError(c, h.logger, err)
	}

	// The transcription provider fetches the recording through this URL.
	url, err := h.store.GetFileURL(c.Request().Context(), objectKey, presignedURLExpiry)
	if err != nil {
		return handleError(c, h.logger, errors.ErrStorageFailed("presign", err))
	}
	return handleSuccess(c, h.logger, map[string]string{
		"recording_key": objectKey,
		"recording_url": url,
	})
}
