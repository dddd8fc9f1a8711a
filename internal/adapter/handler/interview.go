package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/errors"
	interviewDTO "github.com/talentlens/talentlens/internal/adapter/dto/interview"
	"github.com/talentlens/talentlens/internal/adapter/presenter"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/usecase/interview"
)

// Interview handles proctored interview session endpoints
type Interview struct {
	service interview.Service
	logger  *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(service interview.Service, logger *zap.Logger) *Interview {
	return &Interview{
		service: service,
		logger:  logger,
	}
}

// ownedSession loads a session and checks the caller owns it
func (h *Interview) ownedSession(c echo.Context) (*entities.InterviewSession, error) {
	userID, err := authedUserID(c)
	if err != nil {
		return nil, err
	}
	sessionID, err := pathUUID(c, "id")
	if err != nil {
		return nil, err
	}
	session, err := h.service.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, errors.ErrForbidden("session belongs to another user")
	}
	return session, nil
}

// Create opens a proctored session for one interview question.
// POST /v1/interviews
func (h *Interview) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewDTO.CreateSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	session, err := h.service.CreateSession(c.Request().Context(), userID, req.Question)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToSessionResponse(session))
}

// Get returns one of the caller's sessions.
// GET /v1/interviews/:id
func (h *Interview) Get(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToSessionResponse(session))
}

// List returns the caller's session history.
// GET /v1/interviews
func (h *Interview) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	sessions, err := h.service.ListSessions(c.Request().Context(), userID, 50)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	out := make([]*interviewDTO.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, presenter.ToSessionResponse(s))
	}
	return handleSuccess(c, h.logger, out)
}

// Frames feeds a batch of face landmark frames into the eye-contact tracker.
// POST /v1/interviews/:id/frames
func (h *Interview) Frames(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewDTO.FramesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	stats, err := h.service.RegisterFrames(c.Request().Context(), session.ID, presenter.ToLandmarkFrames(req.Frames))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, stats)
}

// ResetEyeContact clears the session's eye-contact aggregates.
// POST /v1/interviews/:id/eye-contact/reset
func (h *Interview) ResetEyeContact(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if err := h.service.ResetEyeContact(c.Request().Context(), session.ID); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, nil)
}

// PreviewCheck classifies a camera-preview detection result.
// POST /v1/interviews/:id/preview-check
func (h *Interview) PreviewCheck(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewDTO.FaceCheckRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	result, err := h.service.PreviewCheck(c.Request().Context(), session.ID, req.FaceCount)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, result)
}

// FaceCheck records an in-interview face-presence check result.
// POST /v1/interviews/:id/face-check
func (h *Interview) FaceCheck(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewDTO.FaceCheckRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	state, err := h.service.FaceCheck(c.Request().Context(), session.ID, req.FaceCount)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, state)
}

// TabEvent records a window blur or visibility change.
// POST /v1/interviews/:id/tab-event
func (h *Interview) TabEvent(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewDTO.TabEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	state, err := h.service.TabEvent(c.Request().Context(), session.ID, req.Event)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, state)
}

// Submit scores the answer and closes the session.
// POST /v1/interviews/:id/submit
func (h *Interview) Submit(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req interviewDTO.SubmitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}
	if req.Transcript == "" && req.RecordingURL == "" {
		return handleError(c, h.logger, errors.ErrMissingRecordingURL())
	}

	score, err := h.service.Submit(c.Request().Context(), session.ID, interview.SubmitInput{
		Transcript:   req.Transcript,
		RecordingURL: req.RecordingURL,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToScoreResponse(score))
}

// GetScore returns the stored score for a session.
// GET /v1/interviews/:id/score
func (h *Interview) GetScore(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	score, err := h.service.GetScore(c.Request().Context(), session.ID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToScoreResponse(score))
}

// Stop tears down the session's runtime trackers.
// POST /v1/interviews/:id/stop
func (h *Interview) Stop(c echo.Context) error {
	session, err := h.ownedSession(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if err := h.service.StopSession(c.Request().Context(), session.ID); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, nil)
}
