package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/errors"
	mocktestDTO "github.com/talentlens/talentlens/internal/adapter/dto/mocktest"
	"github.com/talentlens/talentlens/internal/adapter/presenter"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/usecase/mocktest"
)

// MockTest handles mock aptitude test attempt endpoints
type MockTest struct {
	service mocktest.Service
	logger  *zap.Logger
}

// NewMockTest creates a new mock-test handler
func NewMockTest(service mocktest.Service, logger *zap.Logger) *MockTest {
	return &MockTest{
		service: service,
		logger:  logger,
	}
}

// Start returns the caller's in-progress attempt, creating one if needed.
// POST /v1/mock-tests/attempts
func (h *MockTest) Start(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	attempt, resumed, err := h.service.StartAttempt(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, presenter.ToAttemptResponse(attempt, resumed))
}

// Get returns one of the caller's attempts.
// GET /v1/mock-tests/attempts/:id
func (h *MockTest) Get(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	attemptID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	attempt, err := h.service.GetAttempt(c.Request().Context(), attemptID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if attempt.UserID != userID {
		return handleError(c, h.logger, errors.ErrForbidden("attempt belongs to another user"))
	}

	return handleSuccess(c, h.logger, presenter.ToAttemptResponse(attempt, false))
}

// List returns the caller's attempt history.
// GET /v1/mock-tests/attempts
func (h *MockTest) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	attempts, err := h.service.ListAttempts(c.Request().Context(), userID, 50)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	out := make([]*mocktestDTO.AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, presenter.ToAttemptSummaryResponse(a))
	}
	return handleSuccess(c, h.logger, out)
}

// Submit scores the answer sheet and closes the attempt.
// POST /v1/mock-tests/attempts/:id/submit
func (h *MockTest) Submit(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	attemptID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req mocktestDTO.SubmitAttemptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	attempt, err := h.service.GetAttempt(c.Request().Context(), attemptID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if attempt.UserID != userID {
		return handleError(c, h.logger, errors.ErrForbidden("attempt belongs to another user"))
	}

	answers := make([]mocktest.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		qid, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return handleError(c, h.logger, errors.ErrInvalidArgument("invalid question id"))
		}
		answers = append(answers, mocktest.Answer{
			QuestionID:    qid,
			SelectedIndex: a.SelectedIndex,
		})
	}

	var violations *entities.AttemptViolations
	if req.Violations != nil {
		violations = &entities.AttemptViolations{
			Attention: req.Violations.Attention,
			TabSwitch: req.Violations.TabSwitch,
		}
	}

	submitted, err := h.service.SubmitAttempt(c.Request().Context(), attemptID, answers, violations)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, presenter.ToAttemptResponse(submitted, false))
}

// RecordViolations merges proctoring counter increments into the attempt.
// POST /v1/mock-tests/attempts/:id/violations
func (h *MockTest) RecordViolations(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	attemptID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req mocktestDTO.ViolationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	attempt, err := h.service.GetAttempt(c.Request().Context(), attemptID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if attempt.UserID != userID {
		return handleError(c, h.logger, errors.ErrForbidden("attempt belongs to another user"))
	}

	if err := h.service.RecordViolations(c.Request().Context(), attemptID, req.Attention, req.TabSwitch); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, map[string]interface{}{
		"attempt_id": attemptID.String(),
	})
}
