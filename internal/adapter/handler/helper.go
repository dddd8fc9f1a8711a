package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/errors"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/infrastructure/http/middleware"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// handleSuccess writes a standardized success response
func handleSuccess(c echo.Context, logger *zap.Logger, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// handleError centralizes error handling and logging
func handleError(c echo.Context, logger *zap.Logger, err error) error {
	reqID := getRequestID(c)
	err = mapDomainError(err)

	// Try to detect AppError from project errors package
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}
	return c.JSON(http.StatusInternalServerError, body)
}

// mapDomainError lifts domain sentinel errors into AppErrors so the response
// carries the right HTTP status and code
func mapDomainError(err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case stdErrors.Is(err, entities.ErrAttemptNotFound):
		return errors.ErrAttemptNotFound("")
	case stdErrors.Is(err, entities.ErrAttemptSubmitted):
		return errors.ErrAttemptAlreadySubmitted("")
	case stdErrors.Is(err, entities.ErrSessionNotFound):
		return errors.ErrSessionNotFound("")
	case stdErrors.Is(err, entities.ErrSessionClosed):
		return errors.ErrSessionAlreadyClosed("")
	case stdErrors.Is(err, entities.ErrScoreNotFound):
		return errors.ErrNotFound("interview score")
	case stdErrors.Is(err, entities.ErrInvalidProctorEvent):
		return errors.ErrInvalidArgument("unknown proctor event")
	case stdErrors.Is(err, entities.ErrTranscriberUnavailable):
		return errors.ErrAIServiceUnavailable("transcription")
	case stdErrors.Is(err, entities.ErrJobNotFound):
		return errors.ErrJobNotFound("")
	case stdErrors.Is(err, entities.ErrJobClosed):
		return errors.ErrJobClosed("")
	case stdErrors.Is(err, entities.ErrApplicationNotFound):
		return errors.ErrApplicationNotFound("")
	case stdErrors.Is(err, entities.ErrApplicationDuplicate):
		return errors.ErrApplicationDuplicate("")
	case stdErrors.Is(err, entities.ErrForbidden):
		return errors.ErrForbidden("not allowed")
	case stdErrors.Is(err, entities.ErrInvalidRequest):
		return errors.ErrInvalidPayload()
	}
	return err
}

// bindAndValidate binds the request payload and runs struct validation
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(v); err != nil {
		return errors.AppError{
			Raw:      err,
			HTTPCode: http.StatusBadRequest,
			Code:     errors.ErrorCode_INVALID_PAYLOAD,
			Message:  "Validation failed",
		}
	}
	return nil
}

// authedUserID pulls the authenticated user id set by the auth middleware
func authedUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return id, nil
}

// pathUUID parses a uuid path parameter
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}
