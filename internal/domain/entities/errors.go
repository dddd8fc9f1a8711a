package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRole       = errors.New("invalid role")

	// Attempt errors
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrAttemptSubmitted = errors.New("attempt already submitted")
	ErrInvalidCategory  = errors.New("invalid question category")

	// Interview session errors
	ErrSessionNotFound        = errors.New("interview session not found")
	ErrSessionClosed          = errors.New("interview session already closed")
	ErrScoreNotFound          = errors.New("interview score not found")
	ErrInvalidProctorEvent    = errors.New("invalid proctor event")
	ErrTranscriberUnavailable = errors.New("transcription service unavailable")

	// Job errors
	ErrJobNotFound          = errors.New("job posting not found")
	ErrJobClosed            = errors.New("job posting closed")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationDuplicate = errors.New("candidate already applied")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
