package errors

// ErrorCode identifies an application error condition in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_FORBIDDEN         ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2003

	// Mock test attempts
	ErrorCode_ATTEMPT_NOT_FOUND         ErrorCode = 3000
	ErrorCode_ATTEMPT_ALREADY_SUBMITTED ErrorCode = 3001
	ErrorCode_ATTEMPT_CREATION_FAILED   ErrorCode = 3002

	// Interview sessions
	ErrorCode_SESSION_NOT_FOUND      ErrorCode = 4000
	ErrorCode_SESSION_ALREADY_CLOSED ErrorCode = 4001
	ErrorCode_SESSION_INVALID_STATE  ErrorCode = 4002

	// AI / analysis
	ErrorCode_AI_TRANSCRIPTION_FAILED  ErrorCode = 5000
	ErrorCode_AI_ANALYSIS_FAILED       ErrorCode = 5001
	ErrorCode_AI_SERVICE_UNAVAILABLE   ErrorCode = 5002
	ErrorCode_MISSING_RECORDING_URL    ErrorCode = 5003
	ErrorCode_PROCESSING_FAILED        ErrorCode = 5004

	// Jobs and applications
	ErrorCode_JOB_NOT_FOUND          ErrorCode = 6000
	ErrorCode_JOB_CLOSED             ErrorCode = 6001
	ErrorCode_APPLICATION_NOT_FOUND  ErrorCode = 6002
	ErrorCode_APPLICATION_DUPLICATE  ErrorCode = 6003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 7000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 7001
	ErrorCode_DB_QUERY_FAILED            ErrorCode = 7002
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                  "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_ATTEMPT_NOT_FOUND:          "ATTEMPT_NOT_FOUND",
	ErrorCode_ATTEMPT_ALREADY_SUBMITTED:  "ATTEMPT_ALREADY_SUBMITTED",
	ErrorCode_ATTEMPT_CREATION_FAILED:    "ATTEMPT_CREATION_FAILED",
	ErrorCode_SESSION_NOT_FOUND:          "SESSION_NOT_FOUND",
	ErrorCode_SESSION_ALREADY_CLOSED:     "SESSION_ALREADY_CLOSED",
	ErrorCode_SESSION_INVALID_STATE:      "SESSION_INVALID_STATE",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_ANALYSIS_FAILED:         "AI_ANALYSIS_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_MISSING_RECORDING_URL:      "MISSING_RECORDING_URL",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
	ErrorCode_JOB_NOT_FOUND:              "JOB_NOT_FOUND",
	ErrorCode_JOB_CLOSED:                 "JOB_CLOSED",
	ErrorCode_APPLICATION_NOT_FOUND:      "APPLICATION_NOT_FOUND",
	ErrorCode_APPLICATION_DUPLICATE:      "APPLICATION_DUPLICATE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
