package code

// HTTP statuses used by the code→status map.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusPayloadTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

// General error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: malformed request parameters.
	ErrBind
	// ErrValidation - 400: form validation failed.
	ErrValidation
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
)

// Authentication error codes (101xxx).
const (
	// ErrLoginFailed - 401: bad credentials, deliberately generic.
	ErrLoginFailed int = iota + 101000
	// ErrSessionInvalid - 401: missing or expired admin session.
	ErrSessionInvalid
)

// Upload error codes (103xxx).
const (
	// ErrUploadMissing - 400: no file in the submission.
	ErrUploadMissing int = iota + 103000
	// ErrUploadRejected - 400: disallowed file type.
	ErrUploadRejected
	// ErrUploadTooLarge - 413: payload exceeds the configured cap.
	ErrUploadTooLarge
	// ErrUploadWrite - 500: storing the file failed.
	ErrUploadWrite
)

// Settings error codes (104xxx).
const (
	// ErrSettingsUpdate - 500: settings upsert failed.
	ErrSettingsUpdate int = iota + 104000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
