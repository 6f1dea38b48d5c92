package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrInvalidEndpoint      = errors.New("content endpoint must be a https://script.google.com/ URL")
	ErrEndpointNotSet       = errors.New("content endpoint is not configured")
	ErrUpstream             = errors.New("content endpoint request failed")
	ErrEmptyQuestion        = errors.New("question must not be empty")
	ErrEmptyAnswer          = errors.New("answer must not be empty")
	ErrUstadzOnly           = errors.New("only an ustadz may answer consultations")
	ErrAssistantUnavailable = errors.New("assistant is not configured")
	ErrAssistantFailed      = errors.New("assistant request failed")
)
