package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrSessionNotFound    = errors.New("SESSION_NOT_FOUND")
	ErrSessionExpired     = errors.New("SESSION_EXPIRED")
	ErrFormNotFound       = errors.New("FORM_NOT_FOUND")
	ErrFormInvalid        = errors.New("FORM_INVALID")
	ErrFormSubmitting     = errors.New("FORM_SUBMITTING")
	ErrFieldLocked        = errors.New("FIELD_LOCKED")
	ErrUnknownField       = errors.New("UNKNOWN_FIELD")
	ErrUnknownOption      = errors.New("UNKNOWN_OPTION")
	ErrSpecificationReq   = errors.New("SPECIFICATION_REQUIRED")
	ErrDraftNotFound      = errors.New("DRAFT_NOT_FOUND")
	ErrMediaTooLarge      = errors.New("MEDIA_TOO_LARGE")
	ErrMediaRejected      = errors.New("MEDIA_REJECTED")
	ErrMediaUnsupported   = errors.New("MEDIA_UNSUPPORTED")
)
