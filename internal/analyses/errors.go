package analyses

import "errors"

var (
	// ErrEmptyInput rejects blank research text before any transition.
	ErrEmptyInput = errors.New("research text is required")
	// ErrMissingCredential routes the caller to credential setup.
	ErrMissingCredential = errors.New("no API credential configured")
	// ErrInvalidCredential indicates the held credential failed its probe.
	ErrInvalidCredential = errors.New("API credential failed validation")
	// ErrEmptyCredential rejects a blank secret on a test probe.
	ErrEmptyCredential = errors.New("credential is required")
	// ErrBusy rejects a submission while a probe or analysis is in flight.
	ErrBusy = errors.New("another request is in flight")
)

const (
	CodeValidation          = "validation_error"
	CodeEmptyInput          = "empty_input"
	CodeCredentialRequired  = "credential_required"
	CodeCredentialInvalid   = "credential_invalid"
	CodeBusy                = "analysis_in_flight"
	CodeExternalService     = "external_service_error"
	CodeMalformedResponse   = "malformed_response"
	CodeUnparsableResult    = "unparsable_result"
	CodeIncompleteResult    = "incomplete_result"
	CodeInvalidResult       = "invalid_result"
	CodeInternal            = "internal_error"
	CodeUnsupportedFileType = "unsupported_file_type"
	CodeEmptyExtraction     = "empty_extraction"
)
