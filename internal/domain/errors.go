package domain

import "errors"

var (
	ErrPolicyNotFound      = errors.New("no document policy for country and person type")
	ErrInvalidPersonType   = errors.New("invalid person type")
	ErrInvalidPolicy       = errors.New("invalid document policy")
	ErrNoDocuments         = errors.New("at least one document is required")
	ErrTooManyDocuments    = errors.New("too many documents in one validation run")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrExtractorNotReady   = errors.New("document extraction is not configured")
	ErrStorageNotReady     = errors.New("object storage is not configured")
)
