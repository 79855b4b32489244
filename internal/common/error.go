// Package common defines sentinel errors shared by the library scheduler and
// the submission store. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Scheduler errors.
	ErrUnknownResource  = errors.New("unknown resource")
	ErrEmptyQueue       = errors.New("no pending requests")
	ErrInvalidMode      = errors.New("invalid processing mode")
	ErrInvalidRequester = errors.New("invalid requester")

	// Submission store errors.
	ErrSourceNotFound      = errors.New("source file not found")
	ErrInvalidType         = errors.New("invalid file type")
	ErrTooLarge            = errors.New("file too large")
	ErrDuplicateSubmission = errors.New("duplicate submission")

	// Durable state read/write errors (either component).
	ErrPersistence = errors.New("persistence failure")

	// Lookup errors.
	ErrorNotFound = errors.New("not found")
)
