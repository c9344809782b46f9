package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Execution queue related errors
var (
	ErrInvalidPriority   = errors.Wrap(BadParameterError, "queue entry priority must be between 1 and 10")
	ErrUnknownQueueEntry = errors.Wrap(NotFoundError, "unknown queue entry")
	ErrInvalidStatus     = errors.Wrap(BadParameterError, "unrecognized queue entry status")
	ErrEntryNotResumable = errors.Wrap(ConflictError, "queue entry is not waiting for approval")
)

// Response time scoring related errors
var ErrEmptySampleSet = errors.Wrap(BadParameterError, "cannot compute a percentile over an empty sample set")
