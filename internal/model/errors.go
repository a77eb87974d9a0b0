// Package model provides core data types for setup sheets.
package model

import "errors"

// Error types for setup sheet operations
var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("id constraint violation")
	ErrMalformedToolData   = errors.New("malformed tool data")
	ErrMalformedRecord     = errors.New("malformed record")
)
