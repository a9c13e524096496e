package models

import "errors"

// Error taxonomy shared by services and handlers. Services wrap these with
// context; handlers match with errors.Is to pick a status code.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
)
