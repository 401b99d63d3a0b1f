package draft

import "errors"

var (
	ErrValidation = errors.New("draft validation failed")
	ErrNotFound   = errors.New("draft reference not found")
	ErrConflict   = errors.New("draft conflict")
)
