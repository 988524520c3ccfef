package errs

import (
	"errors"
)

var (
	ErrValidation      = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrForbidden       = errors.New("forbidden")
	ErrNotAvailable    = errors.New("no copies available")
	ErrAlreadyBorrowed = errors.New("book already borrowed")
)
