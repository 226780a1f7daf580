package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidLayout = errors.New("invalid seat layout")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidInput  = errors.New("invalid input")
)
