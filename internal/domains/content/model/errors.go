package model

import "errors"

// Not Found
var (
	ErrSectionNotFound   = errors.New("section not found")
	ErrSpotlightNotFound = errors.New("spotlight not found")
	ErrGridNotFound      = errors.New("grid not found")
	ErrProductNotFound   = errors.New("product not found")
)

// Validation
var (
	ErrValidation         = errors.New("invalid input")
	ErrUnknownSectionType = errors.New("unknown section type")
)
