package types

import "errors"

// Projection errors. Detail is attached with errors.Join, so callers match with errors.Is.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrIndeterminate    = errors.New("indeterminate result")
	ErrTierNotFound     = errors.New("tier not found")
)
