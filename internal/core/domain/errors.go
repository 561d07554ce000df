package domain

import "errors"

var (
	// ErrUnauthorized means the request carried no key or an unknown key.
	ErrUnauthorized = errors.New("unknown or missing API key")
	// ErrForbidden means the key is valid but scoped to another service
	// or to an insufficient level.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrEmptyCollection means a random pick was attempted on a
	// collection with zero elements.
	ErrEmptyCollection = errors.New("collection is empty")

	ErrUserNotFound     = errors.New("user not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidDateRange means a date filter was not in YYYY-MM-DD form.
	ErrInvalidDateRange = errors.New("invalid date filter, use YYYY-MM-DD")
)
