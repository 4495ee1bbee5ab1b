package services

import "errors"

// ValidationError marks a rejected input. Controllers turn it into a 400
// response with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrNoMatch is returned by certificate verification when no record matches.
// Distinct from validation failures so controllers can answer 404 vs 400.
var ErrNoMatch = errors.New("no matching certificate found")
