package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned when an admin login attempt fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports required submission fields that were missing or empty.
// It is produced before any store write happens.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// StoreError carries the datastore's native error code, message and detail so the
// API can pass them through verbatim for diagnostics.
type StoreError struct {
	Code    string
	Message string
	Detail  string
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store error %s: %s", e.Code, e.Message)
	}
	return "store error: " + e.Message
}
