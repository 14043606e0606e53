package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidUsername = errors.New("missing or invalid username")
	ErrUserNotFound    = errors.New("user not found")
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// UpstreamError reports a non-success, non-404 answer from the heatmap API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// NetworkError wraps transport failures and undecodable response bodies.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
