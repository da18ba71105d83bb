package ingesterr

import (
	"errors"
	"fmt"
)

// SourceNotFoundError is returned when the source file does not exist. It is the only failure that is detected before
// any remote call is made.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file %q not found: %v", e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError indicates the source file could not be read as a tab-separated table.
type ParseError struct {
	Path string
	// Line is 1-based, zero when the failure is not tied to a line.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %q at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type AuthenticationOrConnectivityError struct {
	ProjectID string
	Err       error
}

func (e *AuthenticationOrConnectivityError) Error() string {
	return fmt.Sprintf("failed to connect to warehouse project %q: %v", e.ProjectID, e.Err)
}

func (e *AuthenticationOrConnectivityError) Unwrap() error {
	return e.Err
}

// RemoteJobFailureError wraps a load job that was rejected on submission or finished in a failed state.
type RemoteJobFailureError struct {
	JobID string
	Table string
	Err   error
}

func (e *RemoteJobFailureError) Error() string {
	if e.JobID == "" {
		return fmt.Sprintf("load into %s failed: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("load job %s into %s failed: %v", e.JobID, e.Table, e.Err)
}

func (e *RemoteJobFailureError) Unwrap() error {
	return e.Err
}

// StagingError is returned when rows could not be prepared for a load on the local machine, no job was submitted.
type StagingError struct {
	Table string
	Err   error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("failed to stage rows for %s: %v", e.Table, e.Err)
}

func (e *StagingError) Unwrap() error {
	return e.Err
}

func IsSourceNotFound(err error) bool {
	var target *SourceNotFoundError
	return errors.As(err, &target)
}

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

func IsAuthenticationOrConnectivity(err error) bool {
	var target *AuthenticationOrConnectivityError
	return errors.As(err, &target)
}

func IsRemoteJobFailure(err error) bool {
	var target *RemoteJobFailureError
	return errors.As(err, &target)
}

func IsStaging(err error) bool {
	var target *StagingError
	return errors.As(err, &target)
}
