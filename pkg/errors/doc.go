// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeUpstreamUnavailable,
//	    "failed to fetch menu page",
//	    httpErr,
//	)
package errors
