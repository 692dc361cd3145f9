// Package schemaerrors provides structured error types for schematools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ProtocolError: no content provider registered for a URI scheme
//   - FetchError: a content provider failed to deliver a primary document
//   - PathError: malformed input to the path accessor or tree walker
//   - ResourceLimitError: resource exhaustion (depth, size, count limits)
//
// # Usage with errors.Is
//
//	result, err := loader.Load(ctx, "root.schema.json", base, opts...)
//	if err != nil {
//	    var protoErr *schemaerrors.ProtocolError
//	    if errors.As(err, &protoErr) {
//	        // Register a provider for protoErr.Scheme and retry
//	    }
//	}
package schemaerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrProtocolNotImplemented indicates no provider is registered for a scheme.
	ErrProtocolNotImplemented = errors.New("protocol not implemented")

	// ErrFetch indicates a content provider failed to deliver a document.
	ErrFetch = errors.New("fetch error")

	// ErrPath indicates malformed input to the path accessor or walker.
	ErrPath = errors.New("path error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ProtocolError represents a URI scheme with no registered content provider.
//
// The error message is the stable token
// JSONSCHEMA_LOADER_PROTOCOL_<SCHEME>_NOT_IMPLEMENTED with the scheme
// uppercased, so callers that match on message text keep working across
// provider implementations.
type ProtocolError struct {
	// Scheme is the URI scheme that has no provider (e.g. "ftp")
	Scheme string
}

// Error returns the stable protocol-not-implemented token.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("JSONSCHEMA_LOADER_PROTOCOL_%s_NOT_IMPLEMENTED", strings.ToUpper(e.Scheme))
}

// Is reports whether target matches this error type.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocolNotImplemented
}

// FetchError represents a failure to load a primary schema document.
// The provider's error is wrapped verbatim and reachable via Unwrap.
type FetchError struct {
	// Address is the absolute address that failed to load
	Address string
	// Scheme is the URI scheme the provider was selected for
	Scheme string
	// Cause is the provider's error
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch error"
	if e.Address != "" {
		msg += ": " + e.Address
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// PathError represents malformed input to the path accessor or tree walker.
// This includes non-container roots, invalid path syntax, and nil visit
// functions. These failures are synchronous and occur before any I/O.
type PathError struct {
	// Path is the offending path expression, if any
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "path error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrPath
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when composition exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "walk_depth", "loaded_documents", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
