package votesmart

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the Vote Smart client.
var (
	// ErrMissingCredential indicates the client has no API key configured.
	ErrMissingCredential = errors.New("missing Project Vote Smart API key")

	// ErrTransport indicates the HTTP exchange itself failed.
	ErrTransport = errors.New("Vote Smart API request failed")

	// ErrInvalidResponse indicates the API returned an unexpected response format.
	ErrInvalidResponse = errors.New("Invalid Response")

	// ErrService indicates the API answered with an error envelope.
	ErrService = errors.New("Vote Smart API returned an error")

	// ErrUnknownOperation indicates an operation name missing from the operation table.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingParameter indicates a required operation parameter was empty.
	ErrMissingParameter = errors.New("missing required parameter")
)

// ErrorKind classifies errors returned by the client.
type ErrorKind int

const (
	// KindUnknown is any error not produced by this package
	KindUnknown ErrorKind = iota
	// KindMissingCredential means no API key was set
	KindMissingCredential
	// KindTransportFailure means the HTTP exchange failed
	KindTransportFailure
	// KindServiceError means the service reported an error
	KindServiceError
	// KindDecodeFailure means the response could not be mapped
	KindDecodeFailure
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "MissingCredential"
	case KindTransportFailure:
		return "TransportFailure"
	case KindServiceError:
		return "ServiceError"
	case KindDecodeFailure:
		return "DecodeFailure"
	default:
		return "Unknown"
	}
}

// KindOf classifies err into one of the client error kinds.
// Unknown operations and missing parameters are client bugs and count as
// decode failures, like any other mismatch between caller and schema.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.Is(err, ErrService):
		return KindServiceError
	case errors.Is(err, ErrTransport):
		return KindTransportFailure
	case errors.Is(err, ErrInvalidResponse),
		errors.Is(err, ErrUnknownOperation),
		errors.Is(err, ErrMissingParameter):
		return KindDecodeFailure
	default:
		return KindUnknown
	}
}

// TransportError represents a failed HTTP exchange or a non-2xx response
type TransportError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		msg := strings.TrimSpace(e.Body)
		if msg == "" {
			msg = "no response body"
		}
		return fmt.Sprintf("votesmart %s: status %d: %s", e.Operation, e.StatusCode, msg)
	}
	return fmt.Sprintf("votesmart %s: request failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// IsUnauthorized checks if the status indicates an authentication failure
func (e *TransportError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// ServiceError is an error reported by the service inside the response envelope
type ServiceError struct {
	Operation string
	Message   string
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	return fmt.Sprintf("votesmart %s: %s", e.Operation, e.Message)
}

// Is reports whether target is ErrService
func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// DecodeError indicates a response that did not match the expected schema.
// Key is the envelope key that was missing or malformed, when known.
type DecodeError struct {
	Operation string
	Key       string
	Reason    string
	Err       error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "votesmart %s: %s", e.Operation, ErrInvalidResponse.Error())
	if e.Key != "" {
		fmt.Fprintf(&sb, " at %q", e.Key)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidResponse
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidResponse
}
