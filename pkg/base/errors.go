package base

import (
	"fmt"
	"strings"
)

// ConfigurationError reports required environment variables that are unset.
// It is fatal to the call that triggered session acquisition; no connection
// attempt is made when it is returned.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}

// AuthenticationError means the server rejected our login.
type AuthenticationError struct {
	Server   string
	Response string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication with %s failed: %s", e.Server, e.Response)
}

// ConnectionError wraps a transport-level failure during session acquisition.
type ConnectionError struct {
	Server string
	Cause  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Server, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ProtocolError carries the server's literal response for a command that
// returned non-OK. Operations convert it into an error envelope instead of
// letting it abort the call.
type ProtocolError struct {
	Command  string
	Response string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Command, e.Response)
}

// ValidationError reports malformed caller input, detected before any
// protocol traffic is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AttachmentError means a referenced attachment file could not be read. The
// whole send fails; there is no partial submission.
type AttachmentError struct {
	Path  string
	Cause error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("reading attachment %s: %v", e.Path, e.Cause)
}

func (e *AttachmentError) Unwrap() error { return e.Cause }
