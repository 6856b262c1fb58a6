package gmnx

import "errors"

// ErrMissingCredential means no API key was configured.
var ErrMissingCredential = errors.New(EnvAPIKey + " environment variable not set")

// ClientInitError is returned when the model client cannot be constructed.
type ClientInitError struct {
	Err error
}

func (e *ClientInitError) Error() string {
	return "initializing client: " + e.Err.Error()
}

func (e *ClientInitError) Unwrap() error {
	return e.Err
}

// RemoteCallError wraps any failure of the generation request itself:
// network, authentication, quota or server errors are all treated alike.
type RemoteCallError struct {
	Err error
}

func (e *RemoteCallError) Error() string {
	return "calling model: " + e.Err.Error()
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// ExitCode maps the outcome of Client.Ask to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
