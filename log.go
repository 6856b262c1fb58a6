package gmnx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Transcript roles.
const (
	RoleUser   = "user"
	RoleBot    = "assistant"
	RoleSystem = "system"
	RoleError  = "error"
)

// Log appends a role-prefixed entry to the client's transcript.
func (c *Client) Log(role string, message string) {
	fmt.Fprintf(c.transcript, "%s) %s\n", strings.ToUpper(role), message)
}

// LogErr records an error in the transcript.
func (c *Client) LogErr(err error) {
	c.Log(RoleError, err.Error())
}

// Println writes a plain line to the output stream.
func (c *Client) Println(a ...any) {
	fmt.Fprintln(c.output, a...)
}

// Thinking prints the progress line shown while the request is in flight.
func (c *Client) Thinking() {
	color.New(color.FgCyan).Fprintln(c.output, thinkingIndicator)
}

// ClearThinking moves the cursor up one line and clears it, removing the
// progress line printed by Thinking.
func (c *Client) ClearThinking() {
	fmt.Fprint(c.output, clearLine)
}

// Failure prints a diagnostic in red. Colour is dropped automatically when
// stdout is not a terminal.
func (c *Client) Failure(format string, a ...any) {
	color.New(color.FgRed).Fprintf(c.output, format+"\n", a...)
}

// OpenTranscript opens path for appending. An empty path discards the
// transcript.
func OpenTranscript(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
