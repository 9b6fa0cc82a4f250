// Package execx runs external commands synchronously and hands back their
// standard output as trimmed text. It is the single process boundary of the
// tool: callers pass a plain command line, get text or a typed error, and
// nothing is ever retried.
package execx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trace, when non-nil, receives each command line immediately before it runs.
var Trace io.Writer

// RunError describes a command that could not be started or exited with a
// failure status.
type RunError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *RunError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("`%s` failed: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("`%s` failed: %v", e.Command, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// InvalidUTF8Error indicates that a command produced output that is not valid
// UTF-8.
type InvalidUTF8Error struct {
	Command string
	Offset  int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d in output of `%s`", e.Offset, e.Command)
}

// SearchError describes a tool lookup that failed: either the probe command
// could not be run, or its output did not contain the expected pattern.
type SearchError struct {
	Command string
	Pattern string
	Err     error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to run `%s`: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("Couldn't match %q in the output of `%s`", e.Pattern, e.Command)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Run executes a command line synchronously, waits for it to finish, and
// returns its standard output with trailing whitespace trimmed. The command
// line is split on whitespace; no shell is involved and no quoting is
// understood. A hung command blocks the caller indefinitely.
func Run(cmdline string) (string, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", &RunError{Command: cmdline, Err: errors.New("empty command line")}
	}
	if Trace != nil {
		fmt.Fprintf(Trace, "+ %s\n", cmdline)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &RunError{
			Command: cmdline,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", &InvalidUTF8Error{Command: cmdline, Offset: invalidOffset(out)}
	}
	return strings.TrimRightFunc(string(out), unicode.IsSpace), nil
}

// RunAndSearch runs a command line and extracts the first capture group of re
// from its output (or the whole match if re has no groups). It is the probe
// used to answer "is this tool installed, and which version?".
func RunAndSearch(cmdline string, re *regexp.Regexp) (string, error) {
	out, err := Run(cmdline)
	if err != nil {
		return "", &SearchError{Command: cmdline, Err: err}
	}
	m := re.FindStringSubmatch(out)
	if m == nil {
		return "", &SearchError{Command: cmdline, Pattern: re.String()}
	}
	if len(m) > 1 {
		return m[1], nil
	}
	return m[0], nil
}

// invalidOffset returns the byte index of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
