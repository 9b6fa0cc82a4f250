package doctor

import (
	"errors"
	"os"
	"regexp"

	"github.com/crosskit/crosskit/internal/execx"
)

// command runs a command line and maps low-level failures onto the report's
// fixed causes: undecodable output keeps its detail, anything else becomes
// the OS probe failure.
func command(cmdline string) (string, error) {
	out, err := execx.Run(cmdline)
	if err != nil {
		var utf8Err *execx.InvalidUTF8Error
		if errors.As(err, &utf8Err) {
			return "", &invalidUTF8Error{err: err}
		}
		return "", &osCheckError{err: err}
	}
	return out, nil
}

// search probes for an installed tool, passing lookup failures through
// transparently.
func search(cmdline string, re *regexp.Regexp) (string, error) {
	out, err := execx.RunAndSearch(cmdline, re)
	if err != nil {
		return "", &searchError{err: err}
	}
	return out, nil
}

// envVar reads a required environment variable. Empty counts as unset.
func envVar(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", &envVarError{name: name}
	}
	return value, nil
}
