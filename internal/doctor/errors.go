package doctor

import "fmt"

// Every failure a check can hit is converted, at the point it occurs, into
// one of the causes below. Each cause renders as exactly one error item in
// the report, so the set of messages a user can see stays fixed.

// osCheckError reports that probing the host OS version failed
type osCheckError struct {
	err error
}

func (e *osCheckError) Error() string { return "Failed to check installed macOS version" }
func (e *osCheckError) Unwrap() error { return e.err }

// invalidUTF8Error reports command output that could not be decoded
type invalidUTF8Error struct {
	err error
}

func (e *invalidUTF8Error) Error() string { return "Output contained invalid UTF-8: " + e.err.Error() }
func (e *invalidUTF8Error) Unwrap() error { return e.err }

// envVarError reports a required environment variable that is not set. The
// message template is fixed regardless of which variable was missing.
type envVarError struct {
	name string
}

func (e *envVarError) Error() string { return "Environment variable not set." }

// searchError reports a tool lookup failure. It renders the underlying error
// unchanged.
type searchError struct {
	err error
}

func (e *searchError) Error() string { return e.err.Error() }
func (e *searchError) Unwrap() error { return e.err }

// rustVersionError reports a toolchain release that falls inside the window
// where iOS linking is broken. The message names the detected release and
// spells out both ways off the broken range.
type rustVersionError struct {
	version RustVersion
}

func (e *rustVersionError) Error() string {
	return fmt.Sprintf("iOS linking is broken on Rust versions later than 1.45.2 (d3fb005a3 2020-07-31) and earlier than 1.49.0-nightly (ffa2e7ae8 2020-10-24), but you're on %s!\n"+
		"    - Until this is resolved by Rust 1.49.0, please do one of the following:\n"+
		"        A) downgrade to 1.45.2:\n"+
		"           `rustup install stable-2020-08-03 && rustup default stable-2020-08-03`\n"+
		"        B) update to a recent nightly:\n"+
		"           `rustup update nightly && rustup default nightly`", e.version)
}

// commitMsgError reports a commit-msg hook that is unreadable or stale
type commitMsgError struct {
	err error
}

func (e *commitMsgError) Error() string { return "Commit message error" }
func (e *commitMsgError) Unwrap() error { return e.err }
