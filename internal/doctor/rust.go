package doctor

import (
	"fmt"
	"regexp"

	"github.com/crosskit/crosskit/internal/execx"
	"github.com/crosskit/crosskit/internal/report"
	"github.com/hashicorp/go-version"
)

// RustVersion identifies an installed rustc release the way rustc reports
// it: version triple, release channel, and the commit hash and date of the
// build.
type RustVersion struct {
	Triple  *version.Version
	Channel string
	Hash    string
	Date    string
}

var rustcVersionRe = regexp.MustCompile(`rustc (\d+\.\d+\.\d+)(?:-(nightly|beta|dev))?(?: \(([0-9a-f]+) (\d{4}-\d{2}-\d{2})\))?`)

// ParseRustVersion extracts the toolchain release from `rustc --version`
// output. Distro builds without a commit hash parse too.
func ParseRustVersion(out string) (RustVersion, error) {
	m := rustcVersionRe.FindStringSubmatch(out)
	if m == nil {
		return RustVersion{}, fmt.Errorf("couldn't parse a rustc version from %q", out)
	}
	triple, err := version.NewVersion(m[1])
	if err != nil {
		return RustVersion{}, fmt.Errorf("couldn't parse a rustc version from %q: %w", out, err)
	}
	return RustVersion{Triple: triple, Channel: m[2], Hash: m[3], Date: m[4]}, nil
}

func (v RustVersion) String() string {
	s := v.Triple.String()
	if v.Channel != "" {
		s += "-" + v.Channel
	}
	if v.Hash != "" {
		s += fmt.Sprintf(" (%s %s)", v.Hash, v.Date)
	}
	return s
}

var (
	lastWorkingRust = version.Must(version.NewVersion("1.45.2"))
	firstFixedRust  = version.Must(version.NewVersion("1.49.0"))
)

// brokenForIOS reports whether the release falls inside the window where the
// iOS linker output is unusable: later than 1.45.2 and earlier than 1.49.0.
// Only the triple is compared, so a 1.49.0 nightly already counts as fixed.
func (v RustVersion) brokenForIOS() bool {
	return v.Triple.GreaterThan(lastWorkingRust) && v.Triple.LessThan(firstFixedRust)
}

// RustSection checks the installed Rust toolchain
func RustSection() *report.Section {
	return report.NewSection("Rust toolchain").
		Add(report.FromResult(rustcStatus())).
		Add(report.FromResult(cargoStatus())).
		Add(rustupItem())
}

func rustcStatus() (string, error) {
	out, err := execx.Run("rustc --version")
	if err != nil {
		return "", &searchError{err: err}
	}
	v, err := ParseRustVersion(out)
	if err != nil {
		return "", &searchError{err: err}
	}
	if v.brokenForIOS() {
		return "", &rustVersionError{version: v}
	}
	return fmt.Sprintf("rustc %s found", v), nil
}

var cargoVersionRe = regexp.MustCompile(`cargo (\S+)`)

func cargoStatus() (string, error) {
	v, err := search("cargo --version", cargoVersionRe)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("cargo %s found", v), nil
}

var rustupVersionRe = regexp.MustCompile(`rustup (\S+)`)

// rustupItem treats a missing rustup as a caveat rather than a failure.
// Toolchains installed by other means still work.
func rustupItem() report.Item {
	v, err := search("rustup --version", rustupVersionRe)
	if err != nil {
		return report.Warning("rustup not found; install it from https://rustup.rs to manage toolchains")
	}
	return report.Victory(fmt.Sprintf("rustup %s found", v))
}
