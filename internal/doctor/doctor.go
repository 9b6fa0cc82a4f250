// Package doctor assembles the crosskit environment report. Each check
// produces a titled section of outcomes; checks run synchronously, never
// abort each other, and surface broken tools as error items rather than
// failing the run.
package doctor

import (
	"runtime"

	"github.com/crosskit/crosskit/internal/report"
)

// Sections runs every environment check and returns the report sections in
// display order.
func Sections(toolVersion string) []*report.Section {
	sections := []*report.Section{
		ToolSection(toolVersion),
		RustSection(),
		AndroidSection(),
	}
	if runtime.GOOS == "darwin" {
		sections = append(sections, AppleSection())
	}
	return append(sections, DeviceSection(), ProjectSection("."))
}

// HasErrors reports whether any section aggregates to an error
func HasErrors(sections []*report.Section) bool {
	for _, s := range sections {
		if s.Severity() == report.SeverityError {
			return true
		}
	}
	return false
}
