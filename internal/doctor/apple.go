package doctor

import (
	"fmt"
	"regexp"

	"github.com/crosskit/crosskit/internal/execx"
	"github.com/crosskit/crosskit/internal/report"
)

// AppleSection checks the Xcode toolchain. The probes only exist on macOS,
// so the doctor includes this section on darwin hosts.
func AppleSection() *report.Section {
	return report.NewSection("Apple developer tools").
		Add(report.FromResult(macOSStatus())).
		Add(report.FromResult(xcodeStatus())).
		Add(developerDirItem()).
		Add(report.FromResult(iosDeployStatus()))
}

func macOSStatus() (string, error) {
	v, err := command("sw_vers -productVersion")
	if err != nil {
		return "", err
	}
	return "macOS v" + v, nil
}

var xcodeVersionRe = regexp.MustCompile(`Xcode (\S+)`)

func xcodeStatus() (string, error) {
	v, err := search("xcodebuild -version", xcodeVersionRe)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Xcode v%s installed", v), nil
}

// developerDirItem warns when xcode-select has no developer directory
// configured. A missing selection is a caveat rather than a failure.
func developerDirItem() report.Item {
	out, err := execx.Run("xcode-select -p")
	if err != nil || out == "" {
		return report.Warning("Command Line Tools path not set")
	}
	return report.Victory("Developer directory is " + out)
}

var iosDeployVersionRe = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

func iosDeployStatus() (string, error) {
	v, err := search("ios-deploy --version", iosDeployVersionRe)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ios-deploy %s found", v), nil
}
