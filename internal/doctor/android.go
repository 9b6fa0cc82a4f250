package doctor

import (
	"fmt"
	"os"
	"regexp"

	"github.com/crosskit/crosskit/internal/report"
)

// AndroidSection checks the Android SDK and NDK installation
func AndroidSection() *report.Section {
	return report.NewSection("Android developer tools").
		Add(envDirItem("ANDROID_HOME")).
		Add(envDirItem("NDK_HOME")).
		Add(report.FromResult(adbStatus()))
}

// envDirItem checks an environment variable that should point at an existing
// directory. A set variable whose directory is gone is a caveat, not a
// failure.
func envDirItem(name string) report.Item {
	path, err := envVar(name)
	if err != nil {
		return report.FromResult("", err)
	}
	if info, statErr := os.Stat(path); statErr != nil || !info.IsDir() {
		return report.Warning(fmt.Sprintf("$%s is set to %s, but that directory is missing", name, path))
	}
	return report.Victory(fmt.Sprintf("$%s is set to %s", name, path))
}

var adbVersionRe = regexp.MustCompile(`Android Debug Bridge version (\S+)`)

func adbStatus() (string, error) {
	v, err := search("adb version", adbVersionRe)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("adb %s found", v), nil
}
