package doctor

import (
	"runtime"

	"github.com/crosskit/crosskit/internal/devices"
	"github.com/crosskit/crosskit/internal/report"
)

// DeviceSection lists the devices attached to the host. iOS enumeration only
// runs on darwin hosts.
func DeviceSection() *report.Section {
	s := report.NewSection("Connected devices")
	s.Add(deviceItems(devices.ListAndroid, "Android")...)
	if runtime.GOOS == "darwin" {
		s.Add(deviceItems(devices.ListIOS, "iOS")...)
	}
	return s
}

// deviceItems converts one enumerator's outcome into report items: one line
// per device, a warning when none are attached, a failure when the
// enumerator itself broke. Devices in states that block installs show up as
// warnings.
func deviceItems(list func() ([]devices.Device, error), platform string) []report.Item {
	found, err := list()
	if err != nil {
		return []report.Item{report.Failure(err.Error())}
	}
	if len(found) == 0 {
		return []report.Item{report.Warning("No connected " + platform + " devices were found")}
	}
	items := make([]report.Item, 0, len(found))
	for _, d := range found {
		if d.Usable() {
			items = append(items, report.Victory(d.String()))
		} else {
			items = append(items, report.Warning(d.String()))
		}
	}
	return items
}
