// Package devices enumerates mobile devices attached to the host, using adb
// for Android and libimobiledevice for iOS.
package devices

import (
	"fmt"
	"strings"

	"github.com/crosskit/crosskit/internal/execx"
)

// Device is one attached device.
type Device struct {
	Serial   string
	Model    string
	Platform string
	State    string
}

// String renders the device the way the doctor and devices commands list it.
func (d Device) String() string {
	if d.Model != "" {
		return fmt.Sprintf("%s (%s) %s", d.Model, d.Serial, d.State)
	}
	return fmt.Sprintf("%s %s", d.Serial, d.State)
}

// Usable reports whether the device is ready for installs. Android devices
// stuck in unauthorized or offline states show up in listings but cannot be
// deployed to.
func (d Device) Usable() bool {
	return d.State == "device"
}

// ListAndroid asks adb for attached Android devices.
func ListAndroid() ([]Device, error) {
	out, err := execx.Run("adb devices -l")
	if err != nil {
		return nil, err
	}
	return parseADB(out), nil
}

// ListIOS asks idevice_id for attached iOS devices.
func ListIOS() ([]Device, error) {
	out, err := execx.Run("idevice_id -l")
	if err != nil {
		return nil, err
	}
	return parseIDeviceID(out), nil
}

// parseADB handles the `adb devices -l` listing: a header line, then one
// `serial state key:value ...` line per device. Daemon startup chatter
// starting with `*` is skipped.
func parseADB(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		device := Device{
			Serial:   fields[0],
			State:    fields[1],
			Platform: "android",
		}
		for _, field := range fields[2:] {
			if model, ok := strings.CutPrefix(field, "model:"); ok {
				device.Model = strings.ReplaceAll(model, "_", " ")
			}
		}
		devices = append(devices, device)
	}
	return devices
}

// parseIDeviceID handles `idevice_id -l` output: one UDID per line.
func parseIDeviceID(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		devices = append(devices, Device{
			Serial:   line,
			Platform: "ios",
			State:    "device",
		})
	}
	return devices
}
