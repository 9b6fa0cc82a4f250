// Package config locates and loads the crosskit project manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file that marks a project root.
const ManifestName = "crosskit.yml"

// Manifest describes a crosskit project: the app being built and the mobile
// targets it builds for.
type Manifest struct {
	App     App               `yaml:"app"`
	Targets map[string]Target `yaml:"targets"`
}

// App identifies the application a project builds.
type App struct {
	Name       string `yaml:"name"`
	Identifier string `yaml:"identifier"`
}

// Target holds per-platform build settings.
type Target struct {
	MinSDK           int    `yaml:"min-sdk,omitempty"`
	DeploymentTarget string `yaml:"deployment-target,omitempty"`
}

// Locate walks from dir up to the filesystem root looking for ManifestName
// and reports the path of the first one found.
func Locate(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ManifestName, err)
	}
	return &m, nil
}

// Validate checks the fields every build needs.
func (m *Manifest) Validate() error {
	if m.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if m.App.Identifier == "" {
		return fmt.Errorf("app.identifier is required")
	}
	for name := range m.Targets {
		if name != "android" && name != "ios" {
			return fmt.Errorf("unknown target platform %q", name)
		}
	}
	return nil
}

// TargetNames returns the configured platforms in a stable order.
func (m *Manifest) TargetNames() []string {
	names := make([]string, 0, len(m.Targets))
	for name := range m.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
