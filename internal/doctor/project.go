package doctor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/crosskit/crosskit/internal/config"
	"github.com/crosskit/crosskit/internal/report"
)

// ProjectSection reports on the manifest of the project enclosing dir. The
// section stays empty outside a project; the doctor skips empty sections
// when printing.
func ProjectSection(dir string) *report.Section {
	s := report.NewSection("Project")
	path, ok := config.Locate(dir)
	if !ok {
		return s
	}
	m, err := config.Load(path)
	if err != nil {
		return s.Add(report.Failure(err.Error()))
	}
	s.Add(report.Victory(fmt.Sprintf("%s (%s) at %s", m.App.Name, m.App.Identifier, filepath.Dir(path))))
	targets := m.TargetNames()
	if len(targets) == 0 {
		s.Add(report.Warning("no targets configured; add android or ios to " + config.ManifestName))
	} else {
		s.Add(report.Victory("targets: " + strings.Join(targets, ", ")))
	}
	return s
}
