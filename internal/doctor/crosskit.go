package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crosskit/crosskit/internal/report"
)

// commitMsgHook is the script `crosskit init` installs into a project's git
// hooks. The doctor compares the installed hook against it byte for byte.
const commitMsgHook = `#!/bin/sh
# installed by crosskit
subject=$(head -n 1 "$1")
if [ "${#subject}" -gt 72 ]; then
    echo "commit subject exceeds 72 characters" >&2
    exit 1
fi
`

// ToolSection reports on the crosskit installation itself
func ToolSection(toolVersion string) *report.Section {
	s := report.NewSection("crosskit").
		Add(report.Victory(fmt.Sprintf("crosskit v%s installed", toolVersion)))
	if item, ok := hookItem("."); ok {
		s.Add(item)
	}
	return s
}

// hookItem checks the commit-msg hook of the git repository enclosing dir.
// The second return is false outside a repository, where there is nothing to
// check.
func hookItem(dir string) (report.Item, bool) {
	gitDir, ok := findGitDir(dir)
	if !ok {
		return report.Item{}, false
	}
	installed, err := os.ReadFile(filepath.Join(gitDir, "hooks", "commit-msg"))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return report.Warning("commit-msg hook not installed; run `crosskit init` to install it"), true
	case err != nil:
		return report.FromResult("", &commitMsgError{err: err}), true
	case string(installed) != commitMsgHook:
		return report.FromResult("", &commitMsgError{err: errors.New("installed hook is out of date")}), true
	}
	return report.Victory("commit-msg hook installed and up to date"), true
}

// findGitDir walks upward from dir looking for a .git directory
func findGitDir(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, ".git")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
