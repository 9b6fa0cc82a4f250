package main

import (
	"errors"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/crosskit/crosskit/internal/doctor"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("some checks failed")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check your environment for problems",
	Long: `Runs every environment check and prints a section-by-section report.
Sections with nothing to say are skipped. The exit status is 1 when any
section contains an error.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " Checking your environment..."
	if isTerminal(os.Stderr) {
		spin.Start()
	}
	sections := doctor.Sections(version)
	spin.Stop()

	cfg := renderConfig()
	for _, s := range sections {
		if s.Empty() {
			continue
		}
		s.Render(os.Stdout, cfg)
	}
	if doctor.HasErrors(sections) {
		return errChecksFailed
	}
	return nil
}
