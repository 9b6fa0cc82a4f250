// Command crosskit builds Rust projects for Android and iOS and checks that
// the host has everything those builds need.
package main

import (
	"os"

	"github.com/crosskit/crosskit/internal/execx"
	"github.com/crosskit/crosskit/internal/report"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbose bool
	noColor bool
	width   int
)

var rootCmd = &cobra.Command{
	Use:          "crosskit",
	Short:        "Build Rust apps for Android and iOS",
	Long:         `crosskit wires a Rust project up for mobile cross-compilation and checks that the host environment has everything the builds need.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			execx.Trace = os.Stderr
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo executed commands to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Wrap report output at this column (0 = terminal width)")
	rootCmd.AddCommand(doctorCmd, devicesCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// renderConfig builds the report rendering settings from the flags and the
// terminal attached to stdout.
func renderConfig() report.RenderConfig {
	w := width
	if w <= 0 {
		w = terminalWidth()
	}
	return report.RenderConfig{
		Width: w,
		Color: !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout),
	}
}

// terminalWidth returns the stdout width, or 80 when stdout is not a
// terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
