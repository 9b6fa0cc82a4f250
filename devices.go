package main

import (
	"os"

	"github.com/crosskit/crosskit/internal/doctor"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected Android and iOS devices",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		doctor.DeviceSection().Render(os.Stdout, renderConfig())
	},
}
