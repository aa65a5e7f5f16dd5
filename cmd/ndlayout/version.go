package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		name := color.New(color.FgCyan, color.Bold).Sprint("ndlayout")
		ver := color.New(color.FgYellow, color.Bold).Sprint(version)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s %s/%s)\n", name, ver, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
