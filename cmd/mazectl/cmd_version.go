package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print current version of mazectl",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.WriteString("mazectl " + Version + " (" + runtime.Version() + ", " + runtime.GOOS + ", " + runtime.GOARCH + ")\n")
	},
}

func init() {
	mainCommand.AddCommand(commandVersion)
}
