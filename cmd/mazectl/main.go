package main

import (
	"os"

	"github.com/spf13/cobra"
)

var mainCommand = &cobra.Command{
	Use:           "mazectl",
	Short:         "Generate and solve perfect mazes",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
