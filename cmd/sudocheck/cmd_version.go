package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print current version of sudocheck",
	Run:   printVersion,
	Args:  cobra.NoArgs,
}

var nameOnly bool

func init() {
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "n", false, "print version number only")
	mainCommand.AddCommand(commandVersion)
}

func printVersion(cmd *cobra.Command, args []string) {
	out := version
	if !nameOnly {
		out = "sudocheck " + version + " (" + runtime.Version() + ", " + runtime.GOOS + ", " + runtime.GOARCH + ")"
	}
	os.Stdout.WriteString(out + "\n")
}
