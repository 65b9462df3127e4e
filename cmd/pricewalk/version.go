package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/aretw0/pricewalk"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number and build information of pricewalk",
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		printVersion(cmd.OutOrStdout(), verbose)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("verbose", "v", false, "Also print VCS revision and module dependencies")
}

func printVersion(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "pricewalk version %s %s/%s (%s)\n",
		strings.TrimSpace(pricewalk.Version), runtime.GOOS, runtime.GOARCH, runtime.Version())

	info, ok := debug.ReadBuildInfo()
	if !ok || !verbose {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			fmt.Fprintf(w, "  %s: %s\n", s.Key, s.Value)
		}
	}
	for _, dep := range info.Deps {
		fmt.Fprintf(w, "  dep %s %s\n", dep.Path, dep.Version)
	}
}
