// internal/cli/version.go
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arc-language/aggbuild"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "aggbuild for aggdraw %s\n", aggbuild.Version)
		fmt.Fprintf(out, "built for %s/%s with %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
