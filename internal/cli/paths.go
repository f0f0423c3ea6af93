// internal/cli/paths.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/aggbuild"
	"github.com/arc-language/aggbuild/pkg/searchpath"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the detected platform and search directories",
	Long:  `Show the platform profile and the include and library directories, in search order, with the rule that added each one.`,
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	profile, paths, err := aggbuild.SearchPaths(ctx, resolverOptions(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s\n", profile)
	printEntries(cmd, "Include directories", paths.IncludeEntries())
	printEntries(cmd, "Library directories", paths.LibraryEntries())
	return nil
}

func printEntries(cmd *cobra.Command, title string, entries []searchpath.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %-10s %s\n", e.Origin, e.Path)
	}
}
