// internal/cli/resolve.go
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arc-language/aggbuild"
	"github.com/arc-language/aggbuild/pkg/buildcfg"
)

var (
	resolveFormat  string
	resolveOutput  string
	resolveSummary bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the aggdraw build configuration",
	Long: `Detect the platform, probe optional features and print the build
configuration of the aggdraw extension.

Examples:
  aggbuild resolve
  aggbuild resolve --format flags
  aggbuild resolve --freetype-root /opt/freetype -o aggdraw.yaml
  aggbuild resolve --format json -o aggdraw.json.xz`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "yaml", "output format (yaml, json, flags)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "write to file instead of stdout (.xz or .zst compresses)")
	resolveCmd.Flags().BoolVar(&resolveSummary, "summary", true, "print the setup summary to stderr")
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := buildcfg.ParseFormat(resolveFormat)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	cfg, err := aggbuild.Resolve(ctx, resolverOptions(cmd))
	if err != nil {
		return fmt.Errorf("resolving build configuration: %w", err)
	}

	if resolveSummary {
		info := buildcfg.SummaryInfo{
			Version: aggbuild.Version,
			Host:    runtime.GOOS + "/" + runtime.GOARCH,
		}
		if err := buildcfg.WriteSummary(cmd.ErrOrStderr(), cfg, info); err != nil {
			return err
		}
	}

	if resolveOutput != "" {
		if err := buildcfg.WriteFile(resolveOutput, cfg, format); err != nil {
			return fmt.Errorf("writing %s: %w", resolveOutput, err)
		}
		return nil
	}
	return buildcfg.Encode(cmd.OutOrStdout(), cfg, format)
}
