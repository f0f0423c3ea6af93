// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arc-language/aggbuild"
	"github.com/arc-language/aggbuild/pkg/core"
	"github.com/arc-language/aggbuild/pkg/platform"
)

var (
	cfgFile      string
	debug        bool
	logLevel     string
	logFormat    string
	hostOS       string
	processor    string
	arch         string
	sysroot      string
	freetypeRoot string
	prefix       string
	timeout      time.Duration
	config       *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aggbuild",
	Short: "aggdraw build feature resolver",
	Long: `aggbuild - aggdraw build feature resolver

Detects the host platform, collects the include and library search
directories, probes optional native dependencies such as FreeType and
prints the resulting compiler configuration.`,
	Version:       aggbuild.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file, .yaml or .hcl (default is $HOME/.config/aggbuild/config.yaml)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "log format (text, json)")
	pf.StringVar(&hostOS, "os", "", "override the host operating system")
	pf.StringVar(&processor, "processor", "", "override the host processor (e.g. x86_64)")
	pf.StringVar(&arch, "arch", "", "override the host architecture (64bit, 32bit)")
	pf.StringVar(&sysroot, "sysroot", "", "resolve system directories below this root")
	pf.StringVar(&freetypeRoot, "freetype-root", "", "FreeType installation root (lib/ and include/)")
	pf.StringVar(&prefix, "prefix", "", "installation prefix of the host runtime")
	pf.DurationVar(&timeout, "timeout", 30*time.Second, "limit for running system utilities (0 disables)")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if logFormat != "" {
		config.LogFormat = logFormat
	}
	if sysroot != "" {
		config.Sysroot = sysroot
	}
	if freetypeRoot != "" {
		config.FreetypeRoot = freetypeRoot
		config.FreetypeLibRoot = ""
		config.FreetypeIncludeRoot = ""
	}
	if prefix != "" {
		config.Prefix = prefix
	}
}

// resolverOptions builds the resolver input from config and host flags
func resolverOptions(cmd *cobra.Command) aggbuild.Options {
	host := platform.CurrentHost()
	if hostOS != "" {
		host.OS = hostOS
	}
	if processor != "" {
		host.Processor = processor
	}
	if arch != "" {
		host.Architecture = arch
	}

	return aggbuild.Options{
		Host:   host,
		Config: config,
		Logger: config.Logger(cmd.ErrOrStderr()),
	}
}

// commandContext applies --timeout to the command's context
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
