// aggbuild.go
package aggbuild

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sys/cpu"

	"github.com/arc-language/aggbuild/pkg/buildcfg"
	"github.com/arc-language/aggbuild/pkg/core"
	"github.com/arc-language/aggbuild/pkg/feature"
	"github.com/arc-language/aggbuild/pkg/platform"
	"github.com/arc-language/aggbuild/pkg/searchpath"
)

// Version is the aggdraw release the resolver targets
const Version = "1.2a4"

// Re-export pipeline types for convenience
type (
	BuildConfig = buildcfg.Config
	Profile     = platform.Profile
	Host        = platform.Host
	Config      = core.Config
)

// Options configures a resolver run
type Options struct {
	// Host overrides the detected host. A zero Host means the running one.
	Host platform.Host

	// Config is the user configuration; nil means core.DefaultConfig()
	Config *core.Config

	// Runner executes system utilities; nil means platform.ExecRunner
	Runner platform.Runner

	// Logger receives debug and warning records; nil discards them
	Logger *slog.Logger

	// Home is searched for a Nix profile; empty means the user's home
	Home string

	// NixStore overrides the Nix store directory
	NixStore string

	// BigEndian reports the target byte order; nil means cpu.IsBigEndian
	BigEndian func() bool
}

func (o *Options) setDefaults() {
	if o.Host == (platform.Host{}) {
		o.Host = platform.CurrentHost()
	}
	if o.Config == nil {
		o.Config = core.DefaultConfig()
	}
	if o.Runner == nil {
		o.Runner = platform.ExecRunner{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Home == "" {
		o.Home, _ = os.UserHomeDir()
	}
	if o.BigEndian == nil {
		o.BigEndian = func() bool { return cpu.IsBigEndian }
	}
}

// SearchPaths detects the platform and builds its search paths
func SearchPaths(ctx context.Context, opts Options) (platform.Profile, *searchpath.Set, error) {
	opts.setDefaults()
	return searchPaths(ctx, &opts)
}

func searchPaths(ctx context.Context, opts *Options) (platform.Profile, *searchpath.Set, error) {
	profile, err := platform.Detect(ctx, opts.Host, opts.Runner, opts.Logger)
	if err != nil {
		return platform.Profile{}, nil, &Error{Op: "detect", Err: err}
	}

	cfg := opts.Config
	libRoot, includeRoot := cfg.FreetypeRoots()
	compilerIncludes, compilerLibs := cfg.CompilerDirs()

	paths := searchpath.Build(ctx, profile, searchpath.Options{
		Sysroot:             cfg.Sysroot,
		Home:                opts.Home,
		NixStore:            opts.NixStore,
		Prefix:              cfg.Prefix,
		PythonVersion:       cfg.PythonVersion,
		FreetypeLibRoot:     libRoot,
		FreetypeIncludeRoot: includeRoot,
		CompilerIncludeDirs: compilerIncludes,
		CompilerLibraryDirs: compilerLibs,
		Runner:              opts.Runner,
		Logger:              opts.Logger,
	})
	return profile, paths, nil
}

// Resolve runs the detector, the search path builder, the feature prober
// and the assembler, in that order. Only an unclassifiable platform is
// fatal; a missing optional feature is recorded on the result.
func Resolve(ctx context.Context, opts Options) (*BuildConfig, error) {
	opts.setDefaults()

	profile, paths, err := searchPaths(ctx, &opts)
	if err != nil {
		return nil, err
	}

	flags := feature.Probe(paths, profile.Kind)
	for name, f := range flags {
		if f.Present {
			opts.Logger.Debug("feature enabled", "feature", name, "tier", f.Tier, "include", f.IncludeDir)
			continue
		}
		opts.Logger.Warn("feature disabled", "feature", name, "reason", f.Err)
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: "resolve", Err: err}
	}

	return buildcfg.Assemble(profile, paths, flags, buildcfg.AssembleOptions{
		BigEndian: opts.BigEndian(),
	}), nil
}
