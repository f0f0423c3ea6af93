package searchpath

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/arc-language/aggbuild/pkg/brew"
	"github.com/arc-language/aggbuild/pkg/nix"
	"github.com/arc-language/aggbuild/pkg/platform"
	nixstore "zombiezen.com/go/nix"
)

// Options configures Build
type Options struct {
	// Sysroot is prepended to well-known system locations (not to Prefix,
	// the FreeType roots, Homebrew or Nix paths).
	Sysroot string

	// Home is the user's home directory, used to find a Nix profile
	Home string

	// NixStore overrides the Nix store directory (default /nix/store)
	NixStore string

	// Prefix is the installation prefix of the extension's host runtime
	Prefix string

	// PythonVersion (e.g. "3.12") locates the import library on Cygwin
	PythonVersion string

	// FreetypeLibRoot and FreetypeIncludeRoot are user-configured FreeType dirs
	FreetypeLibRoot     string
	FreetypeIncludeRoot string

	// Compiler defaults are appended after every other rule
	CompilerIncludeDirs []string
	CompilerLibraryDirs []string

	Runner platform.Runner
	Logger *slog.Logger
}

type builder struct {
	set  *Set
	opts Options
	log  *slog.Logger
}

// Build applies the search path rules for profile and returns a frozen Set.
// Platform-specific and multiarch directories always precede the generic
// system defaults. Probe failures (Homebrew, Nix) are logged and ignored.
func Build(ctx context.Context, profile platform.Profile, opts Options) *Set {
	if opts.Runner == nil {
		opts.Runner = platform.ExecRunner{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &builder{set: New(), opts: opts, log: logger}

	// 1. platform-specific locations
	switch profile.Kind {
	case platform.KindCygwin:
		if opts.PythonVersion != "" {
			b.lib(b.sys("/usr/lib", "python"+opts.PythonVersion, "config"), OriginPlatform)
		}

	case platform.KindDarwin:
		// prefer freetype2 over other versions
		b.include(b.sys("/sw/include/freetype2"), OriginPlatform)
		b.include(b.sys("/sw/lib/freetype2/include"), OriginPlatform)
		// fink
		b.lib(b.sys("/sw/lib"), OriginPlatform)
		b.include(b.sys("/sw/include"), OriginPlatform)
		// MacPorts
		b.lib(b.sys("/opt/local/lib"), OriginPlatform)
		b.include(b.sys("/opt/local/include"), OriginPlatform)
		// freetype2 ships with X11
		b.lib(b.sys("/usr/X11/lib"), OriginPlatform)
		b.include(b.sys("/usr/X11/include"), OriginPlatform)
		b.homebrew(ctx)
		b.nixProfile()

	case platform.KindLinuxX8664:
		b.lib(b.sys("/lib64"), OriginPlatform)
		b.lib(b.sys("/usr/lib64"), OriginPlatform)
		b.lib(b.sys("/usr/lib/x86_64-linux-gnu"), OriginPlatform)
		b.nixProfile()

	case platform.KindLinuxI386:
		b.lib(b.sys("/usr/lib/i386-linux-gnu"), OriginPlatform)
		b.nixProfile()

	case platform.KindLinux:
		b.nixProfile()
	}

	// 2. multiarch
	if profile.Multiarch != "" {
		b.lib(b.sys("/usr/lib", profile.Multiarch), OriginMultiarch)
		b.include(b.sys("/usr/include", profile.Multiarch), OriginMultiarch)
	}

	// 3. runtime installation prefix
	if opts.Prefix != "" {
		b.lib(filepath.Join(opts.Prefix, "lib"), OriginPrefix)
		b.include(filepath.Join(opts.Prefix, "include"), OriginPrefix)
	}

	// 4. configured FreeType kit
	b.lib(opts.FreetypeLibRoot, OriginOverride)
	b.include(opts.FreetypeIncludeRoot, OriginOverride)

	// 5. standard locations
	b.lib(b.sys("/usr/local/lib"), OriginGeneric)
	b.include(b.sys("/usr/local/include"), OriginGeneric)
	b.lib(b.sys("/usr/lib"), OriginGeneric)
	b.include(b.sys("/usr/include"), OriginGeneric)

	// 6. compiler defaults go last so they cannot shadow the dirs above
	for _, dir := range opts.CompilerLibraryDirs {
		b.lib(dir, OriginCompiler)
	}
	for _, dir := range opts.CompilerIncludeDirs {
		b.include(dir, OriginCompiler)
	}

	return b.set.Freeze()
}

func (b *builder) sys(elem ...string) string {
	p := filepath.Join(elem...)
	if b.opts.Sysroot == "" {
		return p
	}
	return filepath.Join(b.opts.Sysroot, p)
}

func (b *builder) lib(dir string, origin Origin) {
	if b.set.AddLibrary(dir, origin) {
		b.log.Debug("library dir added", "dir", dir, "origin", origin)
	}
}

func (b *builder) include(dir string, origin Origin) {
	if b.set.AddInclude(dir, origin) {
		b.log.Debug("include dir added", "dir", dir, "origin", origin)
	}
}

func (b *builder) homebrew(ctx context.Context) {
	prefix, err := brew.Prefix(ctx, b.opts.Runner)
	if err != nil {
		prefix = b.brewFallback()
		if prefix == "" {
			b.log.Debug("homebrew not available", "error", err)
			return
		}
		b.log.Debug("brew not on PATH, using installation", "prefix", prefix)
	}
	lib, include := brew.Dirs(prefix)
	b.lib(lib, OriginBrew)
	b.include(include, OriginBrew)
}

func (b *builder) brewFallback() string {
	for _, p := range brew.DefaultPrefixes {
		if dir := b.sys(p); brew.Installed(dir) {
			return dir
		}
	}
	return ""
}

func (b *builder) nixProfile() {
	p, err := nix.FindProfile(b.opts.Home, nixstore.StoreDirectory(b.opts.NixStore))
	if err != nil {
		b.log.Debug("nix profile not available", "error", err)
		return
	}
	b.log.Debug("nix profile found", "link", p.Link, "object", p.Name())
	lib, include := p.Dirs()
	b.lib(lib, OriginNix)
	b.include(include, OriginNix)
}
