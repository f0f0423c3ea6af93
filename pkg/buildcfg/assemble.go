// Package buildcfg assembles the compiler and linker inputs of the aggdraw
// extension from the detected platform, search paths and features.
package buildcfg

import (
	"slices"

	"github.com/arc-language/aggbuild/pkg/env"
	"github.com/arc-language/aggbuild/pkg/feature"
	"github.com/arc-language/aggbuild/pkg/platform"
	"github.com/arc-language/aggbuild/pkg/searchpath"
)

// Extension is the name of the built module
const Extension = "aggdraw"

// Sources compiled into every build
var Sources = []string{
	"aggdraw.cxx",
	"agg2/src/agg_arc.cpp",
	"agg2/src/agg_bezier_arc.cpp",
	"agg2/src/agg_curves.cpp",
	"agg2/src/agg_path_storage.cpp",
	"agg2/src/agg_rasterizer_scanline_aa.cpp",
	"agg2/src/agg_trans_affine.cpp",
	"agg2/src/agg_vcgen_contour.cpp",
	"agg2/src/agg_vcgen_stroke.cpp",
}

// IncludeDirs are the extension's own header directories
var IncludeDirs = []string{"agg2/include"}

const (
	freetypeSource     = "agg2/font_freetype/agg_font_freetype.cpp"
	freetypeIncludeDir = "agg2/font_freetype"

	DefineBigEndian  = "WORDS_BIGENDIAN"
	DefineFreetype   = "HAVE_FREETYPE2"
	DefineFreetype20 = "USE_FREETYPE_2_0"
	LibraryFreetype  = "freetype"
)

// WindowsLibraries are linked on every Windows build
var WindowsLibraries = []string{"kernel32", "user32", "gdi32"}

// Config is the resolved input of the native compiler
type Config struct {
	Extension   string             `yaml:"extension" json:"extension"`
	Platform    platform.Kind      `yaml:"platform" json:"platform"`
	Multiarch   string             `yaml:"multiarch,omitempty" json:"multiarch,omitempty"`
	BigEndian   bool               `yaml:"big_endian" json:"big_endian"`
	IncludeDirs []searchpath.Entry `yaml:"include_dirs" json:"include_dirs"`
	LibraryDirs []searchpath.Entry `yaml:"library_dirs" json:"library_dirs"`
	Defines     []env.Define       `yaml:"defines" json:"defines"`
	Sources     []string           `yaml:"sources" json:"sources"`
	Libraries   []string           `yaml:"libraries" json:"libraries"`
	Features    feature.Flags      `yaml:"features" json:"features"`
}

// AssembleOptions configures Assemble
type AssembleOptions struct {
	// BigEndian reports the byte order of the target
	BigEndian bool
}

// Assemble combines the pipeline results into a Config. paths is not
// modified; the FreeType private include directory goes into a copy.
func Assemble(profile platform.Profile, paths *searchpath.Set, flags feature.Flags, opts AssembleOptions) *Config {
	cfg := &Config{
		Extension: Extension,
		Platform:  profile.Kind,
		Multiarch: profile.Multiarch,
		BigEndian: opts.BigEndian,
		Sources:   slices.Clone(Sources),
		Features:  flags,
	}

	final := paths.Clone()
	for _, dir := range IncludeDirs {
		cfg.IncludeDirs = append(cfg.IncludeDirs, searchpath.Entry{Path: dir, Origin: searchpath.OriginFeature})
	}

	if profile.Kind == platform.KindWindows {
		cfg.Libraries = append(cfg.Libraries, WindowsLibraries...)
	}
	if opts.BigEndian {
		cfg.addDefine(env.Define{Name: DefineBigEndian})
	}

	if ft := flags[feature.Freetype]; ft.Present {
		final.InsertInclude(0, ft.IncludeDir, searchpath.OriginFeature)
		cfg.Sources = append(cfg.Sources, freetypeSource)
		cfg.Libraries = append(cfg.Libraries, LibraryFreetype)
		cfg.addDefine(env.Define{Name: DefineFreetype})
		if ft.Tier == feature.TierLegacy {
			cfg.addDefine(env.Define{Name: DefineFreetype20})
		}
	}

	cfg.IncludeDirs = append(cfg.IncludeDirs, final.IncludeEntries()...)
	if flags.Enabled(feature.Freetype) {
		cfg.IncludeDirs = append(cfg.IncludeDirs, searchpath.Entry{Path: freetypeIncludeDir, Origin: searchpath.OriginFeature})
	}
	cfg.LibraryDirs = final.LibraryEntries()
	return cfg
}

func (c *Config) addDefine(d env.Define) {
	if slices.ContainsFunc(c.Defines, func(x env.Define) bool { return x.Name == d.Name }) {
		return
	}
	c.Defines = append(c.Defines, d)
}

// HasDefine reports whether name is defined
func (c *Config) HasDefine(name string) bool {
	return slices.ContainsFunc(c.Defines, func(d env.Define) bool { return d.Name == name })
}

// Includes returns the include directories in order
func (c *Config) Includes() []string {
	return entryPaths(c.IncludeDirs)
}

// LibraryPaths returns the library directories in order
func (c *Config) LibraryPaths() []string {
	return entryPaths(c.LibraryDirs)
}

// Flags renders the configuration as compiler driver flags
func (c *Config) Flags() env.CompilerFlags {
	return env.NewCompilerFlags(c.Defines, c.Includes(), c.LibraryPaths(), c.Libraries)
}

func entryPaths(entries []searchpath.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}
