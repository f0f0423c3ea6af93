// Package feature decides which optional native dependencies the extension
// is built with.
package feature

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/arc-language/aggbuild/pkg/env"
	"github.com/arc-language/aggbuild/pkg/platform"
	"github.com/arc-language/aggbuild/pkg/searchpath"
)

// ErrUnavailable marks an optional feature that was not found
var ErrUnavailable = errors.New("feature unavailable")

// Freetype is the feature name of FreeType text rendering
const Freetype = "freetype"

// Tier is the API generation of an optional dependency
type Tier string

const (
	TierNone    Tier = ""
	TierLegacy  Tier = "legacy"  // FreeType 2.0 headers (<freetype/freetype.h> only)
	TierCurrent Tier = "current" // FreeType 2.1+ (ft2build.h)
)

// Feature is the probe result of one optional dependency
type Feature struct {
	Name       string       `yaml:"name" json:"name"`
	Present    bool         `yaml:"present" json:"present"`
	Tier       Tier         `yaml:"tier,omitempty" json:"tier,omitempty"`
	IncludeDir string       `yaml:"include_dir,omitempty" json:"include_dir,omitempty"`
	Library    *env.Library `yaml:"library,omitempty" json:"library,omitempty"`
	Version    string       `yaml:"version,omitempty" json:"version,omitempty"`
	Err        error        `yaml:"-" json:"-"`
}

// Flags maps feature names to probe results
type Flags map[string]Feature

// Enabled reports whether the named feature is present
func (f Flags) Enabled(name string) bool {
	return f[name].Present
}

// Probe runs every known feature probe against paths
func Probe(paths *searchpath.Set, kind platform.Kind) Flags {
	return Flags{
		Freetype: ProbeFreetype(paths, kind),
	}
}

// ProbeFreetype looks for the freetype library and then for its headers.
// Header directories are scanned in search order and the first directory
// holding any recognized layout decides the tier, even when a newer layout
// appears further down the list.
func ProbeFreetype(paths *searchpath.Set, kind platform.Kind) Feature {
	f := Feature{Name: Freetype}

	lib := env.FindLibrary(paths.Libraries(), "freetype", kind)
	if lib == nil {
		f.Err = fmt.Errorf("%w: freetype library not found", ErrUnavailable)
		return f
	}

	for _, dir := range paths.Includes() {
		sub := filepath.Join(dir, "freetype2")
		if env.FileExists(filepath.Join(dir, "ft2build.h")) {
			f.Tier, f.IncludeDir = TierCurrent, sub
			break
		}
		if env.FileExists(filepath.Join(sub, "ft2build.h")) {
			f.Tier, f.IncludeDir = TierCurrent, sub
			break
		}
		if env.DirExists(filepath.Join(sub, "freetype")) {
			f.Tier, f.IncludeDir = TierLegacy, sub
			break
		}
	}

	if f.Tier == TierNone {
		f.Err = fmt.Errorf("%w: freetype headers not found", ErrUnavailable)
		return f
	}

	f.Present = true
	f.Library = lib
	f.Version = headerVersion(filepath.Join(f.IncludeDir, "freetype", "freetype.h"))
	return f
}

// headerVersion reads FREETYPE_MAJOR/MINOR/PATCH from freetype.h and returns
// a semantic version such as "v2.13.2", or "" when it cannot be determined.
func headerVersion(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	parts := map[string]int{}
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || fields[0] != "#define" {
			continue
		}
		switch fields[1] {
		case "FREETYPE_MAJOR", "FREETYPE_MINOR", "FREETYPE_PATCH":
			if n, err := strconv.Atoi(fields[2]); err == nil {
				parts[fields[1]] = n
			}
		}
	}

	major, ok := parts["FREETYPE_MAJOR"]
	if !ok {
		return ""
	}
	v := fmt.Sprintf("v%d.%d.%d", major, parts["FREETYPE_MINOR"], parts["FREETYPE_PATCH"])
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
