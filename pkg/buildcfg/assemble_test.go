package buildcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arc-language/aggbuild/pkg/env"
	"github.com/arc-language/aggbuild/pkg/feature"
	"github.com/arc-language/aggbuild/pkg/platform"
	"github.com/arc-language/aggbuild/pkg/searchpath"
)

func frozenSet(t *testing.T, includes ...string) *searchpath.Set {
	t.Helper()
	s := searchpath.New()
	for _, dir := range includes {
		require.NoError(t, os.MkdirAll(dir, 0o755))
		s.AddInclude(dir, searchpath.OriginGeneric)
	}
	return s.Freeze()
}

func freetypeFlags(tier feature.Tier, includeDir string) feature.Flags {
	return feature.Flags{feature.Freetype: {
		Name:       feature.Freetype,
		Present:    true,
		Tier:       tier,
		IncludeDir: includeDir,
	}}
}

func countDefine(cfg *Config, name string) int {
	n := 0
	for _, d := range cfg.Defines {
		if d.Name == name {
			n++
		}
	}
	return n
}

func TestAssembleByteOrder(t *testing.T) {
	profile := platform.Profile{Kind: platform.KindLinuxX8664}

	big := Assemble(profile, frozenSet(t), feature.Flags{}, AssembleOptions{BigEndian: true})
	require.Equal(t, 1, countDefine(big, DefineBigEndian))
	require.True(t, big.BigEndian)

	little := Assemble(profile, frozenSet(t), feature.Flags{}, AssembleOptions{})
	require.Zero(t, countDefine(little, DefineBigEndian))
}

func TestAssembleWindowsLibraries(t *testing.T) {
	cfg := Assemble(platform.Profile{Kind: platform.KindWindows}, frozenSet(t), feature.Flags{}, AssembleOptions{})
	require.Equal(t, []string{"kernel32", "user32", "gdi32"}, cfg.Libraries)

	cfg = Assemble(platform.Profile{Kind: platform.KindCygwin}, frozenSet(t), feature.Flags{}, AssembleOptions{})
	require.Empty(t, cfg.Libraries)
}

func TestAssembleWithoutFreetype(t *testing.T) {
	flags := feature.Flags{feature.Freetype: {Name: feature.Freetype}}
	cfg := Assemble(platform.Profile{Kind: platform.KindLinuxX8664}, frozenSet(t), flags, AssembleOptions{})

	require.Equal(t, Sources, cfg.Sources)
	require.NotContains(t, cfg.Libraries, LibraryFreetype)
	require.False(t, cfg.HasDefine(DefineFreetype))
	require.NotContains(t, cfg.Includes(), freetypeIncludeDir)
	require.Equal(t, IncludeDirs, cfg.Includes())
}

func TestAssembleFreetypeCurrent(t *testing.T) {
	root := t.TempDir()
	inc := filepath.Join(root, "include")
	private := filepath.Join(inc, "freetype2")
	paths := frozenSet(t, inc, private)

	cfg := Assemble(platform.Profile{Kind: platform.KindDarwin}, paths, freetypeFlags(feature.TierCurrent, private), AssembleOptions{})

	require.Contains(t, cfg.Sources, freetypeSource)
	require.Equal(t, []string{LibraryFreetype}, cfg.Libraries)
	require.True(t, cfg.HasDefine(DefineFreetype))
	require.False(t, cfg.HasDefine(DefineFreetype20))
	// private dir was already in the list; it keeps its place
	require.Equal(t, []string{"agg2/include", inc, private, freetypeIncludeDir}, cfg.Includes())
	require.Equal(t, []string{inc, private}, paths.Includes(), "input set must not change")
}

func TestAssembleFreetypeLegacyFront(t *testing.T) {
	root := t.TempDir()
	inc := filepath.Join(root, "include")
	private := filepath.Join(root, "other", "freetype2")
	require.NoError(t, os.MkdirAll(private, 0o755))

	cfg := Assemble(platform.Profile{Kind: platform.KindLinuxI386}, frozenSet(t, inc), freetypeFlags(feature.TierLegacy, private), AssembleOptions{})

	require.True(t, cfg.HasDefine(DefineFreetype))
	require.True(t, cfg.HasDefine(DefineFreetype20))
	require.Equal(t, []string{"agg2/include", private, inc, freetypeIncludeDir}, cfg.Includes())
}

func TestConfigFlags(t *testing.T) {
	cfg := &Config{
		Defines:     []env.Define{{Name: DefineFreetype}},
		IncludeDirs: []searchpath.Entry{{Path: "agg2/include"}},
		LibraryDirs: []searchpath.Entry{{Path: "/usr/lib"}},
		Libraries:   []string{"freetype"},
	}
	flags := cfg.Flags()
	require.Equal(t, "-DHAVE_FREETYPE2 -Iagg2/include", flags.Cflags())
	require.Equal(t, "-L/usr/lib -lfreetype", flags.Libs())
}
