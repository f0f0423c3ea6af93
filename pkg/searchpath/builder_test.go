package searchpath

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/aggbuild/pkg/platform"
)

var noCommands = platform.RunnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return nil, errors.New(name + ": not found")
})

func brewAt(prefix string) platform.RunnerFunc {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name == "brew" {
			return []byte(prefix + "\n"), nil
		}
		return nil, errors.New(name + ": not found")
	}
}

// sysroot creates every well-known directory the builder may add.
func sysroot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mkdirs(t, root,
		"lib64", "usr/lib64", "usr/lib/x86_64-linux-gnu", "usr/lib/i386-linux-gnu",
		"usr/include/x86_64-linux-gnu",
		"sw/include/freetype2", "sw/lib/freetype2/include", "sw/lib", "sw/include",
		"opt/local/lib", "opt/local/include", "usr/X11/lib", "usr/X11/include",
		"usr/lib/python3.12/config",
		"usr/local/lib", "usr/local/include", "usr/lib", "usr/include",
	)
	return root
}

func rel(t *testing.T, root string, entries []Entry) []string {
	t.Helper()
	out := make([]string, len(entries))
	for i, e := range entries {
		r, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		out[i] = "/" + filepath.ToSlash(r)
	}
	return out
}

func TestBuildLinuxX8664(t *testing.T) {
	root := sysroot(t)
	profile := platform.Profile{Kind: platform.KindLinuxX8664, OS: "linux", Multiarch: "x86_64-linux-gnu"}

	set := Build(context.Background(), profile, Options{Sysroot: root, Runner: noCommands})
	require.True(t, set.Frozen())

	wantLib := []string{
		"/lib64", "/usr/lib64", "/usr/lib/x86_64-linux-gnu",
		"/usr/local/lib", "/usr/lib",
	}
	if diff := cmp.Diff(wantLib, rel(t, root, set.LibraryEntries())); diff != "" {
		t.Errorf("library dirs mismatch (-want +got):\n%s", diff)
	}

	wantInclude := []string{"/usr/include/x86_64-linux-gnu", "/usr/local/include", "/usr/include"}
	if diff := cmp.Diff(wantInclude, rel(t, root, set.IncludeEntries())); diff != "" {
		t.Errorf("include dirs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDarwinHomebrew(t *testing.T) {
	root := sysroot(t)
	brewPrefix := t.TempDir()
	mkdirs(t, brewPrefix, "lib", "include")

	profile := platform.Profile{Kind: platform.KindDarwin, OS: "darwin"}
	set := Build(context.Background(), profile, Options{Sysroot: root, Runner: brewAt(brewPrefix)})

	libs := set.Libraries()
	require.Contains(t, libs, filepath.Join(brewPrefix, "lib"))
	require.Less(t, slices.Index(libs, filepath.Join(root, "opt/local/lib")), slices.Index(libs, filepath.Join(brewPrefix, "lib")))
	require.Less(t, slices.Index(libs, filepath.Join(brewPrefix, "lib")), slices.Index(libs, filepath.Join(root, "usr/local/lib")))

	includes := set.Includes()
	require.Equal(t, filepath.Join(root, "sw/include/freetype2"), includes[0])
	require.Contains(t, includes, filepath.Join(brewPrefix, "include"))
}

func TestBuildDarwinWithoutHomebrew(t *testing.T) {
	root := sysroot(t)
	profile := platform.Profile{Kind: platform.KindDarwin, OS: "darwin"}

	set := Build(context.Background(), profile, Options{Sysroot: root, Runner: noCommands})
	for _, e := range set.LibraryEntries() {
		require.NotEqual(t, OriginBrew, e.Origin)
	}
	require.NotEmpty(t, set.Libraries())
}

func TestBuildDarwinHomebrewNotOnPath(t *testing.T) {
	root := sysroot(t)
	mkdirs(t, root, "opt/homebrew/bin", "opt/homebrew/lib", "opt/homebrew/include")
	require.NoError(t, os.WriteFile(filepath.Join(root, "opt/homebrew/bin/brew"), nil, 0o755))
	profile := platform.Profile{Kind: platform.KindDarwin, OS: "darwin"}

	set := Build(context.Background(), profile, Options{Sysroot: root, Runner: noCommands})
	require.Contains(t, set.LibraryEntries(), Entry{Path: filepath.Join(root, "opt/homebrew/lib"), Origin: OriginBrew})
	require.Contains(t, set.IncludeEntries(), Entry{Path: filepath.Join(root, "opt/homebrew/include"), Origin: OriginBrew})
}

func TestBuildPlatformPathsPrecedeGeneric(t *testing.T) {
	root := sysroot(t)
	prefix := t.TempDir()
	mkdirs(t, prefix, "lib", "include")
	compiler := mkdirs(t, t.TempDir(), "cc-lib", "cc-include")

	profiles := []platform.Profile{
		{Kind: platform.KindCygwin},
		{Kind: platform.KindDarwin},
		{Kind: platform.KindLinuxX8664, Multiarch: "x86_64-linux-gnu"},
		{Kind: platform.KindLinuxI386},
		{Kind: platform.KindLinux, Multiarch: "x86_64-linux-gnu"},
		{Kind: platform.KindWindows},
		{Kind: platform.KindOther},
	}

	rank := map[Origin]int{
		OriginPlatform: 0, OriginBrew: 0, OriginNix: 0,
		OriginMultiarch: 1, OriginPrefix: 2, OriginOverride: 3,
		OriginGeneric: 4, OriginCompiler: 5,
	}

	for _, p := range profiles {
		t.Run(p.Kind.String(), func(t *testing.T) {
			set := Build(context.Background(), p, Options{
				Sysroot:             root,
				Prefix:              prefix,
				PythonVersion:       "3.12",
				CompilerLibraryDirs: compiler[:1],
				CompilerIncludeDirs: compiler[1:],
				Runner:              noCommands,
			})
			for _, entries := range [][]Entry{set.LibraryEntries(), set.IncludeEntries()} {
				for i := 1; i < len(entries); i++ {
					require.LessOrEqual(t, rank[entries[i-1].Origin], rank[entries[i].Origin],
						"%s (%s) before %s (%s)", entries[i-1].Path, entries[i-1].Origin, entries[i].Path, entries[i].Origin)
				}
			}
			libs := set.Libraries()
			require.Equal(t, compiler[0], libs[len(libs)-1])
		})
	}
}

func TestBuildCygwinPythonConfig(t *testing.T) {
	root := sysroot(t)
	set := Build(context.Background(), platform.Profile{Kind: platform.KindCygwin}, Options{
		Sysroot:       root,
		PythonVersion: "3.12",
		Runner:        noCommands,
	})
	require.Equal(t, filepath.Join(root, "usr/lib/python3.12/config"), set.Libraries()[0])
}

func TestBuildFreetypeOverride(t *testing.T) {
	root := sysroot(t)
	kit := mkdirs(t, t.TempDir(), "ft/lib", "ft/include")

	set := Build(context.Background(), platform.Profile{Kind: platform.KindOther}, Options{
		Sysroot:             root,
		FreetypeLibRoot:     kit[0],
		FreetypeIncludeRoot: kit[1],
		Runner:              noCommands,
	})
	require.Equal(t, kit[0], set.Libraries()[0])
	require.Equal(t, kit[1], set.Includes()[0])
	require.Equal(t, OriginOverride, set.IncludeEntries()[0].Origin)
}

func TestBuildNixProfile(t *testing.T) {
	root := sysroot(t)
	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	store := filepath.Join(base, "nix", "store")
	object := filepath.Join(store, "ffffffffffffffffffffffffffffffff-user-environment")
	mkdirs(t, object, "lib", "include")
	home := filepath.Join(base, "home")
	require.NoError(t, os.MkdirAll(home, 0o755))
	require.NoError(t, os.Symlink(object, filepath.Join(home, ".nix-profile")))

	set := Build(context.Background(), platform.Profile{Kind: platform.KindLinuxI386}, Options{
		Sysroot:  root,
		Home:     home,
		NixStore: store,
		Runner:   noCommands,
	})

	entries := set.LibraryEntries()
	require.Equal(t, OriginPlatform, entries[0].Origin)
	require.Equal(t, OriginNix, entries[1].Origin)
	require.Equal(t, filepath.Join(home, ".nix-profile", "lib"), entries[1].Path)
}
