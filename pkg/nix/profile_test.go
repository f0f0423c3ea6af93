package nix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	nixstore "zombiezen.com/go/nix"
)

const testObject = "ffffffffffffffffffffffffffffffff-user-environment"

func setupStore(t *testing.T) (home string, store nixstore.StoreDirectory, object string) {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	storeDir := filepath.Join(root, "nix", "store")
	object = filepath.Join(storeDir, testObject)
	require.NoError(t, os.MkdirAll(filepath.Join(object, "lib"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(object, "include"), 0o755))

	home = filepath.Join(root, "home")
	require.NoError(t, os.MkdirAll(home, 0o755))
	return home, nixstore.StoreDirectory(storeDir), object
}

func TestFindProfile(t *testing.T) {
	home, store, object := setupStore(t)
	require.NoError(t, os.Symlink(object, filepath.Join(home, ProfileLink)))

	p, err := FindProfile(home, store)
	require.NoError(t, err)
	require.Equal(t, "user-environment", p.Name())
	require.Equal(t, object, string(p.StorePath))

	lib, include := p.Dirs()
	require.Equal(t, filepath.Join(home, ProfileLink, "lib"), lib)
	require.Equal(t, filepath.Join(home, ProfileLink, "include"), include)
}

func TestFindProfileOutsideStore(t *testing.T) {
	home, store, _ := setupStore(t)
	elsewhere := filepath.Join(t.TempDir(), "profile")
	require.NoError(t, os.MkdirAll(elsewhere, 0o755))
	require.NoError(t, os.Symlink(elsewhere, filepath.Join(home, ProfileLink)))

	_, err := FindProfile(home, store)
	require.ErrorIs(t, err, ErrNotStoreObject)
}

func TestFindProfileMissing(t *testing.T) {
	home, store, _ := setupStore(t)

	_, err := FindProfile(home, store)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = FindProfile("", store)
	require.ErrorIs(t, err, os.ErrNotExist)
}
