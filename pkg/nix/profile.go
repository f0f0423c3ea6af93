// profile.go
package nix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	nixstore "zombiezen.com/go/nix"
)

// ProfileLink is the per-user profile symlink relative to the home directory
const ProfileLink = ".nix-profile"

// ErrNotStoreObject indicates the profile does not resolve into the Nix store
var ErrNotStoreObject = errors.New("not a nix store object")

// Profile is a Nix user profile whose link resolves to a store object
type Profile struct {
	Link      string             // e.g. /home/user/.nix-profile
	StorePath nixstore.StorePath // e.g. /nix/store/<digest>-user-environment
}

// Name returns the store object name, usually "user-environment"
func (p *Profile) Name() string {
	return p.StorePath.Name()
}

// Dirs returns the library and include directories of the profile
func (p *Profile) Dirs() (lib, include string) {
	return filepath.Join(p.Link, "lib"), filepath.Join(p.Link, "include")
}

// FindProfile resolves home/.nix-profile and checks that it lands inside
// store. An empty store means nixstore.DefaultStoreDirectory.
func FindProfile(home string, store nixstore.StoreDirectory) (*Profile, error) {
	if home == "" {
		return nil, fmt.Errorf("nix profile: %w", os.ErrNotExist)
	}
	if store == "" {
		store = nixstore.DefaultStoreDirectory
	}
	if real, err := filepath.EvalSymlinks(string(store)); err == nil {
		store = nixstore.StoreDirectory(real)
	}

	link := filepath.Join(home, ProfileLink)
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		return nil, fmt.Errorf("nix profile: %w", err)
	}

	storePath, _, err := store.ParsePath(resolved)
	if err != nil {
		return nil, fmt.Errorf("nix profile %s: %w: %v", link, ErrNotStoreObject, err)
	}

	return &Profile{Link: link, StorePath: storePath}, nil
}
