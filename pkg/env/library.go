// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"

	"github.com/arc-language/aggbuild/pkg/platform"
)

// FindLibrary searches dirs in order for library name using the naming
// conventions of kind. Returns the first match, or nil.
func FindLibrary(dirs []string, name string, kind platform.Kind) *Library {
	patterns := LibraryPatterns(kind)

	for _, dir := range dirs {
		for _, p := range patterns {
			fullPath := filepath.Join(dir, p.FileName(name))
			if FileExists(fullPath) {
				return &Library{
					Name:     name,
					Path:     fullPath,
					Type:     p.Ext,
					IsStatic: p.IsStatic,
				}
			}
		}
	}

	return nil
}

// HasLibrary checks if a library exists in any of dirs
func HasLibrary(dirs []string, name string, kind platform.Kind) bool {
	return FindLibrary(dirs, name, kind) != nil
}

// FileExists reports whether path is an existing regular file (or a link to one)
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path is an existing directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
