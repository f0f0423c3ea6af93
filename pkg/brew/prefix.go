// prefix.go
package brew

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/aggbuild/pkg/platform"
)

// Prefix asks Homebrew for its installation prefix by running "brew --prefix".
// Failures wrap platform.ErrProbeFailure; callers treat them as "Homebrew not
// installed".
func Prefix(ctx context.Context, runner platform.Runner) (string, error) {
	out, err := runner.Output(ctx, "brew", "--prefix")
	if err != nil {
		return "", fmt.Errorf("%w: brew --prefix: %v", platform.ErrProbeFailure, err)
	}

	prefix := strings.TrimSpace(string(out))
	if prefix == "" {
		return "", fmt.Errorf("%w: brew --prefix printed nothing", platform.ErrProbeFailure)
	}
	if !filepath.IsAbs(prefix) {
		return "", fmt.Errorf("%w: brew prefix %q is not absolute", platform.ErrProbeFailure, prefix)
	}
	return filepath.Clean(prefix), nil
}

// Dirs returns the library and include directories under a Homebrew prefix
func Dirs(prefix string) (lib, include string) {
	return filepath.Join(prefix, "lib"), filepath.Join(prefix, "include")
}

// Installed reports whether prefix holds a Homebrew installation
func Installed(prefix string) bool {
	info, err := os.Stat(filepath.Join(prefix, "bin", "brew"))
	return err == nil && !info.IsDir()
}
