// errors.go
package aggbuild

import (
	"fmt"

	"github.com/arc-language/aggbuild/pkg/feature"
	"github.com/arc-language/aggbuild/pkg/platform"
)

var (
	// ErrUnsupportedPlatform indicates the host could not be classified
	ErrUnsupportedPlatform = platform.ErrUnsupportedPlatform

	// ErrProbeFailure indicates an optional system utility failed
	ErrProbeFailure = platform.ErrProbeFailure

	// ErrFeatureUnavailable indicates an optional dependency was not found
	ErrFeatureUnavailable = feature.ErrUnavailable
)

// Error wraps an error with the pipeline stage that produced it
type Error struct {
	Op  string // Stage that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
