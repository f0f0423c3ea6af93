// pkg/platform/detect.go
package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedPlatform indicates library paths cannot be derived for the host
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrProbeFailure indicates an optional external utility failed
	ErrProbeFailure = errors.New("probe failed")
)

// Kind classifies the build target
type Kind string

const (
	KindCygwin     Kind = "cygwin"
	KindDarwin     Kind = "darwin"
	KindLinuxX8664 Kind = "linux-x86_64"
	KindLinuxI386  Kind = "linux-i386"
	KindLinux      Kind = "linux" // CPU not recognized, paths come from multiarch only
	KindWindows    Kind = "windows"
	KindOther      Kind = "other"
)

// AllKinds contains every platform kind the resolver knows about
var AllKinds = []Kind{
	KindCygwin,
	KindDarwin,
	KindLinuxX8664,
	KindLinuxI386,
	KindLinux,
	KindWindows,
	KindOther,
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is one of AllKinds
func (k Kind) IsValid() bool {
	return slices.Contains(AllKinds, k)
}

// IsLinux reports whether the kind is one of the Linux variants
func (k Kind) IsLinux() bool {
	return k == KindLinuxX8664 || k == KindLinuxI386 || k == KindLinux
}

// Host describes the machine the build runs on, in the vocabulary of
// uname and pointer width rather than Go's GOOS/GOARCH.
type Host struct {
	OS           string // linux, darwin, cygwin, windows, ...
	Processor    string // x86_64, i686, aarch64, ... (may be empty)
	Architecture string // 64bit or 32bit (may be empty)
}

// CurrentHost describes the running process
func CurrentHost() Host {
	return Host{
		OS:           runtime.GOOS,
		Processor:    processorName(runtime.GOARCH),
		Architecture: strconv.Itoa(strconv.IntSize) + "bit",
	}
}

func processorName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

// Profile is the immutable result of platform detection
type Profile struct {
	Kind      Kind
	OS        string
	Hints     []string // architecture hints that were consulted
	Multiarch string   // Debian multiarch triplet, e.g. x86_64-linux-gnu
}

// String returns a string representation of the profile
func (p Profile) String() string {
	if p.Multiarch != "" {
		return fmt.Sprintf("%s (multiarch: %s)", p.Kind, p.Multiarch)
	}
	return p.Kind.String()
}

// Detect classifies host into a Profile. On Linux the multiarch utility is
// consulted; if it fails and no architecture hint is recognized, Detect
// returns ErrUnsupportedPlatform.
func Detect(ctx context.Context, host Host, runner Runner, logger *slog.Logger) (Profile, error) {
	if logger == nil {
		logger = discardLogger()
	}
	if runner == nil {
		runner = ExecRunner{}
	}

	p := Profile{OS: host.OS}

	switch {
	case host.OS == "cygwin":
		p.Kind = KindCygwin
	case host.OS == "darwin":
		p.Kind = KindDarwin
	case host.OS == "windows" || host.OS == "win32":
		p.Kind = KindWindows
	case strings.HasPrefix(host.OS, "linux"):
		return detectLinux(ctx, host, runner, logger)
	default:
		p.Kind = KindOther
	}

	logger.Debug("platform detected", "kind", p.Kind, "os", host.OS)
	return p, nil
}

func detectLinux(ctx context.Context, host Host, runner Runner, logger *slog.Logger) (Profile, error) {
	p := Profile{OS: host.OS}

	for _, hint := range []string{host.Processor, host.Architecture} {
		if hint == "" {
			continue
		}
		p.Hints = append(p.Hints, hint)
		if kind, ok := linuxKind(hint); ok {
			p.Kind = kind
			break
		}
	}

	triplet, err := QueryMultiarch(ctx, runner)
	if err != nil {
		if p.Kind == "" {
			return Profile{}, fmt.Errorf("%w: unable to identify Linux platform %q: %v",
				ErrUnsupportedPlatform, strings.Join(p.Hints, ","), err)
		}
		logger.Debug("multiarch query failed", "error", err)
	} else {
		p.Multiarch = triplet
	}

	if p.Kind == "" {
		p.Kind = KindLinux
	}

	logger.Debug("platform detected", "kind", p.Kind, "hints", p.Hints, "multiarch", p.Multiarch)
	return p, nil
}

func linuxKind(hint string) (Kind, bool) {
	switch hint {
	case "x86_64", "amd64", "64bit":
		return KindLinuxX8664, true
	case "i386", "i686", "32bit":
		return KindLinuxI386, true
	default:
		return "", false
	}
}
