// constants.go
package brew

const (
	// DefaultInstallPathIntel is the default Homebrew prefix on Intel Macs
	DefaultInstallPathIntel = "/usr/local"

	// DefaultInstallPathARM is the default Homebrew prefix on ARM Macs
	DefaultInstallPathARM = "/opt/homebrew"
)

// DefaultPrefixes lists the standard prefixes, checked when brew is not on PATH
var DefaultPrefixes = []string{DefaultInstallPathARM, DefaultInstallPathIntel}
