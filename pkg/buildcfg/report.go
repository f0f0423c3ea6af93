package buildcfg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arc-language/aggbuild/pkg/feature"
)

// SummaryInfo is printed in the header of the setup summary
type SummaryInfo struct {
	Version string // aggdraw version being built
	Host    string // free-form host description
}

// optionLabels maps feature names to the labels shown in the summary
var optionLabels = map[string]string{
	feature.Freetype: "FREETYPE2",
}

// WriteSummary prints which optional features were enabled. Any disabled
// feature is flagged with a hint on how to configure its root directory.
func WriteSummary(w io.Writer, cfg *Config, info SummaryInfo) error {
	rule := strings.Repeat("-", 68)
	var b strings.Builder

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, strings.ToUpper(cfg.Extension), info.Version, "SETUP SUMMARY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-13s %s\n", "version", info.Version)
	fmt.Fprintf(&b, "%-13s %s %s\n", "platform", cfg.Platform, info.Host)
	if cfg.Multiarch != "" {
		fmt.Fprintf(&b, "%-13s %s\n", "multiarch", cfg.Multiarch)
	}
	fmt.Fprintln(&b, rule)

	names := make([]string, 0, len(cfg.Features))
	for name := range cfg.Features {
		names = append(names, name)
	}
	sort.Strings(names)

	all := true
	for _, name := range names {
		f := cfg.Features[name]
		label := optionLabels[name]
		if label == "" {
			label = strings.ToUpper(name)
		}
		if f.Present {
			line := fmt.Sprintf("--- %s support available", label)
			if f.Version != "" {
				line += " (" + f.Version + ")"
			}
			if f.Tier == feature.TierLegacy {
				line += " [2.0 API]"
			}
			fmt.Fprintln(&b, line)
			continue
		}
		all = false
		fmt.Fprintf(&b, "*** %s support not available\n", label)
	}

	if !all {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "To add a missing option, make sure you have the required")
		fmt.Fprintln(&b, "library, and set the corresponding root (e.g. freetype_root in")
		fmt.Fprintln(&b, "the config file, or --freetype-root).")
	}
	fmt.Fprintln(&b)

	_, err := io.WriteString(w, b.String())
	return err
}
