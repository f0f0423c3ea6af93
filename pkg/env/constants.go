// pkg/env/constants.go
package env

import "github.com/arc-language/aggbuild/pkg/platform"

// LibraryPatterns returns the file names a linker accepts for a library,
// in lookup order, for the given platform kind
func LibraryPatterns(kind platform.Kind) []Pattern {
	switch kind {
	case platform.KindWindows:
		return []Pattern{
			{Ext: ".lib"},
			{Suffix: "_d", Ext: ".lib"},
		}
	case platform.KindCygwin:
		return []Pattern{
			{Prefix: "lib", Ext: ".dll.a"},
			{Prefix: "lib", Ext: ".a", IsStatic: true},
			{Prefix: "cyg", Ext: ".dll"},
		}
	case platform.KindDarwin:
		return []Pattern{
			{Prefix: "lib", Ext: ".dylib"},
			{Prefix: "lib", Ext: ".tbd"},
			{Prefix: "lib", Ext: ".so"},
			{Prefix: "lib", Ext: ".a", IsStatic: true},
		}
	default: // linux, etc.
		return []Pattern{
			{Prefix: "lib", Ext: ".so"},
			{Prefix: "lib", Ext: ".a", IsStatic: true},
		}
	}
}
