// pkg/env/types.go
package env

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "freetype")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll.a", ".lib"
	IsStatic bool   // True for .a files
}

// Pattern is one file name convention for a library
type Pattern struct {
	Prefix   string // "lib" or ""
	Suffix   string // "", "_d" (MSVC debug builds)
	Ext      string
	IsStatic bool
}

// FileName returns the file name for library name
func (p Pattern) FileName(name string) string {
	return p.Prefix + name + p.Suffix + p.Ext
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	DefineFlags  []string // -D flags
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}
