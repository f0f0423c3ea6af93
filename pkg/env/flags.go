package env

import (
	"strings"
)

// Define is a preprocessor macro with an optional value
type Define struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
}

// String renders the define the way it appears after -D
func (d Define) String() string {
	if d.Value == "" {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

// NewCompilerFlags renders flags for a unix-style compiler driver
func NewCompilerFlags(defines []Define, includeDirs, libraryDirs, libraries []string) CompilerFlags {
	var f CompilerFlags
	for _, d := range defines {
		f.DefineFlags = append(f.DefineFlags, "-D"+d.String())
	}
	for _, dir := range includeDirs {
		f.IncludeFlags = append(f.IncludeFlags, "-I"+dir)
	}
	for _, dir := range libraryDirs {
		f.LibraryFlags = append(f.LibraryFlags, "-L"+dir)
	}
	for _, lib := range libraries {
		f.LinkFlags = append(f.LinkFlags, "-l"+lib)
	}
	return f
}

// Cflags returns the preprocessor and include flags joined by spaces
func (f CompilerFlags) Cflags() string {
	return strings.Join(append(append([]string{}, f.DefineFlags...), f.IncludeFlags...), " ")
}

// Libs returns the library search and link flags joined by spaces
func (f CompilerFlags) Libs() string {
	return strings.Join(append(append([]string{}, f.LibraryFlags...), f.LinkFlags...), " ")
}
