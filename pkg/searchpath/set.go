// Package searchpath holds the ordered include and library directories
// handed to the native compiler.
package searchpath

import (
	"os"
	"slices"
)

// Origin records which rule contributed a directory
type Origin string

const (
	OriginPlatform  Origin = "platform"
	OriginNix       Origin = "nix"
	OriginBrew      Origin = "brew"
	OriginMultiarch Origin = "multiarch"
	OriginPrefix    Origin = "prefix"
	OriginOverride  Origin = "override"
	OriginGeneric   Origin = "generic"
	OriginCompiler  Origin = "compiler"
	OriginFeature   Origin = "feature"
)

// Entry is one directory in a search list
type Entry struct {
	Path   string `yaml:"path" json:"path"`
	Origin Origin `yaml:"origin" json:"origin"`
}

// Set is a pair of ordered, duplicate-free directory lists. Directories
// that do not exist are never added. Once frozen, a Set must not change.
type Set struct {
	include []Entry
	library []Entry
	frozen  bool
}

// New returns an empty Set
func New() *Set {
	return &Set{}
}

// AddInclude appends dir to the include list
func (s *Set) AddInclude(dir string, origin Origin) bool {
	return s.add(&s.include, -1, dir, origin)
}

// AddLibrary appends dir to the library list
func (s *Set) AddLibrary(dir string, origin Origin) bool {
	return s.add(&s.library, -1, dir, origin)
}

// InsertInclude inserts dir at position where in the include list
func (s *Set) InsertInclude(where int, dir string, origin Origin) bool {
	return s.add(&s.include, where, dir, origin)
}

// InsertLibrary inserts dir at position where in the library list
func (s *Set) InsertLibrary(where int, dir string, origin Origin) bool {
	return s.add(&s.library, where, dir, origin)
}

func (s *Set) add(list *[]Entry, where int, dir string, origin Origin) bool {
	if s.frozen {
		panic("searchpath: add to frozen set")
	}
	if dir == "" || !isDir(dir) || indexOf(*list, dir) >= 0 {
		return false
	}

	e := Entry{Path: dir, Origin: origin}
	if where < 0 || where >= len(*list) {
		*list = append(*list, e)
	} else {
		*list = slices.Insert(*list, where, e)
	}
	return true
}

// Freeze marks the set read-only and returns it
func (s *Set) Freeze() *Set {
	s.frozen = true
	return s
}

// Frozen reports whether Freeze was called
func (s *Set) Frozen() bool {
	return s.frozen
}

// Clone returns an unfrozen copy
func (s *Set) Clone() *Set {
	return &Set{
		include: slices.Clone(s.include),
		library: slices.Clone(s.library),
	}
}

// Includes returns the include directories in priority order
func (s *Set) Includes() []string {
	return paths(s.include)
}

// Libraries returns the library directories in priority order
func (s *Set) Libraries() []string {
	return paths(s.library)
}

// IncludeEntries returns the include list with origins
func (s *Set) IncludeEntries() []Entry {
	return slices.Clone(s.include)
}

// LibraryEntries returns the library list with origins
func (s *Set) LibraryEntries() []Entry {
	return slices.Clone(s.library)
}

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func indexOf(entries []Entry, dir string) int {
	return slices.IndexFunc(entries, func(e Entry) bool { return e.Path == dir })
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
