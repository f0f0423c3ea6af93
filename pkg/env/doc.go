// pkg/env/doc.go
package env

/*
Package env knows how native libraries and headers are laid out on disk and
how the compiler is told about them.

It handles:
  - Library file naming conventions per platform (libfoo.so, libfoo.dylib,
    libfoo.dll.a, foo.lib, ...)
  - Finding the first library or header along an ordered list of directories
  - Rendering -D, -I, -L and -l compiler flags

Basic Usage:

    lib := env.FindLibrary(dirs, "freetype", platform.KindDarwin)
    if lib != nil {
        fmt.Printf("Found: %s at %s\n", lib.Name, lib.Path)
    }

    flags := env.NewCompilerFlags(defines, includes, libDirs, libs)
    for _, flag := range flags.IncludeFlags {
        fmt.Println(flag) // -I/opt/homebrew/include
    }

Only exact file names are matched: a versioned runtime library such as
libfreetype.so.6 without its libfreetype.so development link cannot be
linked with -lfreetype and is not reported.
*/
