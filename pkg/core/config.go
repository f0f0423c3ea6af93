// pkg/core/config.go
package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// EnvFreetypeRoot overrides freetype_root when set
const EnvFreetypeRoot = "AGGBUILD_FREETYPE_ROOT"

// Config holds aggbuild configuration
type Config struct {
	// FreetypeRoot is a FreeType installation with lib/ and include/ below it
	FreetypeRoot string `yaml:"freetype_root,omitempty" hcl:"freetype_root,optional"`

	// FreetypeLibRoot and FreetypeIncludeRoot take precedence over FreetypeRoot
	FreetypeLibRoot     string `yaml:"freetype_lib_root,omitempty" hcl:"freetype_lib_root,optional"`
	FreetypeIncludeRoot string `yaml:"freetype_include_root,omitempty" hcl:"freetype_include_root,optional"`

	Prefix        string `yaml:"prefix,omitempty" hcl:"prefix,optional"`
	PythonVersion string `yaml:"python_version,omitempty" hcl:"python_version,optional"`
	Sysroot       string `yaml:"sysroot,omitempty" hcl:"sysroot,optional"`

	Compiler *CompilerConfig `yaml:"compiler,omitempty" hcl:"compiler,block"`

	LogLevel  string `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat string `yaml:"log_format" hcl:"log_format,optional"`
	Debug     bool   `yaml:"debug" hcl:"debug,optional"`
}

// CompilerConfig lists the compiler's own default search directories
type CompilerConfig struct {
	IncludeDirs []string `yaml:"include_dirs,omitempty" hcl:"include_dirs,optional"`
	LibraryDirs []string `yaml:"library_dirs,omitempty" hcl:"library_dirs,optional"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// FreetypeRoots returns the FreeType library and include directories.
// Both are empty when nothing is configured.
func (c *Config) FreetypeRoots() (lib, include string) {
	if c.FreetypeRoot != "" {
		lib = filepath.Join(c.FreetypeRoot, "lib")
		include = filepath.Join(c.FreetypeRoot, "include")
	}
	if c.FreetypeLibRoot != "" {
		lib = c.FreetypeLibRoot
	}
	if c.FreetypeIncludeRoot != "" {
		include = c.FreetypeIncludeRoot
	}
	return lib, include
}

// CompilerDirs returns the configured compiler default directories
func (c *Config) CompilerDirs() (include, library []string) {
	if c.Compiler == nil {
		return nil, nil
	}
	return c.Compiler.IncludeDirs, c.Compiler.LibraryDirs
}

// DefaultConfigPath returns $HOME/.config/aggbuild/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aggbuild", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Files ending in .hcl are read
// as HCL, anything else as YAML. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return applyEnv(DefaultConfig()), nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return applyEnv(DefaultConfig()), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var (
		cfg *Config
		err error
	)
	if strings.HasSuffix(path, ".hcl") {
		cfg, err = loadHCL(path)
	} else {
		cfg, err = loadYAML(path)
	}
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	return applyEnv(cfg), nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func loadHCL(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config %s: %w", path, diags)
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config %s: %w", path, diags)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) *Config {
	if root := os.Getenv(EnvFreetypeRoot); root != "" {
		cfg.FreetypeRoot = root
	}
	return cfg
}

// SaveConfig saves configuration to file as YAML
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// WriteConfig writes cfg to w as YAML
func WriteConfig(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return enc.Close()
}
