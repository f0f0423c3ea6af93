package buildcfg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"
)

// Format selects how a Config is serialized
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatFlags Format = "flags"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatFlags:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want yaml, json or flags)", s)
	}
}

// Encode writes cfg to w in format
func Encode(w io.Writer, cfg *Config, format Format) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatFlags:
		flags := cfg.Flags()
		_, err := fmt.Fprintf(w, "CFLAGS=%s\nLDFLAGS=%s\nSOURCES=%s\n",
			flags.Cflags(), flags.Libs(), strings.Join(cfg.Sources, " "))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile writes cfg to path. A ".xz" or ".zst" suffix compresses the
// output.
func WriteFile(path string, cfg *Config, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var zw io.WriteCloser
	switch {
	case strings.HasSuffix(path, ".xz"):
		zw, err = xz.NewWriter(f)
	case strings.HasSuffix(path, ".zst"):
		zw, err = zstd.NewWriter(f)
	default:
		return Encode(f, cfg, format)
	}
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}

	if err := Encode(zw, cfg, format); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing compressed stream: %w", err)
	}
	return nil
}
