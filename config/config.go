// Package config loads docweave settings from built-in defaults, an optional
// YAML or TOML file, and DOCWEAVE_* environment variables, in that order.
package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlenc "github.com/pelletier/go-toml/v2"
	yamlenc "gopkg.in/yaml.v3"

	"github.com/tsawler/docweave/srs"
	"github.com/tsawler/docweave/style"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DOCWEAVE_"

// Config holds the effective settings.
type Config struct {
	Output   string        `koanf:"output" yaml:"output" toml:"output"`
	Metadata Metadata      `koanf:"metadata" yaml:"metadata" toml:"metadata"`
	Styles   []StyleConfig `koanf:"styles" yaml:"styles,omitempty" toml:"styles,omitempty"`
}

// Metadata holds the document properties.
type Metadata struct {
	Title    string   `koanf:"title" yaml:"title" toml:"title"`
	Subject  string   `koanf:"subject" yaml:"subject" toml:"subject"`
	Author   string   `koanf:"author" yaml:"author" toml:"author"`
	Keywords []string `koanf:"keywords" yaml:"keywords" toml:"keywords"`
}

// StyleConfig overrides or adds one style. Color accepts "#RRGGBB" or a color
// name; Align accepts left, center or right.
type StyleConfig struct {
	Name  string  `koanf:"name" yaml:"name" toml:"name"`
	Font  string  `koanf:"font" yaml:"font" toml:"font"`
	Size  float64 `koanf:"size" yaml:"size" toml:"size"`
	Color string  `koanf:"color" yaml:"color,omitempty" toml:"color,omitempty"`
	Bold  bool    `koanf:"bold" yaml:"bold,omitempty" toml:"bold,omitempty"`
	Align string  `koanf:"align" yaml:"align,omitempty" toml:"align,omitempty"`
}

// Spec converts the entry to a style spec.
func (s StyleConfig) Spec() (style.StyleSpec, error) {
	spec := style.StyleSpec{
		Name:       s.Name,
		FontFamily: s.Font,
		SizePt:     s.Size,
		Color:      style.Black,
		Bold:       s.Bold,
	}
	if s.Color != "" {
		c, err := style.ParseColor(s.Color)
		if err != nil {
			return style.StyleSpec{}, fmt.Errorf("style %q: %w", s.Name, err)
		}
		spec.Color = c
	}
	align, err := style.ParseAlignment(s.Align)
	if err != nil {
		return style.StyleSpec{}, fmt.Errorf("style %q: %w", s.Name, err)
	}
	spec.Alignment = align
	if err := spec.Validate(); err != nil {
		return style.StyleSpec{}, err
	}
	return spec, nil
}

// defaults returns the built-in settings as a flat key map.
func defaults() map[string]interface{} {
	m := srs.Metadata()
	return map[string]interface{}{
		"output":            srs.DefaultOutput,
		"metadata.title":    m.Title,
		"metadata.subject":  m.Subject,
		"metadata.author":   m.Author,
		"metadata.keywords": m.Keywords,
	}
}

// Load builds the configuration. path may be empty; when set, the file must
// exist and its extension selects the parser (.yaml, .yml or .toml).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// envKey maps DOCWEAVE_METADATA_TITLE to metadata.title.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// StyleSheet applies the configured style overrides to base. Two overrides
// with the same name fail with *style.DuplicateStyleError.
func (c *Config) StyleSheet(base []style.StyleSpec) ([]style.StyleSpec, error) {
	seen := make(map[string]bool, len(c.Styles))
	overrides := make([]style.StyleSpec, 0, len(c.Styles))
	for _, sc := range c.Styles {
		if seen[sc.Name] {
			return nil, &style.DuplicateStyleError{Name: sc.Name}
		}
		seen[sc.Name] = true
		spec, err := sc.Spec()
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, spec)
	}
	return style.MergeSheet(base, overrides), nil
}

// Encode renders the configuration as "yaml" or "toml".
func (c *Config) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yamlenc.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case "toml":
		out, err := tomlenc.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want yaml or toml)", format)
	}
}
