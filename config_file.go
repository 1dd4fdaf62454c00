package cents

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormat is the encoding of a config document.
type ConfigFormat uint8

const (
	FormatJSON ConfigFormat = iota
	FormatTOML
	FormatYAML
)

func (f ConfigFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("ConfigFormat(%d)", uint8(f))
}

// ConfigFormatOf returns the format of a config file based on its extension:
// ".json", ".toml", ".yaml" or ".yml".
func ConfigFormatOf(path string) (ConfigFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidConfig, ext)
	}
}

// document is the part of a config document read before the overlay.
type document struct {
	Locale *Locale `json:"locale" toml:"locale" yaml:"locale"`
}

// Decode returns config c overlaid with the fields present in the document.
// Fields absent from the document keep the values of c.
// If the document names a locale, for example
//
//	locale = "de-CH"
//	symbol = "Fr."
//
// the [Locale.Config] of that locale replaces c before the overlay.
// The increment should be written as a string, e.g. increment = "0.05".
//
// Decode returns an error if the document is malformed or the resulting
// config is not valid.
func (c Config) Decode(f ConfigFormat, data []byte) (Config, error) {
	d, err := c.decode(f, data)
	if err != nil {
		return Config{}, fmt.Errorf("decoding %v config: %w", f, err)
	}
	return d, nil
}

func (c Config) decode(f ConfigFormat, data []byte) (Config, error) {
	var unmarshal func([]byte, any) error
	switch f {
	case FormatJSON:
		unmarshal = json.Unmarshal
	case FormatTOML:
		unmarshal = toml.Unmarshal
	case FormatYAML:
		unmarshal = yaml.Unmarshal
	default:
		return Config{}, fmt.Errorf("%w: unsupported format %v", ErrInvalidConfig, f)
	}

	// Base
	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return Config{}, err
	}
	if doc.Locale != nil {
		c = doc.Locale.Config()
	}

	// Overlay
	if err := unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load is like [Config.Decode] but reads the document from a file.
// The format is chosen with [ConfigFormatOf].
func (c Config) Load(path string) (Config, error) {
	f, err := ConfigFormatOf(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %v: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	d, err := c.Decode(f, data)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %v: %w", path, err)
	}
	return d, nil
}
