package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is implemented by the TOML and YAML decoders.
type Decoder interface {
	Decode(v any) error
}

type DecoderFunc func(r io.Reader) Decoder

func tomlDecoder(r io.Reader) Decoder {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	return d
}

func yamlDecoder(r io.Reader) Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// DecoderFor picks the decoder matching the extension of filename.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlDecoder, nil
	case ".yaml", ".yml":
		return yamlDecoder, nil
	}
	return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, filepath.Ext(filename))
}

// Load reads and validates the config at filename.
func Load(filename string) (*Config, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), f)
}

// Read decodes a config from reader on top of the defaults.
func Read(reader io.Reader, f DecoderFunc) (*Config, error) {
	cfg := Default()
	cfg.Waypoints = nil
	if err := f(reader).Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Waypoints == nil {
		cfg.Waypoints = defaultWaypoints()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
