package config

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Parse parses YAML data into a Config struct. It returns an error if
// the YAML is malformed, contains unknown fields, or has type
// mismatches. Empty input returns a zero-value Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(&cfg)
	if errors.Is(err, io.EOF) {
		return &cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return &cfg, nil
}

// Marshal marshals a Config struct to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return data, nil
}
