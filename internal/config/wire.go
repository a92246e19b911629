package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal serializes the configuration to its canonical YAML wire format.
// A configuration round-trips through Marshal and Parse without semantic
// loss.
func (c *FilterConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal configuration: %w", err)
	}
	return data, nil
}

// Parse decodes a configuration from its YAML wire format.
// Malformed input yields a *ParseError; the caller decides whether to
// abort or fall back to a template.
func Parse(data []byte) (*FilterConfig, error) {
	var cfg FilterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &cfg, nil
}
