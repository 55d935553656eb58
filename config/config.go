package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gasup/engine"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalid wraps every schema violation
var ErrInvalid = errors.New("invalid config")

var schema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Default returns the compiled-in configuration
func Default() engine.Config {
	return engine.DefaultConfig()
}

// Load reads a YAML file and overlays it on the defaults
// Keys absent from the file keep their default values
func Load(path string) (engine.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return engine.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates YAML bytes against the schema and decodes them over the defaults
func Parse(raw []byte) (engine.Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}
	if err := validate(raw); err != nil {
		return engine.Config{}, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return engine.Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// validate converts the YAML document to its JSON form and checks it against the schema
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if doc == nil {
		return nil
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Marshal renders cfg as YAML, the format Load accepts
func Marshal(cfg engine.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
