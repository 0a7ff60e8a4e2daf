package precommit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse decodes a pre-commit document. Keys that Config does not model are
// rejected so that no part of a user's hook config is silently dropped.
func Parse(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing pre-commit config: %w", err)
	}
	return c, nil
}

// Load reads and validates a pre-commit document from path. It is used to
// replace the default hook set with one supplied by the user.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading hook config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("hook config %s: %w", path, err)
	}
	return c, nil
}
