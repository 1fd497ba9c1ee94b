package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const rocketFile = "rocket.yaml"

// LoadRocket returns the rocket configuration. A non-empty customPath must
// exist and parse. Otherwise the first valid file among
// ~/.arcade/configs/rocket.yaml and ./configs/rocket.yaml wins, then the
// embedded default.
//
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names. Unknown keys are rejected.
func LoadRocket(customPath string) (RocketConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultRocketConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths(rocketFile) {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultRocketConfig()
	if err := decodeStrict(defaultRocketYAML, &cfg); err != nil {
		return DefaultRocketConfig(), nil
	}
	return cfg, nil
}

func loadFile(path string) (RocketConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RocketConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := DefaultRocketConfig()
	if err := decodeStrict(data, &cfg); err != nil {
		return RocketConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// decodeStrict decodes one YAML document into out. An empty document
// leaves out untouched.
func decodeStrict(data []byte, out *RocketConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// searchPaths lists the fallback locations of filename, highest priority
// first.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}
