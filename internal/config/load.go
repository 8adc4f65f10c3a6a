package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/propolis-phd/phd-launch/internal/messages"
)

// Load resolves launcher settings from the first config file found, searching
// cwd then the user's home directory. Absence of a config file is not an
// error; the quickstart defaults apply.
func Load(cwd string) (Settings, error) {
	for _, path := range searchPaths(cwd) {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Settings{}, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
		}
		return Parse(data, path)
	}
	return DefaultSettings(), nil
}

// Parse decodes config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (Settings, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	return cfg.Resolve(), nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores (typos like
// scratch_dir for scratch-dir).
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// searchPaths returns candidate config locations in precedence order.
// Home resolution failure just drops the home candidate; the launcher must
// still work in minimal environments without HOME set.
func searchPaths(cwd string) []string {
	paths := []string{filepath.Join(cwd, FileName)}
	if home, err := homedir.Dir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, FileName))
	}
	return paths
}
