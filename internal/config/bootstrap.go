package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnsureUserConfig makes sure dataDir holds a config.yml the user can edit.
// The shipped default (config/config.yml) is copied on first run; if that
// file is missing too (bare binary deploy), built-in defaults are written.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return userPath, writeDefault(userPath)
		}
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}

func writeDefault(path string) error {
	b, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
