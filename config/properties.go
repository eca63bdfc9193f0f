package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProfileEnv selects the active configuration profile when no explicit
// profile is passed to Properties.
const ProfileEnv = "APP_PROFILE"

// Properties loads the configuration file for the active profile into a
// fresh T. The file resolves to properties.yaml in dir, or
// properties-<profile>.yaml when a profile is given either as an argument or
// through the APP_PROFILE environment variable.
func Properties[T any](dir string, profile ...string) (*T, error) {
	fileName := filepath.Join(dir, fileNameFor(profile...))

	data, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", fileName, err)
	}

	properties := new(T)
	if err := yaml.Unmarshal(data, properties); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", fileName, err)
	}
	return properties, nil
}

func fileNameFor(profile ...string) string {
	active := os.Getenv(ProfileEnv)
	if len(profile) > 0 && profile[0] != "" {
		active = profile[0]
	}
	if active == "" {
		return "properties.yaml"
	}
	return fmt.Sprintf("properties-%s.yaml", active)
}
