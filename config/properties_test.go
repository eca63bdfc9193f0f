package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type serverProperties struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"`
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestProperties_Default(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "properties.yaml", "address: ':8080'\nmode: dev\n")

	props, err := Properties[serverProperties](dir)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", props.Address)
	assert.Equal(t, "dev", props.Mode)
}

func TestProperties_ExplicitProfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "properties-prod.yaml", "address: ':80'\nmode: production\n")

	props, err := Properties[serverProperties](dir, "prod")
	assert.NoError(t, err)
	assert.Equal(t, "production", props.Mode)
}

func TestProperties_ProfileFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "properties-staging.yaml", "address: ':8081'\nmode: staging\n")

	t.Setenv(ProfileEnv, "staging")

	props, err := Properties[serverProperties](dir)
	assert.NoError(t, err)
	assert.Equal(t, "staging", props.Mode)
}

func TestProperties_ArgumentOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "properties-prod.yaml", "mode: production\n")
	writeFile(t, dir, "properties-staging.yaml", "mode: staging\n")

	t.Setenv(ProfileEnv, "staging")

	props, err := Properties[serverProperties](dir, "prod")
	assert.NoError(t, err)
	assert.Equal(t, "production", props.Mode)
}

func TestProperties_MissingFile(t *testing.T) {
	_, err := Properties[serverProperties](t.TempDir())
	assert.Error(t, err)
}

func TestProperties_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "properties.yaml", "address: [unclosed\n")

	_, err := Properties[serverProperties](dir)
	assert.Error(t, err)
}
