package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultQuickPreview, cfg.Preview.Quick)
	assert.Equal(t, DefaultFullPreview, cfg.Preview.Full)
	assert.Zero(t, cfg.TimeoutSeconds)
	assert.Empty(t, cfg.Checks.Overrides)
	assert.Empty(t, cfg.Checks.Extra)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
checks:
  overrides:
    Static Analysis: vendor/bin/phpstan analyse --level=8
  extra:
    - name: License Audit
      category: Security
      command: composer licenses
      required: false
      if_exists: composer.json
preview:
  quick: 2
  full: 10
timeout: 120
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "vendor/bin/phpstan analyse --level=8", cfg.Checks.Overrides["Static Analysis"])
	require.Len(t, cfg.Checks.Extra, 1)
	extra := cfg.Checks.Extra[0]
	assert.Equal(t, "License Audit", extra.Name)
	assert.Equal(t, "Security", extra.Category)
	assert.Equal(t, "composer licenses", extra.Command)
	require.NotNil(t, extra.Required)
	assert.False(t, *extra.Required)
	assert.Equal(t, "composer.json", extra.IfExists)

	assert.Equal(t, 2, cfg.Preview.Quick)
	assert.Equal(t, 10, cfg.Preview.Full)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "timeout: 30\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, DefaultQuickPreview, cfg.Preview.Quick)
	assert.Equal(t, DefaultFullPreview, cfg.Preview.Full)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "checks: [not a mapping")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"extra without name",
			"checks:\n  extra:\n    - command: echo hi\n",
			"missing name",
		},
		{
			"extra without command",
			"checks:\n  extra:\n    - name: thing\n",
			"missing command",
		},
		{
			"duplicate extra names",
			"checks:\n  extra:\n    - name: thing\n      command: echo a\n    - name: thing\n      command: echo b\n",
			"duplicate name",
		},
		{
			"negative timeout",
			"timeout: -5\n",
			"timeout",
		},
		{
			"negative preview",
			"preview:\n  quick: -1\n",
			"preview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
