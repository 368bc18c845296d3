package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAppEnv(t *testing.T, env, name, version string) {
	t.Helper()
	t.Setenv(envAppEnv, env)
	t.Setenv(envAppServiceName, name)
	t.Setenv(envAppServiceVersion, version)
	t.Setenv(envConfigFile, "")
	t.Setenv(envConfigDir, "")
	t.Setenv(envConfigName, "")
}

func TestNewAppConfig_Success(t *testing.T) {
	// Arrange
	setAppEnv(t, "test", "marketplace", "1.0.0")

	// Act
	cfg, err := newAppConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "marketplace", cfg.ServiceName)
	assert.Equal(t, "1.0.0", cfg.ServiceVersion)
	assert.Equal(t, filepath.Join(defaultConfigDir, "config.test.yaml"), cfg.ConfigFile)
}

func TestNewAppConfig_MissingRequiredVariables(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		service string
		version string
		missing string
	}{
		{name: "app env", service: "marketplace", version: "1.0.0", missing: envAppEnv},
		{name: "service name", env: "test", version: "1.0.0", missing: envAppServiceName},
		{name: "service version", env: "test", service: "marketplace", missing: envAppServiceVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setAppEnv(t, tt.env, tt.service, tt.version)

			// Act
			_, err := newAppConfig()

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestNewAppConfig_ConfigFileResolution(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		dir      string
		confName string
		expected string
	}{
		{
			name:     "explicit file wins",
			file:     "/custom/path/config.yaml",
			dir:      "/ignored",
			expected: "/custom/path/config.yaml",
		},
		{
			name:     "custom dir",
			dir:      "/etc/marketplace",
			expected: filepath.Join("/etc/marketplace", "config.staging.yaml"),
		},
		{
			name:     "custom name",
			confName: "settings",
			expected: filepath.Join(defaultConfigDir, "settings.yaml"),
		},
		{
			name:     "custom dir and name",
			dir:      "/opt/conf",
			confName: "app",
			expected: filepath.Join("/opt/conf", "app.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setAppEnv(t, "staging", "marketplace", "2.0.0")
			t.Setenv(envConfigFile, tt.file)
			t.Setenv(envConfigDir, tt.dir)
			t.Setenv(envConfigName, tt.confName)

			// Act
			cfg, err := newAppConfig()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.ConfigFile)
		})
	}
}
