package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.Backup.Enabled)
	assert.Equal(t, 50, config.Backup.Keep)
	assert.Contains(t, config.Backup.Dir, "chasave")
	assert.True(t, config.Editor.AtomicWrites)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("negative keep", func(t *testing.T) {
		config := DefaultConfig()
		config.Backup.Keep = -1
		assert.Error(t, config.Validate())
	})

	t.Run("backups without dir", func(t *testing.T) {
		config := DefaultConfig()
		config.Backup.Dir = ""
		assert.Error(t, config.Validate())

		config.Backup.Enabled = false
		assert.NoError(t, config.Validate())
	})

	t.Run("unknown log format", func(t *testing.T) {
		config := DefaultConfig()
		config.Logging.Format = "xml"
		err := config.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logging.format")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing yaml config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		expectedConfig := &Config{
			Backup: Backup{
				Enabled: true,
				Dir:     "/custom/backups",
				Keep:    5,
			},
			Editor: Editor{
				AtomicWrites: false,
			},
			Logging: Logging{
				Level:  "debug",
				Format: "json",
			},
		}

		err := SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("load toml config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		content := `
[backup]
enabled = false
keep = 3

[logging]
level = "warn"
format = "json"
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.False(t, loadedConfig.Backup.Enabled)
		assert.Equal(t, 3, loadedConfig.Backup.Keep)
		assert.Equal(t, "warn", loadedConfig.Logging.Level)
		assert.Equal(t, "json", loadedConfig.Logging.Format)
		assert.True(t, loadedConfig.Editor.AtomicWrites, "missing keys keep defaults")
	})

	t.Run("partial yaml keeps defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: debug\n"), 0644))

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "debug", loadedConfig.Logging.Level)
		assert.Equal(t, "console", loadedConfig.Logging.Format)
		assert.True(t, loadedConfig.Backup.Enabled)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("load invalid values", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("backup:\n  keep: -4\n"), 0644))

		_, err := LoadConfig(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backup.keep")
	})
}

func TestSaveConfig(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), name)
			config := DefaultConfig()

			err := SaveConfig(config, configPath)
			require.NoError(t, err)

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			loadedConfig, err := LoadConfig(configPath)
			require.NoError(t, err)
			assert.Equal(t, config, loadedConfig)
		})
	}
}

func TestBootstrapConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "chasave", "config.yaml")
	backupDir := "/custom/backup/dir"

	config, err := BootstrapConfig(configPath, backupDir)
	require.NoError(t, err)

	assert.Equal(t, backupDir, config.Backup.Dir)
	assert.Equal(t, "info", config.Logging.Level)
	assert.True(t, ConfigExists(configPath))

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "chasave")
	assert.Contains(t, path, "config.yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err := os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLMarshalling(t *testing.T) {
	config := &Config{
		Backup:  Backup{Enabled: true, Dir: "/test/backups", Keep: 9},
		Editor:  Editor{AtomicWrites: true},
		Logging: Logging{Level: "warn", Format: "console"},
	}

	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "atomic_writes: true")

	var unmarshalled Config
	err = yaml.Unmarshal(data, &unmarshalled)
	require.NoError(t, err)

	assert.Equal(t, config, &unmarshalled)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	config := DefaultConfig()

	// a regular file cannot act as the config directory
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	invalidPath := filepath.Join(blocker, "nested", "config.yaml")

	err := SaveConfig(config, invalidPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}
