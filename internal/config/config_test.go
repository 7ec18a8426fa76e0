package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Valid config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		content := `{"api_key": "test-key", "database_url": "postgres://localhost/talent", "question_count": 3}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, "postgres://localhost/talent", cfg.DatabaseURL)
		assert.Equal(t, 3, cfg.QuestionCount)
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError bool
	}{
		{name: "Zero value is valid", cfg: Config{}},
		{name: "Reasonable question count", cfg: Config{QuestionCount: 5}},
		{name: "Negative question count", cfg: Config{QuestionCount: -1}, wantError: true},
		{name: "Excessive question count", cfg: Config{QuestionCount: 100}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "flag-key"}
	defaults := Config{
		APIKey:        "default-key",
		DatabaseURL:   "postgres://localhost/talent",
		QuestionCount: 5,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Set values win over defaults.
	assert.Equal(t, "flag-key", merged.APIKey)
	// Empty values are filled from defaults.
	assert.Equal(t, "postgres://localhost/talent", merged.DatabaseURL)
	assert.Equal(t, 5, merged.QuestionCount)
}

func TestConfig_MergeWithDefaults_QuestionCount(t *testing.T) {
	t.Run("Unset count takes the file value", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(Config{QuestionCount: 10})
		assert.Equal(t, 10, merged.QuestionCount)
	})

	t.Run("Explicit count wins over the file value", func(t *testing.T) {
		cfg := Config{QuestionCount: 7}
		merged := cfg.MergeWithDefaults(Config{QuestionCount: 10})
		assert.Equal(t, 7, merged.QuestionCount)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/talent")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/talent", cfg.DatabaseURL)
}
