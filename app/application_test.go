package app

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCleanEnv(t *testing.T) {
	t.Helper()
	originalEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, env := range originalEnv {
			if pair := strings.SplitN(env, "=", 2); len(pair) == 2 && pair[0] != "" {
				_ = os.Setenv(pair[0], pair[1])
			}
		}
	})
	os.Clearenv()
}

func TestNewApplication(t *testing.T) {
	t.Run("MissingRequiredConfig", func(t *testing.T) {
		withCleanEnv(t)

		app, err := NewApplication()
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("AssetLoadFailure", func(t *testing.T) {
		withCleanEnv(t)
		require.NoError(t, os.Setenv("WEATHER_API_KEY", "test-weather-key"))
		require.NoError(t, os.Setenv("TIMEZONE_API_KEY", "test-timezone-key"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "memory"))
		// An empty assets directory has none of the manifest files
		require.NoError(t, os.Setenv("ASSETS_DIR", t.TempDir()))

		app, err := NewApplication()
		assert.Error(t, err)
		assert.Nil(t, app)
		assert.Contains(t, err.Error(), "assets")
	})
}

func TestConfigDisplayer(t *testing.T) {
	t.Run("MaskString", func(t *testing.T) {
		displayer := NewConfigDisplayer()

		assert.Equal(t, "****", displayer.maskString("abc"))
		assert.Equal(t, "****", displayer.maskString(""))
		assert.Equal(t, "very************", displayer.maskString("verylongpassword"))
	})

	t.Run("IsSensitive", func(t *testing.T) {
		displayer := NewConfigDisplayer()

		assert.True(t, displayer.isSensitive("WEATHER_API_KEY"))
		assert.True(t, displayer.isSensitive("REDIS_PASSWORD"))
		assert.True(t, displayer.isSensitive("timezone_api_key"))
		assert.False(t, displayer.isSensitive("SERVER_PORT"))
		assert.False(t, displayer.isSensitive("ASSETS_DIR"))
	})

	t.Run("PrintAllEnvVars", func(t *testing.T) {
		require.NoError(t, os.Setenv("TEST_VAR", "test_value"))
		defer func() { _ = os.Unsetenv("TEST_VAR") }()

		assert.NotPanics(t, func() {
			NewConfigDisplayer().PrintAllEnvVars()
		})
	})
}

func TestApplicationLifecycle(t *testing.T) {
	t.Run("ShutdownWithNilStore", func(t *testing.T) {
		app := &Application{}

		assert.NotPanics(t, func() {
			assert.NoError(t, app.Shutdown())
		})
	})

	t.Run("ConfigGetter", func(t *testing.T) {
		app := &Application{}
		assert.Nil(t, app.Config())
	})
}
