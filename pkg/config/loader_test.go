package config_test

import (
	"os"
	"testing"

	"github.com/dmitrymomot/identkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string   `env:"NAME" envDefault:"default"`
	Count int      `env:"COUNT" envDefault:"3"`
	List  []string `env:"LIST" envSeparator:";"`
}

type requiredConfig struct {
	Value string `env:"CFGTEST_REQUIRED,required"`
}

func TestLoadWithPrefix(t *testing.T) {
	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv("CFGTEST_NAME", "custom")
		t.Setenv("CFGTEST_COUNT", "7")
		t.Setenv("CFGTEST_LIST", " =-;_=-")

		var cfg testConfig
		require.NoError(t, config.LoadWithPrefix(&cfg, "CFGTEST_"))
		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
		assert.Equal(t, []string{" =-", "_=-"}, cfg.List)
	})

	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.LoadWithPrefix(&cfg, "CFGTEST_UNSET_"))
		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Nil(t, cfg.List)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CFGTEST_COUNT", "many")

		var cfg testConfig
		err := config.LoadWithPrefix(&cfg, "CFGTEST_")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoadWithPrefix_Required(t *testing.T) {
	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.LoadWithPrefix(&cfg, "")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required present", func(t *testing.T) {
		t.Setenv("CFGTEST_REQUIRED", "yes")

		var cfg requiredConfig
		require.NoError(t, config.LoadWithPrefix(&cfg, ""))
		assert.Equal(t, "yes", cfg.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *requiredConfig
		assert.ErrorIs(t, config.LoadWithPrefix(cfg, ""), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		t.Setenv("CFGTEST_NAME", "")
		t.Setenv("CFGTEST_LIST", "")
		// godotenv does not override variables that are already set.
		os.Unsetenv("CFGTEST_NAME")
		os.Unsetenv("CFGTEST_LIST")

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg testConfig
		require.NoError(t, config.LoadWithPrefix(&cfg, "CFGTEST_"))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, []string{"a=b", "c=d"}, cfg.List)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
