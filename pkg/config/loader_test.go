package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFGTEST_ADDR" envDefault:":80"`
	Length  int           `env:"CFGTEST_LENGTH" envDefault:"16"`
	Bind    bool          `env:"CFGTEST_BIND" envDefault:"false"`
	Timeout time.Duration `env:"CFGTEST_TIMEOUT" envDefault:"30s"`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Required string `env:"CFGTEST_REQUIRED,required"`
}

type fileConfig struct {
	Users string `env:"CFGTEST_USERS"`
	Name  string `env:"CFGTEST_NAME"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":80", cfg.Addr)
	assert.Equal(t, 16, cfg.Length)
	assert.False(t, cfg.Bind)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_CACHED", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))

	t.Setenv("CFGTEST_CACHED", "second")
	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)

	fresh, err := config.Parse[cachedConfig]()
	require.NoError(t, err)
	assert.Equal(t, "second", fresh.Value)

	config.ResetCache()
	var c cachedConfig
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "second", c.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	// a failed parse is retried on the next call
	t.Setenv("CFGTEST_REQUIRED", "now-set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now-set", cfg.Required)

	assert.Panics(t, func() {
		config.ResetCache()
		os.Unsetenv("CFGTEST_REQUIRED")
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_USERS=admin:admin,user1:user1\nCFGTEST_NAME=\"from file\"\n"), 0o600))

	// registered before LoadEnv so the variables are removed afterwards
	t.Setenv("CFGTEST_USERS", "")
	os.Unsetenv("CFGTEST_USERS")
	t.Setenv("CFGTEST_NAME", "from env")

	require.NoError(t, config.LoadEnv(path))
	cfg, err := config.Parse[fileConfig]()
	require.NoError(t, err)
	assert.Equal(t, "admin:admin,user1:user1", cfg.Users)
	assert.Equal(t, "from env", cfg.Name, "process env wins over the file")

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(dir, "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(dir, "missing.env")) })
	})

	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
