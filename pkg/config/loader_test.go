package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/config"
)

type apiConfig struct {
	BaseURL string        `env:"TEST_API_BASE_URL" envDefault:"http://localhost:3000/api"`
	Timeout time.Duration `env:"TEST_API_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg apiConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:3000/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first apiConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not change the
	// cached result.
	t.Setenv("TEST_API_BASE_URL", "http://changed.example.com")

	var second apiConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *apiConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
