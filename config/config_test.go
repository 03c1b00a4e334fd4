package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/utils"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, utils.LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, 4096, cfg.MaxPromptLength)
	assert.InDelta(t, 0.7, cfg.DefaultTemperature, 1e-9)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "gpt-4o", cfg.TokenModel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PROMPTGEN_LOG_LEVEL", "debug")
	t.Setenv("PROMPTGEN_MAX_PROMPT_LENGTH", "128")
	t.Setenv("PROMPTGEN_RATE_LIMIT", "2.5")
	t.Setenv("PROMPTGEN_TECHNIQUES_CONFIG", "/etc/promptgen/techniques.yaml")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, utils.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, 128, cfg.MaxPromptLength)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)
	assert.Equal(t, "/etc/promptgen/techniques.yaml", cfg.TechniquesConfigPath)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("PROMPTGEN_LOG_LEVEL", "chatty")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("temperature out of range", func(t *testing.T) {
		t.Setenv("PROMPTGEN_DEFAULT_TEMPERATURE", "3")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("PROMPTGEN_LOG_FORMAT", "xml")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestConfigOptions(t *testing.T) {
	cfg := config.NewConfig()
	config.ApplyOptions(cfg,
		config.SetMaxConcurrency(0),
		config.SetRateLimit(10, 0),
		config.SetMaxPromptLength(-5),
		config.SetTokenModel(""),
		config.SetDefaultTemperature(0.2),
	)

	assert.Equal(t, 1, cfg.MaxConcurrency)
	assert.InDelta(t, 10.0, cfg.RateLimit, 1e-9)
	assert.Equal(t, 1, cfg.RateBurst)
	assert.Equal(t, 1, cfg.MaxPromptLength)
	assert.Empty(t, cfg.TokenModel)
	assert.NoError(t, cfg.Validate())
}

func TestNewLoggerHonoursFormat(t *testing.T) {
	cfg := config.NewConfig()

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.IsType(t, &utils.DefaultLogger{}, logger)

	config.ApplyOptions(cfg, config.SetLogFormat("json"))
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.IsType(t, &utils.ZapLogger{}, logger)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTechniqueConfigs(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "techniques.yaml", `
techniques:
  chain_of_thought:
    priority: 5
    parameters:
      enhanced_mode: false
  emotional_appeal:
    name: appeal
    enabled: false
`)
		cfgs, err := config.LoadTechniqueConfigs(path)
		require.NoError(t, err)
		require.Len(t, cfgs, 2)

		cot := cfgs["chain_of_thought"]
		assert.Equal(t, "chain_of_thought", cot.Name)
		assert.Equal(t, 5, cot.Priority)
		assert.Equal(t, false, cot.Parameters["enhanced_mode"])
		assert.True(t, cot.IsEnabled())

		appeal := cfgs["emotional_appeal"]
		assert.Equal(t, "appeal", appeal.Name)
		assert.False(t, appeal.IsEnabled())
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "techniques.toml", `
[techniques.few_shot]
priority = 2

[techniques.few_shot.parameters]
max_examples = 3
`)
		cfgs, err := config.LoadTechniqueConfigs(path)
		require.NoError(t, err)

		fs := cfgs["few_shot"]
		assert.Equal(t, "few_shot", fs.Name)
		assert.Equal(t, 2, fs.Priority)
		assert.EqualValues(t, 3, fs.Parameters["max_examples"])
	})

	t.Run("priority out of range", func(t *testing.T) {
		path := writeFile(t, "techniques.yml", "techniques:\n  react:\n    priority: 500\n")
		_, err := config.LoadTechniqueConfigs(path)
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "techniques.ini", "")
		_, err := config.LoadTechniqueConfigs(path)
		assert.ErrorContains(t, err, "unsupported")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadTechniqueConfigs(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
