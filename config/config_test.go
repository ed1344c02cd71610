package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, Load(v))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "dracula", cfg.Style)
	assert.Equal(t, 80, cfg.WordWrap)
	assert.Empty(t, cfg.LinkBase)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsummary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: Markdown\nword_wrap: 100\nstyle: light\n"), 0644))
	t.Setenv("DOCSUMMARY_STYLE", "notty")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, Load(v))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, 100, cfg.WordWrap)
	assert.Equal(t, "notty", cfg.Style)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, Load(v))
}

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	v.Set("format", "pdf")
	v.Set("log_level", "debug")
	v.Set("word_wrap", 60)
	v.Set("link_base", "https://docs.example.com/ref")

	require.NoError(t, CheckConfigValidity(v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("format", "docx")
	v.Set("log_level", "loud")
	v.Set("word_wrap", 0)
	v.Set("link_base", "docs")

	err := CheckConfigValidity(v)
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		`format "docx" must be one of`,
		`log_level "loud"`,
		"word_wrap must be greater than 0",
		`link_base "docs"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = ParseLevel("")
	require.Error(t, err)
}
