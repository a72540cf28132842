package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(contents), 0600))
	return p
}

func TestLoadApplicationConfig_FromFile(t *testing.T) {
	p := writeConfig(t, `
distro: "Arch Linux"
cache:
  dir: /var/cache/glyphs
  keyed: true
log:
  level: debug
  structured: true
`)

	cfg, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: p})
	require.NoError(t, err)

	assert.Equal(t, p, cfg.ConfigPath)
	assert.Equal(t, "Arch Linux", cfg.Distro)
	assert.Equal(t, "/var/cache/glyphs", cfg.Cache.Dir)
	assert.True(t, cfg.Cache.Keyed)
	assert.True(t, cfg.Log.Structured)
	assert.Equal(t, logrus.DebugLevel, cfg.Log.LevelOpt)
	assert.Equal(t, uint(1), cfg.Verbosity)
}

func TestLoadApplicationConfig_Defaults(t *testing.T) {
	cfg, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: writeConfig(t, "quiet: false\n")})
	require.NoError(t, err)

	assert.Equal(t, "distroglyph", filepath.Base(cfg.Cache.Dir))
	assert.False(t, cfg.Cache.Keyed)
	assert.Empty(t, cfg.Distro)
	assert.Equal(t, logrus.WarnLevel, cfg.Log.LevelOpt)
}

func TestLoadApplicationConfig_Env(t *testing.T) {
	t.Setenv("DISTROGLYPH_CACHE_DIR", "/tmp/from-env")
	t.Setenv("DISTROGLYPH_CACHE_KEYED", "true")

	cfg, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: writeConfig(t, "quiet: false\n")})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", cfg.Cache.Dir)
	assert.True(t, cfg.Cache.Keyed)
}

func TestLoadApplicationConfig_ExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory available")
	}

	cfg, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: writeConfig(t, "cache:\n  dir: ~/glyph-cache\n")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "glyph-cache"), cfg.Cache.Dir)
}

func TestLoadApplicationConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}

func TestApplication_ParseReportsEveryProblem(t *testing.T) {
	cfg := &Application{
		Log:   logging{Level: "loud"},
		Cache: cache{Dir: ""},
		Dev:   development{ProfileCPU: true, ProfileMem: true},
	}

	err := cfg.parseConfigValues()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a multierror, got %T", err)
	assert.Len(t, merr.Errors, 3)
}

func TestApplication_LogLevel(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Application
		wantLevel logrus.Level
	}{
		{
			name:      "quiet wins over verbosity",
			cfg:       Application{Quiet: true, CliOptions: CliOnlyOptions{Verbosity: 2}},
			wantLevel: logrus.PanicLevel,
		},
		{
			name:      "-v",
			cfg:       Application{CliOptions: CliOnlyOptions{Verbosity: 1}},
			wantLevel: logrus.InfoLevel,
		},
		{
			name:      "-vv",
			cfg:       Application{CliOptions: CliOnlyOptions{Verbosity: 2}},
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "-vvv",
			cfg:       Application{CliOptions: CliOnlyOptions{Verbosity: 3}},
			wantLevel: logrus.TraceLevel,
		},
		{
			name:      "verbosity wins over config level",
			cfg:       Application{CliOptions: CliOnlyOptions{Verbosity: 1}, Log: logging{Level: "error"}},
			wantLevel: logrus.InfoLevel,
		},
		{
			name:      "config level is case insensitive",
			cfg:       Application{Log: logging{Level: "ERROR"}},
			wantLevel: logrus.ErrorLevel,
		},
		{
			name:      "default",
			cfg:       Application{},
			wantLevel: logrus.WarnLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.cfg.parseLogLevelOption())
			assert.Equal(t, tt.wantLevel, tt.cfg.Log.LevelOpt)
		})
	}
}

func TestApplication_String(t *testing.T) {
	cfg := Application{Distro: "Fedora", Cache: cache{Dir: "/cache", Keyed: true}}
	s := cfg.String()
	assert.Contains(t, s, "distro: Fedora")
	assert.Contains(t, s, "dir: /cache")
	assert.Contains(t, s, "keyed: true")
	assert.NotContains(t, s, "cliOptions")
}
