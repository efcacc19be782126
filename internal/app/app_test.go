package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/utc/internal/clock"
	"github.com/vk/utc/internal/hcl"
	"github.com/vk/utc/internal/zulu"
)

// fixedNow is 15:30 in a zone two hours east of UTC.
var fixedNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))

// missingDefaults returns a path guaranteed not to exist, so tests never
// pick up a real user defaults file.
func missingDefaults(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "utc.hcl")
}

func writeDefaults(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "utc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = missingDefaults(t)
	}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a, err := NewApp(out, logs, &cfg, hcl.NewLoader(), clock.Fixed{T: fixedNow})
	require.NoError(t, err)
	return a, out
}

func TestRun_ExplicitTimeAndMeridian(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{
		Time:     &zulu.ClockTime{Hours: 9, Minutes: 15},
		Meridian: ptr(zulu.PM),
	})
	require.NoError(t, a.Run(context.Background()))

	// 21:15 local at UTC+2 is 19:15 zulu.
	assert.Equal(t, "19:15\n", out.String())
}

func TestRun_NoArgumentsUsesClock(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{})
	require.NoError(t, a.Run(context.Background()))

	// 15:30 local at UTC+2 is 13:30 zulu, seconds dropped.
	assert.Equal(t, "13:30\n", out.String())
}

func TestRun_CustomTemplateFromFlag(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{
		Time:       &zulu.ClockTime{Hours: 11, Minutes: 5},
		Meridian:   ptr(zulu.AM),
		TimeFormat: "%H-%M",
	})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "09-05\n", out.String())
}

func TestRun_InvalidTemplate(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, Config{TimeFormat: "%H%"})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time format")
}

func TestNewApp_DefaultsFileFillsUnsetFields(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, `
defaults {
  time_format = "%H.%M"
  log_level   = "error"
}
`)

	a, out := newTestApp(t, Config{
		ConfigPath: path,
		Time:       &zulu.ClockTime{Hours: 9, Minutes: 15},
		Meridian:   ptr(zulu.PM),
	})
	assert.Equal(t, "%H.%M", a.Config().TimeFormat)
	assert.Equal(t, "error", a.Config().LogLevel)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "19.15\n", out.String())
}

func TestNewApp_FlagsWinOverDefaultsFile(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, `
defaults {
  time_format = "%H.%M"
}
`)

	a, out := newTestApp(t, Config{
		ConfigPath: path,
		TimeFormat: "%H-%M",
		Time:       &zulu.ClockTime{Hours: 9, Minutes: 15},
		Meridian:   ptr(zulu.PM),
	})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "19-15\n", out.String())
}

func TestNewApp_MalformedDefaultsFile(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, `defaults {`)

	_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{ConfigPath: path}, hcl.NewLoader(), clock.Fixed{T: fixedNow})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load defaults file")
}

func TestNewApp_InvalidFileValuesAreRejected(t *testing.T) {
	t.Parallel()

	path := writeDefaults(t, `
defaults {
  log_level = "loud"
}
`)

	_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{ConfigPath: path}, hcl.NewLoader(), clock.Fixed{T: fixedNow})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-level")
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{LogFormat: "xml"})
	require.Error(t, err)

	_, err = NewConfig(Config{LogLevel: "loud"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func ptr[T any](v T) *T { return &v }
