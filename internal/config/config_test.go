package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "time/tzdata"

	"focusplanner/internal/scheduler"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, DefaultPlanCron, cfg.PlanCron)
	assert.Equal(t, DefaultDir(), cfg.DataDir)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

func TestParseFile(t *testing.T) {
	cfg, err := Parse([]byte(`
data_dir: /tmp/fp
backend: file
timezone: Europe/Berlin
log_level: debug
log_format: json
plan_cron: "30 4 * * 1-5"
`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fp", cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
	assert.Equal(t, "30 4 * * 1-5", cfg.PlanCron)
}

func TestParseValidation(t *testing.T) {
	_, err := Parse([]byte(`
backend: postgres
timezone: Mars/Olympus
log_level: loud
log_format: xml
plan_cron: "every morning"
`))
	require.Error(t, err)
	for _, field := range []string{"backend", "timezone", "log_level", "log_format", "plan_cron"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestParseAcceptsCronDescriptor(t *testing.T) {
	cfg, err := Parse([]byte(`plan_cron: "@daily"`))
	require.NoError(t, err)
	assert.Equal(t, "@daily", cfg.PlanCron)

	_, err = scheduler.ParseSpec(cfg.PlanCron)
	assert.NoError(t, err)
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("backend: [sqlite"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\ntimezone: UTC\n"), 0o644))

	t.Setenv("FP_BACKEND", "file")
	t.Setenv("FP_DATA_DIR", "/var/lib/fp")
	t.Setenv("FP_TIMEZONE", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "/var/lib/fp", cfg.DataDir)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestNewLogger(t *testing.T) {
	cfg, err := Parse([]byte("log_level: info\nlog_format: json\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := cfg.NewLogger(&buf)
	log.Debug("hidden")
	log.Info("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":1`)
}
