package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "gobbs.yaml")

	content := `
output_dir: ./out
export:
  template: templates/BBS_Template.xlsx
  sheet: Schedule
  header_rows: 3
server:
  addr: ":9090"
  metrics: false
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./out", cfg.OutputDir)
	assert.Equal(t, "templates/BBS_Template.xlsx", cfg.Export.Template)
	assert.Equal(t, "Schedule", cfg.Export.Sheet)
	assert.Equal(t, 3, cfg.Export.HeaderRows)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.False(t, cfg.Server.Metrics)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DefaultsWhenHomeFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Unsetenv("GOBBS_TEMPLATE") })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GOBBS_TEMPLATE=from-dotenv.xlsx\n"), 0644))
	t.Setenv("GOBBS_SERVER_ADDR", "127.0.0.1:8181")
	t.Setenv("GOBBS_HEADER_ROWS", "7")
	t.Setenv("GOBBS_LOG_LEVEL", "warn")
	t.Setenv("GOBBS_LOG_FORMAT", "json")
	t.Setenv("GOBBS_SERVER_METRICS", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Server.Metrics)
	assert.Equal(t, "from-dotenv.xlsx", cfg.Export.Template)
	assert.Equal(t, "127.0.0.1:8181", cfg.Server.Addr)
	assert.Equal(t, 7, cfg.Export.HeaderRows)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOBBS_HEADER_ROWS", "five")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_BadMetricsEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOBBS_SERVER_METRICS", "maybe")

	_, err := Load("")
	assert.ErrorContains(t, err, "GOBBS_SERVER_METRICS")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export.HeaderRows = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export.HeaderRows = 0
	assert.ErrorContains(t, cfg.Validate(), "header_rows")

	cfg = Default()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestOutputPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "a.xlsx", cfg.OutputPath("a.xlsx"))

	cfg.OutputDir = "out"
	assert.Equal(t, filepath.Join("out", "a.xlsx"), cfg.OutputPath("a.xlsx"))
	assert.Equal(t, "/tmp/a.xlsx", cfg.OutputPath("/tmp/a.xlsx"))
	assert.Equal(t, "", cfg.OutputPath(""))
}
