package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := writeTempJSON(t, dir, "kakai.json", map[string]any{
			"data_dir":             "/srv/kakai",
			"timezone":             "Asia/Seoul",
			"widget_poll_interval": "30s",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, path)

		assert.Equal(t, "/srv/kakai", cfg.DataDir)
		assert.Equal(t, "Asia/Seoul", cfg.Timezone)
		assert.Equal(t, 30*time.Second, cfg.WidgetPollInterval)
		assert.Equal(t, "shared.db", cfg.DatabaseFile, "fields missing from the file keep their value")
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "kakai.yml")
		require.NoError(t, os.WriteFile(path, []byte(
			"widget_refresh_spec: \"0 6 * * *\"\nwidget_poll_interval: 5000000000\nlog_format: json\n"), 0o600))

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, path)

		assert.Equal(t, "0 6 * * *", cfg.WidgetRefreshSpec)
		assert.Equal(t, 5*time.Second, cfg.WidgetPollInterval)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("no path → no changes", func(t *testing.T) {
		cfg := &Config{DataDir: "defaults"}
		parseFile(cfg, "")
		assert.Equal(t, "defaults", cfg.DataDir)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		require.Panics(t, func() { parseFile(&Config{}, bad) })
	})

	t.Run("invalid YAML → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("data_dir: [unclosed"), 0o600))
		require.Panics(t, func() { parseFile(&Config{}, bad) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, filepath.Join(dir, "nope.json")) })
	})
}
