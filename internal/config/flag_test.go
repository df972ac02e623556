package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}
	with := func(fn func(c *Config)) *Config {
		c := defaults()
		fn(c)
		return c
	}

	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-d", "/data", "-tz", "Asia/Seoul", "-i", "10", "-f", "small", "-l", "debug"},
			expected: with(func(c *Config) {
				c.DataDir = "/data"
				c.Timezone = "Asia/Seoul"
				c.WidgetPollInterval = 10 * time.Second
				c.WidgetFamily = "small"
				c.LogLevel = "debug"
			})},
		{name: "unknown flags ignored", args: []string{"-c", "kakai.yaml", "-x", "1", "-d=/other"},
			expected: with(func(c *Config) { c.DataDir = "/other" })},
		{name: "no flags keeps sub-second interval", args: nil,
			start:    with(func(c *Config) { c.WidgetPollInterval = 1500 * time.Millisecond }),
			expected: with(func(c *Config) { c.WidgetPollInterval = 1500 * time.Millisecond })},
		{name: "incorrect poll interval", args: []string{"-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaults()
			if tt.start != nil {
				config = tt.start
			}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
