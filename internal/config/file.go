package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/kakai/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of Config. Empty fields leave the current
// value untouched.
type FileConfig struct {
	DataDir            string         `json:"data_dir" yaml:"data_dir"`
	DatabaseFile       string         `json:"database_file" yaml:"database_file"`
	ImagesDir          string         `json:"images_dir" yaml:"images_dir"`
	Timezone           string         `json:"timezone" yaml:"timezone"`
	WidgetPollInterval timex.Duration `json:"widget_poll_interval" yaml:"widget_poll_interval"`
	WidgetRefreshSpec  string         `json:"widget_refresh_spec" yaml:"widget_refresh_spec"`
	WidgetFamily       string         `json:"widget_family" yaml:"widget_family"`
	LogLevel           string         `json:"log_level" yaml:"log_level"`
	LogFormat          string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file at path. An empty path is a no-op.
// Read or decode errors panic.
func parseFile(cfg *Config, path string) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.DataDir, fc.DataDir)
	setString(&cfg.DatabaseFile, fc.DatabaseFile)
	setString(&cfg.ImagesDir, fc.ImagesDir)
	setString(&cfg.Timezone, fc.Timezone)
	setString(&cfg.WidgetRefreshSpec, fc.WidgetRefreshSpec)
	setString(&cfg.WidgetFamily, fc.WidgetFamily)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	if fc.WidgetPollInterval.Duration != 0 {
		cfg.WidgetPollInterval = fc.WidgetPollInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
