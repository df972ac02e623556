package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/kakai/internal/flagx"
)

// Config holds runtime settings shared by both binaries.
//
// DatabaseFile and ImagesDir are resolved against DataDir unless absolute.
type Config struct {
	DataDir      string
	DatabaseFile string
	ImagesDir    string

	// Timezone is "Local" or an IANA zone name such as "Asia/Seoul".
	Timezone string

	WidgetPollInterval time.Duration
	WidgetRefreshSpec  string
	WidgetFamily       string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "kakai-shared"
	c.DatabaseFile = "shared.db"
	c.ImagesDir = "images"
	c.Timezone = "Local"
	c.WidgetPollInterval = time.Minute
	c.WidgetRefreshSpec = "@midnight"
	c.WidgetFamily = "medium"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, the config file, the environment and the
// command-line flags, in that order.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, flagx.ConfigFile(args))
	loadDotEnv(".env.local", ".env")
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DatabasePath is the SQLite file of the shared key-value storage.
func (c *Config) DatabasePath() string {
	return c.resolve(c.DatabaseFile)
}

// ImagesPath is the directory holding meeting photos.
func (c *Config) ImagesPath() string {
	return c.resolve(c.ImagesDir)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}
