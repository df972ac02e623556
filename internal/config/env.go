package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDataDir   = "KAKAI_DATA_DIR"
	EnvTimezone  = "KAKAI_TIMEZONE"
	EnvLogLevel  = "KAKAI_LOG_LEVEL"
	EnvLogFormat = "KAKAI_LOG_FORMAT"
)

// loadDotEnv loads the candidate files that exist, earlier ones first.
// godotenv never overwrites variables that are already set, so the process
// environment wins and earlier files win over later ones.
func loadDotEnv(candidates ...string) []string {
	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		if err := godotenv.Load(loaded...); err != nil {
			panic(err)
		}
	}
	return loaded
}

// parseEnv overlays cfg with the non-empty KAKAI_* variables.
func parseEnv(cfg *Config) {
	setString(&cfg.DataDir, os.Getenv(EnvDataDir))
	setString(&cfg.Timezone, os.Getenv(EnvTimezone))
	setString(&cfg.LogLevel, os.Getenv(EnvLogLevel))
	setString(&cfg.LogFormat, os.Getenv(EnvLogFormat))
}
