// Package config loads runtime configuration for the kakai app and widget.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. .env.local / .env in the working directory, then the process
//     environment (KAKAI_DATA_DIR, KAKAI_TIMEZONE, KAKAI_LOG_LEVEL,
//     KAKAI_LOG_FORMAT). Variables already set in the environment win over
//     the .env files.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   shared data directory
//	-tz string  time zone used for day counting ("Local" or an IANA name)
//	-i int      widget reload poll interval (seconds)
//	-f string   widget layout: small, medium or meeting
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Intervals use timex.Duration, so "1m" and integer nanoseconds both work:
//
//	data_dir: /var/lib/kakai
//	timezone: Asia/Seoul
//	widget_poll_interval: 30s
//	widget_refresh_spec: "@midnight"
package config
