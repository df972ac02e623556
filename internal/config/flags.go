package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/kakai/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about; everything else in
// args is ignored. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-tz", "-i", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "shared data directory")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "time zone for day counting")
	poll := fs.Int("i", int(cfg.WidgetPollInterval.Seconds()), "widget reload poll interval (in seconds)")
	fs.StringVar(&cfg.WidgetFamily, "f", cfg.WidgetFamily, "widget layout (small, medium, meeting)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.WidgetPollInterval = time.Duration(*poll) * time.Second
		}
	})
}
