package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/dmitrijs2005/kakai/internal/config"
	"github.com/dmitrijs2005/kakai/internal/flagx"
	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/widget"
)

func main() {

	var once bool
	fs := flag.NewFlagSet("widget", flag.ContinueOnError)
	fs.BoolVar(&once, "once", false, "render a single entry and exit")
	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-once"})); err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := widget.NewApp(ctx, cfg, logger, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if once {
		app.Once(ctx)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
