package widget

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/kakai/internal/config"
	"github.com/dmitrijs2005/kakai/internal/dbx"
	"github.com/dmitrijs2005/kakai/internal/filex"
	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/repositories/kv"
)

// App is the widget process: it renders the entry to out on every refresh.
type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	scheduler *Scheduler
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, out io.Writer) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	family, err := ParseFamily(c.WidgetFamily)
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("error creating data dir: %w", err)
	}
	db, err := dbx.OpenSQLite(ctx, c.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	storage := kv.NewSQLiteStorage(db)
	provider := NewProvider(storage, logger, loc)
	render := func(ctx context.Context, e Entry) {
		if err := Render(out, e, family, loc); err != nil {
			logger.Error(ctx, "failed to render widget", "err", err)
		}
	}
	scheduler := NewScheduler(provider, storage, logger, loc, c.WidgetRefreshSpec, c.WidgetPollInterval, render)

	return &App{config: c, logger: logger, db: db, scheduler: scheduler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run refreshes the widget until a termination signal arrives or ctx ends.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.initSignalHandler(cancelFunc)
	app.logger.Info(ctx, "Starting widget...", "db", app.config.DatabasePath())

	return app.scheduler.Run(ctx)
}

// Once renders a single entry and exits.
func (app *App) Once(ctx context.Context) {
	defer app.db.Close()
	app.scheduler.Refresh(ctx)
}
