package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/kakai/internal/config"
	"github.com/dmitrijs2005/kakai/internal/dbx"
	"github.com/dmitrijs2005/kakai/internal/filex"
	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/repositories/images"
	"github.com/dmitrijs2005/kakai/internal/repositories/kv"
	"github.com/dmitrijs2005/kakai/internal/services"
	"github.com/dmitrijs2005/kakai/internal/widget"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	logger logging.Logger
	store  *services.RecordStore
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

// NewApp opens the shared storage described by c and loads the stored state.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("error creating data dir: %w", err)
	}

	db, err := dbx.OpenSQLite(ctx, c.DatabasePath())
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath(), "err", err)
		return nil, err
	}

	imgs, err := images.NewStore(c.ImagesPath())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	storage := kv.NewSQLiteStorage(db)
	store := services.NewRecordStore(storage, imgs, widget.NewReloadSignal(storage, logger), logger,
		services.WithLocation(loc))
	store.Load(ctx)
	logger.Info(ctx, "shared storage opened", "db", c.DatabasePath(), "images", imgs.Dir())

	a := newApp(store, bufio.NewReader(os.Stdin), os.Stdout, logger)
	a.db = db
	return a, nil
}

func newApp(store *services.RecordStore, reader *bufio.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{store: store, reader: reader, out: out, logger: logger}
}

// Run blocks in the REPL until the user exits or ctx is cancelled. A fresh
// installation starts with setup.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "kakai (type 'help' for commands)")

	if !a.isSetupComplete(ctx) {
		report(a.Setup(ctx, nil))
	}

	var status func() string
	if isTerminal(int(os.Stdin.Fd())) {
		status = a.getStatus
	}
	runREPL(ctx, a, status, a.reader)
}

// Close releases the shared database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isSetupComplete(ctx context.Context) bool {
	return a.store.IsSetupComplete(ctx)
}

func (a *App) getStatus() string {
	p := a.store.Profile()
	if p.UserName == "" && p.PartnerName == "" {
		return ""
	}
	s := a.store.CoupleNames()
	if d, ok := a.store.DaysUntilNextMeeting(); ok {
		s += " " + dDay(d)
	}
	return fmt.Sprintf(" (%s)", s)
}
