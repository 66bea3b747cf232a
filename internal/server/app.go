// Package server initializes and runs the game catalog server: it connects
// to PostgreSQL, applies migrations, wires services and serves HTTP until
// an OS signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/logging"
	"github.com/dmitrijs2005/gamecatalog/internal/server/auth"
	"github.com/dmitrijs2005/gamecatalog/internal/server/config"
	"github.com/dmitrijs2005/gamecatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gamecatalog/internal/server/rest"
	"github.com/dmitrijs2005/gamecatalog/internal/server/services"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const connectTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp validates the config, connects to the store and builds the HTTP
// server. An unreachable store is fatal.
func NewApp(ctx context.Context, c *config.Config, m repomanager.RepositoryManager) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.PasswordHashCost, c.HashWorkers)
	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.AccessTokenValidityDuration)

	us := services.NewUserService(db, m, hasher, tokens)
	gs := services.NewGameService(db, m)

	gin.SetMode(gin.ReleaseMode)
	srv := rest.NewServer(c.EndpointAddrHTTP, logger, us, gs, tokens, db, c.ShutdownTimeout)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	defer app.db.Close()

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
