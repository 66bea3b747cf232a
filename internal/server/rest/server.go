// Package rest exposes the catalog over HTTP using gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/logging"
	"github.com/dmitrijs2005/gamecatalog/internal/server/auth"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserService is the part of services.UserService the handlers need.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// GameService is the part of services.GameService the handlers need.
type GameService interface {
	List(ctx context.Context) ([]*models.Game, error)
	Create(ctx context.Context, fields models.GamePatch) (*models.Game, error)
	Update(ctx context.Context, id string, patch models.GamePatch) (*models.Game, error)
	Delete(ctx context.Context, id string) (*models.Game, error)
}

// Pinger reports store reachability; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	address         string
	logger          logging.Logger
	users           UserService
	games           GameService
	tokens          *auth.TokenManager
	db              Pinger
	shutdownTimeout time.Duration
	engine          *gin.Engine
}

func NewServer(address string, l logging.Logger, us UserService, gs GameService, tm *auth.TokenManager, db Pinger, shutdownTimeout time.Duration) *Server {
	s := &Server{
		address:         address,
		logger:          l.With("module", "http_server"),
		users:           us,
		games:           gs,
		tokens:          tm,
		db:              db,
		shutdownTimeout: shutdownTimeout,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
