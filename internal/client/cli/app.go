package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gamecatalog/internal/client/api"
	"github.com/dmitrijs2005/gamecatalog/internal/client/config"
)

// apiClient is the server surface used by the commands; *api.Client
// satisfies it.
type apiClient interface {
	Status(ctx context.Context) error
	Register(ctx context.Context, name, email, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListGames(ctx context.Context, token string) ([]api.Game, error)
	CreateGame(ctx context.Context, token string, f api.GameFields) (*api.Game, error)
	UpdateGame(ctx context.Context, token, id string, f api.GameFields) (*api.Game, error)
	DeleteGame(ctx context.Context, token, id string) (*api.Game, error)
}

type App struct {
	config *config.Config
	api    apiClient
	token  string
	email  string
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run checks the server once and then starts the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.api.Status(ctx); err != nil {
		fmt.Fprintf(a.out, "warning: %v\n", err)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "guest"
}
